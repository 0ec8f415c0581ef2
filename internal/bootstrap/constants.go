package bootstrap

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting clicker economy"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// Event system messages
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// Catalog messages
const (
	LogMsgLoadingCatalog     = "Loading item catalog..."
	LogMsgCatalogLoaded      = "Catalog loaded successfully"
	LogMsgCatalogEventFailed = "Failed to publish catalog loaded event"
	ErrMsgFailedLoadCatalog  = "failed to load catalog"
	ErrMsgFailedApplyCatalog = "failed to apply catalog"
	ErrMsgCatalogNotLoaded   = "catalog not loaded"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
