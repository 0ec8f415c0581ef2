package config

const (
	// Configuration file paths
	ConfigPathCatalog = "configs/catalog.yaml"
)

// Environment variable names
const (
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvEnvironment     = "ENVIRONMENT"
	EnvAPIKey          = "API_KEY"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
	EnvCatalogPath     = "CATALOG_PATH"
	EnvStartingBalance = "STARTING_BALANCE"
	EnvPriceCacheSize  = "PRICE_CACHE_SIZE"
	EnvSellPriceRatio  = "SELL_PRICE_RATIO"
	EnvSchemaVersion   = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort            = "8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultServiceName     = "clicker"
	DefaultVersion         = "dev"
	DefaultEnvironment     = "dev"
	DefaultStartingBalance = "0"
	DefaultPriceCacheSize  = 1024
	DefaultSellPriceRatio  = 0.5
)
