package catalog

// ==================== Schema ====================

const (
	// SchemaPath is the embedded schema every catalog is checked against
	SchemaPath = "schema/catalog.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrMsgConvertYAMLFailed  = "failed to convert YAML catalog: %w"
	ErrMsgUnsupportedFormat  = "unsupported catalog format %q"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Format strings for detailed validation errors
const (
	ErrFmtItemInvalid         = "%w: item at index %d: %v"
	ErrFmtDuplicateItem       = "%w: '%s'"
	ErrFmtModifierInvalid     = "%w: modifier at index %d: %v"
	ErrFmtModifierUnknownItem = "%w: modifier '%s' references unknown item '%s'"
	ErrFmtItemLevelAboveMax   = "%w: item '%s' has level %d above max_level %d"
)

// Apply error messages
const (
	ErrMsgAddItemFailed     = "failed to add item '%s': %w"
	ErrMsgAddModifierFailed = "failed to add modifier '%s': %w"
	ErrMsgAttachFailed      = "failed to attach modifier '%s' to '%s': %w"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded  = "Catalog loaded"
	LogMsgCatalogApplied = "Catalog applied"
	LogMsgAddedItem      = "Added item"
	LogMsgAddedModifier  = "Added modifier"
)
