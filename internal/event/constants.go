package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeySource = "source"
)

// Level change sources
const (
	SourceSet      = "set"
	SourceMaximize = "maximize"
)

// LogMsgHandlerErrorFormat formats the joined handler errors from Publish
const LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
