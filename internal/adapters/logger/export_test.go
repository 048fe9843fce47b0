package logger

// Exported for white-box tests of the error layout and the graft node.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
	FromEnv             = fromEnv
)
