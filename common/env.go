// Package common holds names shared by the cookiestxt binary and its
// packages.
package common

// Environment variable names for configuration.
const (
	// DebugEnv is the environment variable to enable debug logging.
	DebugEnv = "COOKIESTXT_DEBUG"

	// LogLevelEnv is the environment variable selecting the minimum log level.
	LogLevelEnv = "COOKIESTXT_LOG_LEVEL"

	// LogFileEnv is the environment variable naming a file to copy logs into.
	LogFileEnv = "COOKIESTXT_LOG_FILE"

	// FormatEnv is the environment variable for the default output format.
	FormatEnv = "COOKIESTXT_FORMAT"
)
