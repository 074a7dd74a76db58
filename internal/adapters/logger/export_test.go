// export_test.go exports private functions for white-box testing.
package logger

// Error chain formatting, exported for tests.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)
