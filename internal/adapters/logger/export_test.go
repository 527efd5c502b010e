package logger

// FormatError exposes the pretty error formatting for tests.
func FormatError(err error) string {
	return formatErrorEntries(collectErrorEntries(err))
}
