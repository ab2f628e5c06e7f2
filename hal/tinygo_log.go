//go:build tinygo && baremetal && !bootdebug

package hal

// Boot logging is compiled out unless built with -tags bootdebug; the UART
// belongs to the OS once the firmware hands over.
type nopLogger struct{}

func newLogger() Logger { return nopLogger{} }

func (nopLogger) WriteLineString(string) {}
func (nopLogger) WriteLineBytes([]byte)  {}
