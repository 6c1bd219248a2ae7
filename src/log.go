package elect

import (
	"github.com/asticode/go-astilog"
)

// Debugf writes a diagnostic message when debug is enabled (§6.2's
// debug option). It is a thin wrapper so call sites don't need to
// guard every log line with an if.
func Debugf(debug bool, format string, args ...interface{}) {
	if !debug {
		return
	}
	astilog.Debugf(format, args...)
}
