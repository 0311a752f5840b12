package fd

import (
	"io"

	"github.com/sirupsen/logrus"
)

// discardLogger is the default diagnostics sink: logrus at Error level
// writing to io.Discard, so the search driver's Debug entries are
// filtered out by level and nothing is ever printed. The driver still
// builds each entry's fields before that level check.
func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.ErrorLevel)
	return l
}
