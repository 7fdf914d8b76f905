package logic

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the diagnostics logger. Standard output carries the JSON result,
// so w is normally standard error. Verbose enables info and debug entries.
func NewLogger(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()

	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: !verbose,
	})
	logger.SetLevel(logrus.WarnLevel)

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}
