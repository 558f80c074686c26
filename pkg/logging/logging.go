package logging

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// ConsoleLogger writes text logs to out. The exporter passes stderr so
// that stdout carries nothing but the JSON document.
func ConsoleLogger(level logrus.Level, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	return logger
}
