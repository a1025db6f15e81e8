package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New создает logrus.Logger с JSON-форматом и заданным уровнем.
// Некорректный уровень молча заменяется на info.
func New(logLevel string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
