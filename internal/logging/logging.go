// Package logging configures the process-wide logger.
package logging

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"taskcli/internal/config"
)

// New returns a logger writing to a rotating file in the config directory.
// With cfg.Debug set, the level is raised to debug and entries are also
// written to stderr. Every invocation gets a run_id field so overlapping
// runs can be told apart in the shared log file.
func New(cfg *config.Config) *logrus.Entry {
	log := logrus.New()

	var out io.Writer = &lumberjack.Logger{
		Filename:   cfg.LogPath(),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	log.SetLevel(logrus.WarnLevel)
	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
		out = io.MultiWriter(out, os.Stderr)
	}
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return log.WithField("run_id", uuid.NewString())
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}
