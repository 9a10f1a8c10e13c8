// Package logger holds the shared logrus logger used by the planners.
//
// Planners log per-decision traces at Debug level through component-scoped
// entries; the default level is Warn so a quiet host sees nothing. Callers
// that want their own sink pass a logrus.FieldLogger through the planner's
// WithLogger option instead.
package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the package-level logger.
var Log = newLog()

func newLog() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l
}

// SetLevel parses name ("debug", "info", "warn", ...) and applies it to Log.
func SetLevel(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	Log.SetLevel(lvl)
	return nil
}

// Component returns an entry scoped to one planner component.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
