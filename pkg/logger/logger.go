// Package logger is the process-wide structured logger. Calls take a message
// followed by key/value pairs:
//
//	logger.Info("model trained", "profiles", 4000, "generation", 2)
//
// A bare error in key position is logged under "error".
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu  sync.RWMutex
	log = newLogger("development", os.Stdout)
)

// Init configures the logger for the given environment. Production emits JSON,
// everything else emits text. LOG_LEVEL overrides the default level.
func Init(env string) {
	l := newLogger(env, os.Stdout)

	mu.Lock()
	log = l
	mu.Unlock()
}

// SetOutput redirects the logger, mostly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	log.SetOutput(w)
	mu.Unlock()
}

func newLogger(env string, w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)

	if strings.EqualFold(env, "production") {
		l.SetFormatter(&logrus.JSONFormatter{})
		l.SetLevel(logrus.InfoLevel)
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		l.SetLevel(logrus.DebugLevel)
	}

	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		l.SetLevel(lvl)
	}

	return l
}

func entry(args []any) *logrus.Entry {
	mu.RLock()
	l := log
	mu.RUnlock()
	return l.WithFields(toFields(args))
}

func toFields(args []any) logrus.Fields {
	fields := logrus.Fields{}
	extra := 0
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case error:
			fields["error"] = v.Error()
		case string:
			if i+1 < len(args) {
				fields[v] = args[i+1]
				i++
				continue
			}
			fields[fmt.Sprintf("arg%d", extra)] = v
			extra++
		default:
			fields[fmt.Sprintf("arg%d", extra)] = v
			extra++
		}
	}
	return fields
}

func Debug(msg string, args ...any) { entry(args).Debug(msg) }

func Info(msg string, args ...any) { entry(args).Info(msg) }

func Warn(msg string, args ...any) { entry(args).Warn(msg) }

func Error(msg string, args ...any) { entry(args).Error(msg) }

// Fatal logs and exits the process.
func Fatal(msg string, args ...any) { entry(args).Fatal(msg) }
