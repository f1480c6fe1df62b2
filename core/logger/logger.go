package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLevel adjusts the global log level ("debug", "info", "warn", "error").
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
}

func Info(msg string, kvs ...any) {
	log.WithFields(fields(kvs...)).Info(msg)
}

func Warn(msg string, kvs ...any) {
	log.WithFields(fields(kvs...)).Warn(msg)
}

func Error(msg string, kvs ...any) {
	log.WithFields(fields(kvs...)).Error(msg)
}

func Debug(msg string, kvs ...any) {
	log.WithFields(fields(kvs...)).Debug(msg)
}

// fields converts a variadic key-value list into logrus fields. A trailing
// odd value (commonly a bare error) is recorded under "error".
func fields(kvs ...any) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i < len(kvs); i += 2 {
		if i+1 >= len(kvs) {
			f["error"] = kvs[i]
			break
		}
		key, ok := kvs[i].(string)
		if !ok {
			f["error"] = kvs[i]
			continue
		}
		f[key] = kvs[i+1]
	}
	return f
}
