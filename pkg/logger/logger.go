package logger

import (
	"fmt"
	"log"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a stdlib logger with component prefix whose output lands in
// base at the given level. Useful for APIs that only accept *log.Logger,
// such as http.Server.ErrorLog.
func New(component string, base zerolog.Logger, level zerolog.Level) *log.Logger {
	prefix := fmt.Sprintf("[%s] ", component)
	return log.New(levelWriter{logger: base, level: level}, prefix, 0)
}

type levelWriter struct {
	logger zerolog.Logger
	level  zerolog.Level
}

func (w levelWriter) Write(p []byte) (int, error) {
	w.logger.WithLevel(w.level).Msg(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
