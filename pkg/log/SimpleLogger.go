// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package log

import (
	"io"

	"github.com/rs/zerolog"
)

// SimpleLogger writes structured log lines through zerolog.
type SimpleLogger struct {
	logger zerolog.Logger
}

func (l *SimpleLogger) Log(msg string, fields ...map[string]interface{}) error {
	event := l.logger.Info()
	for _, m := range fields {
		event = event.Fields(m)
	}
	event.Msg(msg)
	return nil
}

func NewSimpleLogger(w io.Writer) *SimpleLogger {
	return &SimpleLogger{
		logger: zerolog.New(w).With().Timestamp().Logger(),
	}
}
