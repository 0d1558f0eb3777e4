// FILE: format.go
package ringlog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// serializer manages the buffered encoding of log lines.
// Its buffer is reused across calls, so it must only run under the
// owning Logger's guard.
type serializer struct {
	buf             []byte
	timestampFormat string
}

// newSerializer creates a serializer instance.
func newSerializer(timestampFormat string) *serializer {
	if timestampFormat == "" {
		timestampFormat = DefaultTimestampFormat
	}
	return &serializer{
		buf:             make([]byte, 0, 4096), // Initial reasonable capacity
		timestampFormat: timestampFormat,
	}
}

// serialize renders one record as "TIMESTAMP [LEVEL] args...\n".
// The returned slice aliases the internal buffer and is only valid until
// the next call.
func (s *serializer) serialize(timestamp time.Time, level int64, args []any) []byte {
	s.buf = s.buf[:0]

	s.buf = timestamp.AppendFormat(s.buf, s.timestampFormat)
	s.buf = append(s.buf, ' ', '[')
	s.buf = append(s.buf, levelToString(level)...)
	s.buf = append(s.buf, ']')

	for _, arg := range args {
		s.buf = append(s.buf, ' ')
		s.writeValue(arg)
	}

	s.buf = append(s.buf, '\n')
	return s.buf
}

// writeValue converts any value to its textual representation. Values
// without an explicit case go through spew in passthrough mode so structs
// and maps stay on a single line.
func (s *serializer) writeValue(v any) {
	switch val := v.(type) {
	case string:
		s.writeSanitized(val)
	case int:
		s.buf = strconv.AppendInt(s.buf, int64(val), 10)
	case int64:
		s.buf = strconv.AppendInt(s.buf, val, 10)
	case uint:
		s.buf = strconv.AppendUint(s.buf, uint64(val), 10)
	case uint64:
		s.buf = strconv.AppendUint(s.buf, val, 10)
	case float32:
		s.buf = strconv.AppendFloat(s.buf, float64(val), 'f', -1, 32)
	case float64:
		s.buf = strconv.AppendFloat(s.buf, val, 'f', -1, 64)
	case bool:
		s.buf = strconv.AppendBool(s.buf, val)
	case nil:
		s.buf = append(s.buf, "nil"...)
	case time.Time:
		s.buf = val.AppendFormat(s.buf, s.timestampFormat)
	case error:
		s.writeSanitized(val.Error())
	case fmt.Stringer:
		s.writeSanitized(val.String())
	default:
		s.writeSanitized(spew.Sprintf("%+v", val))
	}
}

// writeSanitized appends str with control characters escaped. A record is
// the atomicity unit of the ring, so an embedded newline must never produce
// a second physical line.
func (s *serializer) writeSanitized(str string) {
	lenStr := len(str)
	for i := 0; i < lenStr; {
		if c := str[i]; c < ' ' {
			switch c {
			case '\n':
				s.buf = append(s.buf, '\\', 'n')
			case '\r':
				s.buf = append(s.buf, '\\', 'r')
			case '\t':
				s.buf = append(s.buf, '\\', 't')
			default:
				s.buf = append(s.buf, `\x`...)
				s.buf = append(s.buf, hexChars[c>>4], hexChars[c&0xF])
			}
			i++
		} else {
			start := i
			for i < lenStr && str[i] >= ' ' {
				i++
			}
			s.buf = append(s.buf, str[start:i]...)
		}
	}
}

// levelToString maps a level constant to its display tag.
func levelToString(level int64) string {
	switch level {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", level)
	}
}

// Level converts a level string to its numeric constant.
func Level(levelStr string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use debug, info, warn, error)", levelStr)
	}
}
