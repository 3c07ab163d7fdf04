// Package zerolog provides the console logger and its logger.Logger adapter.
package zerolog

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/goterm/term"
	"github.com/rs/zerolog"
)

// New builds a zerolog logger writing to out. Unless jsonFormat is set the
// output is a fixed-width console layout.
func New(out io.Writer, level, dateTimeLayout string, colored, jsonFormat bool) (*zerolog.Logger, error) {
	logMode, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var writer io.Writer = out
	if !jsonFormat {
		console := zerolog.ConsoleWriter{
			Out:             out,
			NoColor:         !colored,
			TimeFormat:      dateTimeLayout,
			FormatLevel:     formatLevel(colored),
			FormatMessage:   formatMessage,
			FormatCaller:    formatCaller,
			FormatTimestamp: func(i interface{}) string { return formatTimestamp(i, dateTimeLayout, colored) },
		}
		writer = console
	}

	logger := zerolog.New(writer).
		Level(logMode).
		With().
		Timestamp().
		CallerWithSkipFrameCount(3).
		Logger()

	return &logger, nil
}

func formatLevel(colored bool) zerolog.Formatter {
	return func(i interface{}) string {
		level, ok := i.(string)
		if !ok {
			return "[UNK]"
		}

		tag, paint := levelTag(level)
		if !colored {
			return tag
		}
		return paint(tag)
	}
}

func levelTag(level string) (string, func(string, ...interface{}) string) {
	switch level {
	case zerolog.LevelTraceValue:
		return "[TRC]", term.Cyanf
	case zerolog.LevelDebugValue:
		return "[DBG]", term.Cyanf
	case zerolog.LevelInfoValue:
		return "[INF]", term.Greenf
	case zerolog.LevelWarnValue:
		return "[WAR]", term.Yellowf
	case zerolog.LevelErrorValue:
		return "[ERR]", term.Redf
	case zerolog.LevelFatalValue:
		return "[FTL]", term.Redf
	case zerolog.LevelPanicValue:
		return "[PAN]", term.Redf
	default:
		return "[UNK]", term.Whitef
	}
}

func formatMessage(i interface{}) string {
	const maxSize = 60

	msg, ok := i.(string)
	if !ok || len(msg) == 0 {
		return ">"
	}

	if len(msg) > maxSize {
		msg = msg[:maxSize]
	}
	return fmt.Sprintf("> %-*s", maxSize, msg)
}

func formatCaller(i interface{}) string {
	const maxFileSize = 18
	const maxLineSize = 4

	fname, ok := i.(string)
	if !ok || len(fname) == 0 {
		return ""
	}

	file, line, found := strings.Cut(filepath.Base(fname), ":")
	if !found {
		return file
	}

	if len(file) > maxFileSize {
		file = file[:maxFileSize]
	}
	if len(line) > maxLineSize {
		line = line[len(line)-maxLineSize:]
	}

	return fmt.Sprintf("[%-*s:%*s]", maxFileSize, file, maxLineSize, line)
}

func formatTimestamp(i interface{}, layout string, colored bool) string {
	raw, ok := i.(string)
	if !ok {
		return fmt.Sprintf("[%v]", i)
	}

	if ts, err := time.ParseInLocation(time.RFC3339, raw, time.Local); err == nil {
		raw = ts.In(time.Local).Format(layout)
	}

	if colored {
		return term.Cyanf("[%s]", raw)
	}
	return "[" + raw + "]"
}
