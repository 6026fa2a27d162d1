package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// LogOptions describes logger configuration supplied at creation time.
type LogOptions struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger wraps zerolog with the handful of calls the site needs.
type Logger struct {
	base zerolog.Logger
}

func NewLogger(opts LogOptions) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	output := writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	return &Logger{base: zerolog.New(output).Level(level).With().Timestamp().Logger()}, nil
}

// With returns a derived logger that always writes the supplied fields.
func (l *Logger) With(fields map[string]any) *Logger {
	return &Logger{base: l.base.With().Fields(fields).Logger()}
}

func (l *Logger) Info(msg string)  { l.base.Info().Msg(msg) }
func (l *Logger) Debug(msg string) { l.base.Debug().Msg(msg) }
func (l *Logger) Warn(msg string)  { l.base.Warn().Msg(msg) }

func (l *Logger) Error(err error, msg string) {
	l.base.Error().Err(err).Msg(msg)
}

// requestLogger replaces gin.Logger so request lines share the app's format.
func requestLogger(log *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := log.base.Info()
		if status >= 500 {
			event = log.base.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Int("bytes", c.Writer.Size()).
			Msg("request")
	}
}
