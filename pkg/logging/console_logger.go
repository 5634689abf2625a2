package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// ConsoleLogger provides colored console output.
type ConsoleLogger struct {
	mu      *sync.Mutex
	output  io.Writer
	verbose bool
	noColor bool
	fields  map[string]any
	palette *palette
}

// palette holds the colors of one logger so that disabling them does
// not touch the process-wide color.NoColor switch.
type palette struct {
	gray, blue, yellow, red, green *color.Color
}

func newPalette(noColor bool) *palette {
	p := &palette{
		gray:   color.New(color.FgHiBlack),
		blue:   color.New(color.FgBlue),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
		green:  color.New(color.FgGreen),
	}
	if noColor {
		for _, c := range []*color.Color{p.gray, p.blue, p.yellow, p.red, p.green} {
			c.DisableColor()
		}
	}
	return p
}

// ConsoleOption configures a ConsoleLogger.
type ConsoleOption func(*ConsoleLogger)

// WithWriter redirects console output, which defaults to stderr.
func WithWriter(w io.Writer) ConsoleOption {
	return func(c *ConsoleLogger) {
		c.output = w
	}
}

// WithNoColor disables ANSI colors for this logger and the loggers
// derived from it.
func WithNoColor(noColor bool) ConsoleOption {
	return func(c *ConsoleLogger) {
		c.noColor = noColor
	}
}

// NewConsoleLogger creates a console logger. When verbose is
// true, debug messages are emitted.
func NewConsoleLogger(verbose bool, opts ...ConsoleOption) *ConsoleLogger {
	c := &ConsoleLogger{
		mu:      &sync.Mutex{},
		output:  os.Stderr,
		verbose: verbose,
		fields:  make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.palette = newPalette(c.noColor)
	return c
}

func (c *ConsoleLogger) log(
	level LogLevel, paint *color.Color, msg string, fields ...Field,
) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := time.Now().Format("15:04:05")

	merged := make(map[string]any, len(c.fields)+len(fields))
	for k, v := range c.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}

	var fieldStr string
	if len(merged) > 0 {
		keys := make([]string, 0, len(merged))
		for k := range merged {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, merged[k]))
		}
		fieldStr = " " + c.palette.gray.Sprintf("{%s}", strings.Join(parts, ", "))
	}

	fmt.Fprintf(
		c.output, "%s [%s] %s%s\n",
		c.palette.gray.Sprint(ts), paint.Sprintf("%-5s", level.String()),
		msg, fieldStr,
	)
}

// Info logs an informational message.
func (c *ConsoleLogger) Info(msg string, fields ...Field) {
	c.log(LevelInfo, c.palette.blue, msg, fields...)
}

// Warn logs a warning message.
func (c *ConsoleLogger) Warn(msg string, fields ...Field) {
	c.log(LevelWarn, c.palette.yellow, msg, fields...)
}

// Error logs an error message.
func (c *ConsoleLogger) Error(msg string, fields ...Field) {
	c.log(LevelError, c.palette.red, msg, fields...)
}

// Debug logs a debug message only if verbose is enabled.
func (c *ConsoleLogger) Debug(msg string, fields ...Field) {
	if c.verbose {
		c.log(LevelDebug, c.palette.gray, msg, fields...)
	}
}

// WithFields returns a new Logger with additional default
// fields. The child shares the parent's writer lock.
func (c *ConsoleLogger) WithFields(fields ...Field) Logger {
	newFields := make(map[string]any, len(c.fields)+len(fields))
	for k, v := range c.fields {
		newFields[k] = v
	}
	for _, f := range fields {
		newFields[f.Key] = f.Value
	}
	return &ConsoleLogger{
		mu:      c.mu,
		output:  c.output,
		verbose: c.verbose,
		noColor: c.noColor,
		fields:  newFields,
		palette: c.palette,
	}
}

// LogAssertion prints a one-line PASS/FAIL summary. Passing
// assertions are only printed in verbose mode.
func (c *ConsoleLogger) LogAssertion(record AssertionLog) {
	if record.Passed {
		if c.verbose {
			c.log(LevelDebug, c.palette.green, "PASS "+record.Subject)
		}
		return
	}

	fields := []Field{StringField("subject", record.Subject)}
	if record.Caller != "" {
		fields = append(fields, StringField("caller", record.Caller))
	}
	c.log(LevelError, c.palette.red, "FAIL "+record.Message, fields...)
}

// Close is a no-op for ConsoleLogger.
func (c *ConsoleLogger) Close() error {
	return nil
}
