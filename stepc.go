package stepc

import (
	"bytes"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/stepc/internal/adapters/file"
	"github.com/aretw0/stepc/internal/compiler"
	"github.com/aretw0/stepc/internal/logging"
	"github.com/aretw0/stepc/internal/metrics"
	"github.com/aretw0/stepc/pkg/domain"
)

// Observer receives the outcome of every conversion.
// internal/metrics.Recorder is the production implementation.
type Observer interface {
	ObserveConversion(result string, lines int, elapsed time.Duration)
}

// Converter is the high-level entry point: it reads a step program, renders it
// and writes the generated code. It holds no state between runs.
type Converter struct {
	parser   *compiler.Parser
	emitter  *compiler.Emitter
	logger   *slog.Logger
	observer Observer
	indent   string
}

// Option defines a functional option for configuring the Converter.
type Option func(*Converter)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithIndentUnit sets the text added per nesting level (default: two spaces).
func WithIndentUnit(unit string) Option {
	return func(c *Converter) {
		c.indent = unit
	}
}

// WithObserver registers an observer notified after each conversion.
func WithObserver(o Observer) Option {
	return func(c *Converter) {
		c.observer = o
	}
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{indent: compiler.DefaultIndentUnit}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	c.parser = compiler.NewParser()
	c.emitter = compiler.NewEmitter(compiler.WithIndentUnit(c.indent))
	return c
}

// Convert translates the program at inputPath with default settings.
func Convert(inputPath, outputPath string) error {
	return New().Convert(inputPath, outputPath)
}

// Parse reads one program without rendering it.
func (c *Converter) Parse(src []byte) (domain.Node, error) {
	return c.parser.Parse(src)
}

// Emitter returns the emitter configured for this converter.
func (c *Converter) Emitter() *compiler.Emitter {
	return c.emitter
}

// Translate parses src and renders every line in memory.
func (c *Converter) Translate(src []byte) ([]string, error) {
	root, err := c.parser.Parse(src)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("program parsed", "root", headName(root))

	var lines []string
	for line, err := range c.emitter.Emit(root, "") {
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	c.logger.Debug("program rendered", "lines", len(lines))
	return lines, nil
}

// Convert reads inputPath, translates it and writes the result to outputPath.
// The output is replaced atomically: on any failure an existing file at
// outputPath is left untouched and no partial file is created.
func (c *Converter) Convert(inputPath, outputPath string) (err error) {
	start := time.Now()
	var lines []string
	defer func() {
		if c.observer != nil {
			c.observer.ObserveConversion(resultOf(err), len(lines), time.Since(start))
		}
	}()

	src, err := file.Read(inputPath)
	if err != nil {
		return err
	}

	lines, err = c.Translate(src)
	if err != nil {
		c.logger.Debug("conversion failed", "input", inputPath, "error", err)
		return err
	}

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if err := file.WriteAtomic(outputPath, buf.Bytes()); err != nil {
		lines = nil
		return err
	}

	c.logger.Debug("output written", "output", outputPath, "bytes", buf.Len())
	return nil
}

func resultOf(err error) string {
	var (
		syntaxErr *domain.SyntaxError
		ioErr     *domain.IOError
	)
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.As(err, &syntaxErr):
		return metrics.ResultSyntaxError
	case errors.As(err, &ioErr):
		return metrics.ResultIOError
	default:
		return metrics.ResultEmitError
	}
}

func headName(n domain.Node) string {
	if l, ok := n.(domain.List); ok {
		if head, ok := l.Head(); ok {
			return head.Name
		}
	}
	return n.String()
}
