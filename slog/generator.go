package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	persona "github.com/kvrancic/persona-mcp"
)

// Ensure LoggingGenerator implements persona.Generator.
var _ persona.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with debug logging.
type LoggingGenerator struct {
	next   persona.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next persona.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate logs prompt and answer sizes and delegates to the wrapped
// generator.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt string) (answer string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"prompt_chars", utf8.RuneCountInString(prompt),
			"answer_chars", utf8.RuneCountInString(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, prompt)
}
