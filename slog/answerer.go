package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/deptbrain"
)

// Ensure LoggingAnswerer implements deptbrain.Answerer.
var _ deptbrain.Answerer = (*LoggingAnswerer)(nil)

// LoggingAnswerer wraps an Answerer with per-question logging. Question text
// never reaches the log; only its length does.
type LoggingAnswerer struct {
	next   deptbrain.Answerer
	logger *slog.Logger
}

// NewLoggingAnswerer creates a new LoggingAnswerer.
func NewLoggingAnswerer(next deptbrain.Answerer, logger *slog.Logger) *LoggingAnswerer {
	return &LoggingAnswerer{next: next, logger: logger}
}

// Answer delegates to the wrapped Answerer and logs the outcome.
func (a *LoggingAnswerer) Answer(ctx context.Context, question string) (answer *deptbrain.Answer, err error) {
	defer func(begin time.Time) {
		route := ""
		sources := 0
		if answer != nil {
			route = string(answer.Route)
			sources = len(answer.Sources)
		}
		a.logger.Info("question answered",
			"question_chars", len(question),
			"route", route,
			"sources", sources,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Answer(ctx, question)
}
