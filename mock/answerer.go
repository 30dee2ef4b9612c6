package mock

import (
	"context"

	"github.com/fwojciec/deptbrain"
)

var _ deptbrain.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of deptbrain.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, question string) (*deptbrain.Answer, error)
}

func (a *Answerer) Answer(ctx context.Context, question string) (*deptbrain.Answer, error) {
	return a.AnswerFn(ctx, question)
}
