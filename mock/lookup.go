package mock

import "github.com/fwojciec/deptbrain"

var _ deptbrain.Lookup = (*Lookup)(nil)

// Lookup is a mock implementation of deptbrain.Lookup.
type Lookup struct {
	MatchFn   func(question string) (*deptbrain.Faculty, bool)
	SubjectFn func(question string) (string, bool)
	AnswerFn  func(question string) (*deptbrain.Answer, bool)
}

func (l *Lookup) Match(question string) (*deptbrain.Faculty, bool) {
	return l.MatchFn(question)
}

func (l *Lookup) Subject(question string) (string, bool) {
	return l.SubjectFn(question)
}

func (l *Lookup) Answer(question string) (*deptbrain.Answer, bool) {
	return l.AnswerFn(question)
}
