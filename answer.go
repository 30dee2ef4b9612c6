package deptbrain

import "context"

// Route identifies the pipeline stage that produced an answer.
type Route string

// Routes, in pipeline order.
const (
	RouteGuardrailAbuse  Route = "guardrail_abuse"
	RouteGuardrailDomain Route = "guardrail_domain"
	RouteStructured      Route = "structured"
	RouteRAG             Route = "rag"
)

// Fixed answer texts. Guardrail refusals and insufficient-evidence outcomes
// are valid terminal answers, not errors.
const (
	OffTopicMessage = "I can help only with department-related questions like faculty, subjects, cabins, semesters, and availability."
	UnknownMessage  = "I don't have that information right now."
	AbusiveMessage  = "Please use respectful language. I can help with department information."
)

// Source is one piece of evidence behind an answer. Score holds the
// vector-store distance when the evidence came from retrieval (lower is
// closer); structured evidence carries no score.
type Source struct {
	ID       string            `json:"id"`
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata"`
	Score    *float64          `json:"score,omitempty"`
}

// Answer is the final result for a single question.
type Answer struct {
	Text    string   `json:"answer"`
	Route   Route    `json:"route"`
	Sources []Source `json:"sources"`
}

// Answerer answers department questions.
type Answerer interface {
	Answer(ctx context.Context, question string) (*Answer, error)
}
