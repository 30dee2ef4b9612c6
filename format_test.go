package deptbrain_test

import (
	"testing"

	"github.com/fwojciec/deptbrain"
	"github.com/stretchr/testify/assert"
)

func TestFormatAnswer(t *testing.T) {
	t.Parallel()

	score := 0.1234

	tests := []struct {
		name   string
		answer *deptbrain.Answer
		want   string
	}{
		{
			name: "answer without sources",
			answer: &deptbrain.Answer{
				Text:  deptbrain.OffTopicMessage,
				Route: deptbrain.RouteGuardrailDomain,
			},
			want: deptbrain.OffTopicMessage + "\n\nroute: guardrail_domain",
		},
		{
			name: "structured source has no distance",
			answer: &deptbrain.Answer{
				Text:    "Dr. Asha Menon is in cabin A-201. Availability: Mon-Fri 10:00-16:00.",
				Route:   deptbrain.RouteStructured,
				Sources: []deptbrain.Source{{ID: "f1", Text: "{\"id\":\"f1\"}"}},
			},
			want: "Dr. Asha Menon is in cabin A-201. Availability: Mon-Fri 10:00-16:00." +
				"\n\nroute: structured" +
				"\nsources:" +
				"\n  [f1] {\"id\":\"f1\"}",
		},
		{
			name: "retrieval source shows distance",
			answer: &deptbrain.Answer{
				Text:    "The library opens at 9.",
				Route:   deptbrain.RouteRAG,
				Sources: []deptbrain.Source{{ID: "rag-1", Text: "Department note: library", Score: &score}},
			},
			want: "The library opens at 9." +
				"\n\nroute: rag" +
				"\nsources:" +
				"\n  [rag-1] Department note: library (distance 0.1234)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, deptbrain.FormatAnswer(tt.answer))
		})
	}
}
