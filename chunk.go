package deptbrain

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Chunk is a unit of department knowledge stored for retrieval. IDs are
// stable across ingests so that re-ingesting replaces rather than duplicates.
type Chunk struct {
	ID        string            `json:"id"`
	Text      string            `json:"text"`
	Metadata  map[string]string `json:"metadata"`
	Embedding []float32         `json:"embedding,omitempty"`
}

// Validate returns an error if the chunk is missing required fields.
func (c *Chunk) Validate() error {
	if c.ID == "" {
		return Errorf(EINVALID, "chunk id required")
	}
	if c.Text == "" {
		return Errorf(EINVALID, "chunk text required")
	}
	return nil
}

// Match is a chunk returned from a vector-store query together with its
// distance from the query embedding. Lower distance means a closer match.
type Match struct {
	Chunk    *Chunk
	Distance float64
}

// VectorStore persists embedded chunks and answers nearest-neighbor queries.
type VectorStore interface {
	// Upsert inserts or replaces chunks by ID.
	Upsert(ctx context.Context, chunks []*Chunk) error

	// Query returns up to k chunks nearest to embedding, closest first.
	Query(ctx context.Context, embedding []float32, k int) ([]*Match, error)
}

// FacultyChunk renders a faculty record as retrievable text.
func FacultyChunk(f *Faculty) *Chunk {
	semesters := make([]string, len(f.Semesters))
	for i, s := range f.Semesters {
		semesters[i] = strconv.Itoa(s)
	}

	text := fmt.Sprintf("Faculty: %s. Subjects: %s. Semesters: %s. Cabin: %s. Availability: %s.",
		f.Name,
		strings.Join(f.Subjects, ", "),
		strings.Join(semesters, ", "),
		f.Cabin,
		f.Availability,
	)

	return &Chunk{
		ID:   f.ID,
		Text: text,
		Metadata: map[string]string{
			"type":  "faculty",
			"name":  f.Name,
			"cabin": f.Cabin,
		},
	}
}

// NoteChunk renders a department note as retrievable text.
func NoteChunk(n *Note) *Chunk {
	return &Chunk{
		ID:   n.ID,
		Text: "Department note: " + n.Text,
		Metadata: map[string]string{
			"type": "note",
		},
	}
}
