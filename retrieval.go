package deptbrain

import (
	"context"
	"fmt"
)

// Retrieval coordinates embedding and vector-store access for the RAG path.
// A nil store marks retrieval unavailable: Retrieve degrades to an empty
// result while Ingest fails loudly.
type Retrieval struct {
	embedder EmbeddingProvider
	store    VectorStore
}

// NewRetrieval creates a Retrieval. Either collaborator may be nil when the
// corresponding capability is not configured.
func NewRetrieval(embedder EmbeddingProvider, store VectorStore) *Retrieval {
	return &Retrieval{embedder: embedder, store: store}
}

// Available reports whether a vector store is configured.
func (r *Retrieval) Available() bool {
	return r.store != nil
}

// Ingest embeds and upserts one chunk per faculty record and one per note,
// returning the number of chunks written. Chunk IDs are the record IDs, so
// re-ingesting replaces entries instead of duplicating them.
func (r *Retrieval) Ingest(ctx context.Context, faculty []*Faculty, notes []*Note) (int, error) {
	if r.store == nil {
		return 0, Errorf(EUNAVAILABLE, "vector store is not configured")
	}
	if r.embedder == nil {
		return 0, Errorf(EUNAVAILABLE, "embedding provider is not configured")
	}

	chunks := make([]*Chunk, 0, len(faculty)+len(notes))
	for _, f := range faculty {
		chunks = append(chunks, FacultyChunk(f))
	}
	for _, n := range notes {
		chunks = append(chunks, NoteChunk(n))
	}
	if len(chunks) == 0 {
		return 0, nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	embeddings, err := r.embedder.Embed(ctx, texts)
	if err != nil {
		return 0, err
	}
	if len(embeddings) != len(chunks) {
		return 0, Errorf(EINTERNAL, "embedding count mismatch: %d texts, %d vectors", len(chunks), len(embeddings))
	}
	for i, c := range chunks {
		c.Embedding = embeddings[i]
	}

	if err := r.store.Upsert(ctx, chunks); err != nil {
		return 0, err
	}
	return len(chunks), nil
}

// Retrieve embeds the question and returns the k nearest chunks as sources
// tagged rag-1, rag-2, ... together with their distances. An unconfigured
// store yields an empty result, not an error.
func (r *Retrieval) Retrieve(ctx context.Context, question string, k int) ([]Source, error) {
	if r.store == nil {
		return nil, nil
	}
	if r.embedder == nil {
		return nil, Errorf(EUNAVAILABLE, "embedding provider is not configured")
	}

	vectors, err := r.embedder.Embed(ctx, []string{question})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, Errorf(EINTERNAL, "embedding provider returned no vector")
	}

	matches, err := r.store.Query(ctx, vectors[0], k)
	if err != nil {
		return nil, err
	}

	sources := make([]Source, 0, len(matches))
	for i, m := range matches {
		score := m.Distance
		sources = append(sources, Source{
			ID:       fmt.Sprintf("rag-%d", i+1),
			Text:     m.Chunk.Text,
			Metadata: m.Chunk.Metadata,
			Score:    &score,
		})
	}
	return sources, nil
}

// HasRelevantContext reports whether at least one source is scored at or
// under maxDistance. The threshold is inclusive.
func HasRelevantContext(sources []Source, maxDistance float64) bool {
	for _, s := range sources {
		if s.Score != nil && *s.Score <= maxDistance {
			return true
		}
	}
	return false
}
