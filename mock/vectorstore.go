package mock

import (
	"context"

	"github.com/fwojciec/deptbrain"
)

var _ deptbrain.VectorStore = (*VectorStore)(nil)

// VectorStore is a mock implementation of deptbrain.VectorStore.
type VectorStore struct {
	UpsertFn func(ctx context.Context, chunks []*deptbrain.Chunk) error
	QueryFn  func(ctx context.Context, embedding []float32, k int) ([]*deptbrain.Match, error)
}

func (s *VectorStore) Upsert(ctx context.Context, chunks []*deptbrain.Chunk) error {
	return s.UpsertFn(ctx, chunks)
}

func (s *VectorStore) Query(ctx context.Context, embedding []float32, k int) ([]*deptbrain.Match, error) {
	return s.QueryFn(ctx, embedding, k)
}
