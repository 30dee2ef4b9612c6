package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/deptbrain"
	main "github.com/fwojciec/deptbrain/cmd/deptbrain"
	"github.com/fwojciec/deptbrain/mock"
)

func TestIngestCmd_Run(t *testing.T) {
	t.Parallel()

	catalog := deptbrain.NewCatalog(
		[]*deptbrain.Faculty{
			{ID: "f1", Name: "Dr. Asha Menon", Subjects: []string{"DBMS"}},
			{ID: "f2", Name: "Prof. Rohan Kulkarni", Subjects: []string{"Statistics"}},
		},
		[]*deptbrain.Note{
			{ID: "n1", Keywords: []string{"library"}, Text: "The library is on the second floor."},
		},
	)

	t.Run("ingests and reports the chunk count", func(t *testing.T) {
		t.Parallel()

		embedder := &mock.EmbeddingProvider{
			EmbedFn: func(_ context.Context, texts []string) ([][]float32, error) {
				vectors := make([][]float32, len(texts))
				for i := range vectors {
					vectors[i] = []float32{1, 0}
				}
				return vectors, nil
			},
		}
		store := &mock.VectorStore{
			UpsertFn: func(_ context.Context, chunks []*deptbrain.Chunk) error {
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Catalog:   catalog,
			Retrieval: deptbrain.NewRetrieval(embedder, store),
		}

		cmd := &main.IngestCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Knowledge base ingested. 3 chunks written.")
	})

	t.Run("reports a missing vector store on stderr", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Catalog:   catalog,
			Retrieval: deptbrain.NewRetrieval(nil, nil),
		}

		cmd := &main.IngestCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, deptbrain.EUNAVAILABLE, deptbrain.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: vector store is not configured")
	})
}
