package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/fwojciec/deptbrain"
)

// Ensure ChunkService implements deptbrain.VectorStore.
var _ deptbrain.VectorStore = (*ChunkService)(nil)

// ChunkService stores embedded chunks in SQLite. Embeddings are packed as
// little-endian float32 blobs and compared with a full scan; department
// catalogs are small enough that no index is needed.
type ChunkService struct {
	db *DB
}

// NewChunkService creates a ChunkService backed by db.
func NewChunkService(db *DB) *ChunkService {
	return &ChunkService{db: db}
}

// Upsert inserts or replaces chunks by ID. A row whose content hash matches
// the incoming chunk is left untouched, so repeated ingests of unchanged
// data do not rewrite the table.
func (s *ChunkService) Upsert(ctx context.Context, chunks []*deptbrain.Chunk) error {
	for _, chunk := range chunks {
		if err := chunk.Validate(); err != nil {
			return err
		}
		if len(chunk.Embedding) == 0 {
			return deptbrain.Errorf(deptbrain.EINVALID, "chunk %q has no embedding", chunk.ID)
		}

		metadata, err := json.Marshal(chunk.Metadata)
		if err != nil {
			return deptbrain.Errorf(deptbrain.EINTERNAL, "marshal chunk metadata: %v", err)
		}
		embedding := encodeEmbedding(chunk.Embedding)

		_, err = s.db.ExecContext(ctx, `
			INSERT INTO chunks (id, text, metadata, embedding, content_hash, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET
				text = excluded.text,
				metadata = excluded.metadata,
				embedding = excluded.embedding,
				content_hash = excluded.content_hash,
				updated_at = excluded.updated_at
			WHERE chunks.content_hash <> excluded.content_hash
		`,
			chunk.ID,
			chunk.Text,
			string(metadata),
			embedding,
			hashChunk(chunk.Text, metadata, embedding),
			time.Now().UTC().Format(time.RFC3339),
		)
		if err != nil {
			return deptbrain.Errorf(deptbrain.EINTERNAL, "upsert chunk %q: %v", chunk.ID, err)
		}
	}
	return nil
}

// Query scans all chunks and returns the k nearest to embedding by squared
// L2 distance, closest first. Rows embedded with a different dimension
// cannot be compared and are skipped.
func (s *ChunkService) Query(ctx context.Context, embedding []float32, k int) ([]*deptbrain.Match, error) {
	if k < 1 {
		return nil, deptbrain.Errorf(deptbrain.EINVALID, "k must be at least 1")
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, text, metadata, embedding FROM chunks`)
	if err != nil {
		return nil, deptbrain.Errorf(deptbrain.EINTERNAL, "query chunks: %v", err)
	}
	defer rows.Close()

	var matches []*deptbrain.Match
	for rows.Next() {
		var id, text, metadata string
		var blob []byte
		if err := rows.Scan(&id, &text, &metadata, &blob); err != nil {
			return nil, deptbrain.Errorf(deptbrain.EINTERNAL, "scan chunk: %v", err)
		}

		stored := decodeEmbedding(blob)
		if len(stored) != len(embedding) {
			continue
		}

		var meta map[string]string
		if err := json.Unmarshal([]byte(metadata), &meta); err != nil {
			return nil, deptbrain.Errorf(deptbrain.EINTERNAL, "unmarshal chunk metadata: %v", err)
		}

		matches = append(matches, &deptbrain.Match{
			Chunk:    &deptbrain.Chunk{ID: id, Text: text, Metadata: meta},
			Distance: squaredL2(stored, embedding),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, deptbrain.Errorf(deptbrain.EINTERNAL, "iterate chunks: %v", err)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	if len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}

// hashChunk computes an xxHash over everything that defines a stored row.
func hashChunk(text string, metadata, embedding []byte) string {
	h := xxhash.New()
	_, _ = h.WriteString(text)
	_, _ = h.Write(metadata)
	_, _ = h.Write(embedding)

	sum := make([]byte, 8)
	binary.BigEndian.PutUint64(sum, h.Sum64())
	return hex.EncodeToString(sum)
}

// encodeEmbedding packs a vector as little-endian float32 bytes.
func encodeEmbedding(v []float32) []byte {
	b := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(f))
	}
	return b
}

// decodeEmbedding unpacks a little-endian float32 blob.
func decodeEmbedding(b []byte) []float32 {
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return v
}

// squaredL2 is the squared Euclidean distance between a and b.
func squaredL2(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}
