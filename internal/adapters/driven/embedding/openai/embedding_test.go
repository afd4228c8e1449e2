package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkforge-labs/quill-cli/internal/core/domain"
)

// newTestServer returns a server that answers /embeddings with a fixed
// 3-dimensional vector per input, in reverse index order to exercise the
// reordering logic.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/models" {
			w.WriteHeader(http.StatusOK)
			return
		}

		var req embeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		type datum struct {
			Embedding []float64 `json:"embedding"`
			Index     int       `json:"index"`
		}
		data := make([]datum, 0, len(req.Input))
		for i := len(req.Input) - 1; i >= 0; i-- {
			data = append(data, datum{
				Embedding: []float64{float64(i), 1, 0},
				Index:     i,
			})
		}
		resp := map[string]any{"data": data}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func newTestService(t *testing.T, baseURL string) *EmbeddingService {
	t.Helper()
	svc, err := NewEmbeddingService(Config{
		APIKey:     "test-key",
		BaseURL:    baseURL,
		Dimensions: 3,
	})
	require.NoError(t, err)
	return svc
}

func TestNewEmbeddingService_RequiresAPIKey(t *testing.T) {
	_, err := NewEmbeddingService(Config{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewEmbeddingService_Defaults(t *testing.T) {
	svc, err := NewEmbeddingService(Config{APIKey: "k"})
	require.NoError(t, err)

	assert.Equal(t, DefaultModel, svc.ModelName())
	assert.Equal(t, DefaultDimensions, svc.Dimensions())
	assert.Equal(t, DefaultBatchSize, svc.batchSize)
	assert.Equal(t, DefaultMaxInputChars, svc.maxInputChars)
}

func TestEmbedBatch_OrdersByIndex(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()
	svc := newTestService(t, server.URL)

	got, err := svc.EmbedBatch(context.Background(), []string{"first", "second", "third"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []float32{0, 1, 0}, got[0])
	assert.Equal(t, []float32{1, 1, 0}, got[1])
	assert.Equal(t, []float32{2, 1, 0}, got[2])
}

func TestEmbedBatch_EmptyInput(t *testing.T) {
	svc := newTestService(t, "http://unused.invalid")

	got, err := svc.EmbedBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEmbedBatch_APIErrorFailsCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"rate limited","type":"rate_limit_error"}}`)
	}))
	defer server.Close()
	svc := newTestService(t, server.URL)

	_, err := svc.EmbedBatch(context.Background(), []string{"text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestEmbed_ReturnsSingleVector(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()
	svc := newTestService(t, server.URL)

	got, err := svc.Embed(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 0}, got)
}

func TestEmbedDocuments_BatchesAndSkipsFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		// Fail the second batch only.
		if n == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error":{"message":"boom","type":"server_error"}}`)
			return
		}

		var req embeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		type datum struct {
			Embedding []float64 `json:"embedding"`
			Index     int       `json:"index"`
		}
		data := make([]datum, len(req.Input))
		for i := range req.Input {
			data[i] = datum{Embedding: []float64{1, 0, 0}, Index: i}
		}
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"data": data}))
	}))
	defer server.Close()
	svc := newTestService(t, server.URL)

	chunks := make([]domain.TextChunk, 25)
	for i := range chunks {
		chunks[i] = domain.TextChunk{
			ID:         i,
			Text:       fmt.Sprintf("chunk text %d", i),
			StartIndex: i * 100,
			EndIndex:   i*100 + 90,
		}
	}

	docs, err := svc.EmbedDocuments(context.Background(), chunks)
	require.NoError(t, err)

	// 25 chunks in batches of 10: batch two (chunks 10-19) is dropped.
	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, docs, 15)
	assert.Equal(t, "chunk-0", docs[0].ID)
	assert.Equal(t, "chunk-20", docs[10].ID)
	assert.Equal(t, 0, docs[0].Metadata["startIndex"])
	assert.Equal(t, 90, docs[0].Metadata["endIndex"])
}

func TestEmbedDocuments_EmptyInput(t *testing.T) {
	svc := newTestService(t, "http://unused.invalid")

	docs, err := svc.EmbedDocuments(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, docs)
}

func TestPing(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()
	svc := newTestService(t, server.URL)

	assert.NoError(t, svc.Ping(context.Background()))
}

func TestPing_Unreachable(t *testing.T) {
	svc := newTestService(t, "http://127.0.0.1:1")

	assert.Error(t, svc.Ping(context.Background()))
}

func TestEstimateCost(t *testing.T) {
	svc, err := NewEmbeddingService(Config{APIKey: "k"})
	require.NoError(t, err)

	// 4,000 chars ~ 1,000 tokens of text-embedding-3-small.
	cost := svc.EstimateCost([]string{strings.Repeat("a", 2000), strings.Repeat("b", 2000)})
	assert.InDelta(t, 0.00002, cost, 1e-9)

	assert.Zero(t, svc.EstimateCost(nil))
}

func TestEstimateCost_CapsOversizedTexts(t *testing.T) {
	svc, err := NewEmbeddingService(Config{APIKey: "k", MaxInputChars: 100})
	require.NoError(t, err)

	capped := svc.EstimateCost([]string{strings.Repeat("a", 10000)})
	small := svc.EstimateCost([]string{strings.Repeat("a", 100)})
	assert.Equal(t, small, capped)
}

func TestTruncateInput(t *testing.T) {
	svc, err := NewEmbeddingService(Config{APIKey: "k", MaxInputChars: 100})
	require.NoError(t, err)

	t.Run("short input untouched", func(t *testing.T) {
		assert.Equal(t, "short text", svc.truncateInput("short text"))
	})

	t.Run("prefers sentence boundary", func(t *testing.T) {
		text := strings.Repeat("x", 85) + ". " + strings.Repeat("y", 200)
		got := svc.truncateInput(text)
		assert.Equal(t, strings.Repeat("x", 85)+".", got)
	})

	t.Run("falls back to word boundary", func(t *testing.T) {
		text := strings.Repeat("x", 90) + " " + strings.Repeat("y", 200)
		got := svc.truncateInput(text)
		assert.Equal(t, strings.Repeat("x", 90), got)
	})

	t.Run("hard cut when no usable boundary", func(t *testing.T) {
		text := strings.Repeat("z", 300)
		got := svc.truncateInput(text)
		assert.Len(t, got, 100)
	})

	t.Run("ignores boundary below the keep threshold", func(t *testing.T) {
		text := strings.Repeat("a", 20) + ". " + strings.Repeat("b", 300)
		got := svc.truncateInput(text)
		assert.Len(t, got, 100)
	})
}
