// Package memory provides the in-memory, session-scoped vector store.
// Entries live for a bounded TTL and are swept by a janitor goroutine or an
// explicit EvictExpired call.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/inkforge-labs/quill-cli/internal/core/domain"
	"github.com/inkforge-labs/quill-cli/internal/core/ports/driven"
	"github.com/inkforge-labs/quill-cli/internal/core/similarity"
	"github.com/inkforge-labs/quill-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.SessionVectorStore = (*Store)(nil)

// DefaultTTL is how long an idle session survives.
const DefaultTTL = time.Hour

// DefaultSweepInterval is how often the janitor evicts expired sessions.
const DefaultSweepInterval = 10 * time.Minute

// DefaultTopK is the query result size when the caller passes none.
const DefaultTopK = 5

// entry holds one session's documents and activity timestamps.
type entry struct {
	documents    []domain.EmbeddingDocument
	createdAt    time.Time
	lastAccessed time.Time
}

// systemClock is the production clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Store is an in-memory implementation of driven.SessionVectorStore.
type Store struct {
	mu            sync.RWMutex
	sessions      map[string]*entry
	ttl           time.Duration
	sweepInterval time.Duration
	clock         driven.Clock

	stopOnce sync.Once
	done     chan struct{}
}

// Option configures the store.
type Option func(*Store)

// WithTTL sets the idle lifetime of a session.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithSweepInterval sets how often the janitor runs.
func WithSweepInterval(interval time.Duration) Option {
	return func(s *Store) {
		if interval > 0 {
			s.sweepInterval = interval
		}
	}
}

// WithClock injects a time source. Tests use this to drive expiry
// deterministically.
func WithClock(clock driven.Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New creates a session vector store. Call Start to run the janitor and
// Close to stop it; EvictExpired also works without the janitor.
func New(opts ...Option) *Store {
	s := &Store{
		sessions:      make(map[string]*entry),
		ttl:           DefaultTTL,
		sweepInterval: DefaultSweepInterval,
		clock:         systemClock{},
		done:          make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start launches the background eviction sweep. It returns immediately and
// never blocks in-flight requests.
func (s *Store) Start() {
	go func() {
		ticker := time.NewTicker(s.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := s.EvictExpired(context.Background()); n > 0 {
					logger.Debug("Evicted %d expired session(s)", n)
				}
			case <-s.done:
				return
			}
		}
	}()
}

// Close stops the janitor. Stored sessions remain readable until the
// process exits or ClearAll is called.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Store replaces the session's entire document set. Last writer wins.
func (s *Store) Store(_ context.Context, sessionID string, docs []domain.EmbeddingDocument) error {
	now := s.clock.Now()

	copied := make([]domain.EmbeddingDocument, len(docs))
	copy(copied, docs)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = &entry{
		documents:    copied,
		createdAt:    now,
		lastAccessed: now,
	}
	return nil
}

// Query returns up to topK documents ranked by cosine similarity to the
// query vector and refreshes the session's last-accessed time. An unknown
// or empty session is a normal state and yields an empty result.
func (s *Store) Query(_ context.Context, sessionID string, query []float32, topK int) ([]domain.ScoredDocument, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[sessionID]
	if !ok || len(e.documents) == 0 {
		return nil, nil
	}
	e.lastAccessed = s.clock.Now()

	return similarity.TopK(query, e.documents, topK), nil
}

// Has reports whether the session exists and holds at least one document.
func (s *Store) Has(_ context.Context, sessionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[sessionID]
	return ok && len(e.documents) > 0
}

// EvictExpired removes every session idle for longer than the TTL and
// returns how many were removed.
func (s *Store) EvictExpired(_ context.Context) int {
	cutoff := s.clock.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, e := range s.sessions {
		if e.lastAccessed.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Clear removes a single session.
func (s *Store) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// ClearAll removes every session.
func (s *Store) ClearAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*entry)
	return nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
