/**
* Name: 			session_storage.go
* Description: 		메모리 기반 덱 세션 저장소 (디스크에 저장하지 않음)
* Workflow: 		생성 -> 조회(last seen 갱신) -> 만료 시 정리
 */
package storage

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"SwipeDeck/internal/deck"
	"SwipeDeck/internal/wire"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Entry is one live session: its loop and the surface connections attach to.
type Entry struct {
	Loop     *deck.Loop
	Surface  *wire.Surface
	Created  time.Time
	lastSeen time.Time
}

type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Entry

	gen    deck.Generator
	opts   deck.Options
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func NewSessionStore(gen deck.Generator, opts deck.Options, ttl time.Duration, logger *slog.Logger) *SessionStore {
	ctx, cancel := context.WithCancel(context.Background())
	opts.Logger = logger
	return &SessionStore{
		sessions: make(map[string]*Entry),
		gen:      gen,
		opts:     opts,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Create starts a new session loop with a freshly dealt deck.
func (st *SessionStore) Create() *Entry {
	id := uuid.New().String()
	surface := wire.NewSurface()
	loop := deck.NewLoop(id, surface, st.gen, st.opts)
	go loop.Run(st.ctx)

	now := st.now()
	entry := &Entry{Loop: loop, Surface: surface, Created: now, lastSeen: now}

	st.mu.Lock()
	st.sessions[id] = entry
	st.mu.Unlock()

	st.logger.Info("session created", "session_id", id)
	return entry
}

// Get returns the session and marks it as recently used.
func (st *SessionStore) Get(id string) (*Entry, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	entry, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	entry.lastSeen = st.now()
	return entry, nil
}

func (st *SessionStore) Delete(id string) error {
	st.mu.Lock()
	entry, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	entry.Loop.Stop()
	st.logger.Info("session deleted", "session_id", id)
	return nil
}

func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep stops sessions idle for longer than the TTL. Sessions with a
// connection attached are never idle. Returns how many were removed.
func (st *SessionStore) Sweep(now time.Time) int {
	st.mu.Lock()
	var expired []*Entry
	for id, entry := range st.sessions {
		if entry.Surface.Attached() {
			entry.lastSeen = now
			continue
		}
		if now.Sub(entry.lastSeen) > st.ttl {
			expired = append(expired, entry)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	for _, entry := range expired {
		entry.Loop.Stop()
		st.logger.Info("session expired", "session_id", entry.Loop.ID())
	}
	return len(expired)
}

// RunJanitor sweeps every interval until ctx is done.
func (st *SessionStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			if n := st.Sweep(t); n > 0 {
				st.logger.Debug("janitor sweep", "expired", n, "live", st.Len())
			}
		}
	}
}

// Close stops every session loop.
func (st *SessionStore) Close() {
	st.cancel()
	st.mu.Lock()
	st.sessions = make(map[string]*Entry)
	st.mu.Unlock()
}
