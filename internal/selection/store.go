package selection

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// StoreProvider hands out a Store scoped to one browsing session.
type StoreProvider interface {
	For(sessionID string) Store
}

// redisStore keeps the two selection structures as JSON under a pair of
// session-scoped keys, matching the shape the browser widget writes to
// local storage.  Entries expire after the TTL so abandoned sessions do
// not accumulate.
type redisStore struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

// RedisProvider builds Redis-backed stores.  TTL of zero means entries
// never expire.
type RedisProvider struct {
	RDB *redis.Client
	TTL time.Duration
}

func (p *RedisProvider) For(sessionID string) Store {
	return &redisStore{rdb: p.RDB, key: "selection:" + sessionID, ttl: p.TTL}
}

type persistedSelection struct {
	SelectedTours       []string        `json:"selectedTours"`
	TransportSelections map[string]bool `json:"transportSelections"`
}

func (s *redisStore) Load(ctx context.Context) ([]string, map[string]bool, error) {
	raw, err := s.rdb.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	var p persistedSelection
	if err := json.Unmarshal(raw, &p); err != nil {
		// Corrupt payload: treat as empty rather than wedging the session.
		return nil, nil, nil
	}
	return p.SelectedTours, p.TransportSelections, nil
}

func (s *redisStore) Save(ctx context.Context, ids []string, transport map[string]bool) error {
	raw, err := json.Marshal(persistedSelection{
		SelectedTours:       ids,
		TransportSelections: transport,
	})
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key, raw, s.ttl).Err()
}

// MemoryProvider keeps selection state in process memory.  It backs the
// selection API when Redis is unavailable and the unit tests; state does
// not survive a restart.
type MemoryProvider struct {
	mu       sync.Mutex
	sessions map[string]*memoryStore
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{sessions: make(map[string]*memoryStore)}
}

func (p *MemoryProvider) For(sessionID string) Store {
	p.mu.Lock()
	defer p.mu.Unlock()
	st, ok := p.sessions[sessionID]
	if !ok {
		st = &memoryStore{}
		p.sessions[sessionID] = st
	}
	return st
}

type memoryStore struct {
	mu        sync.Mutex
	ids       []string
	transport map[string]bool
}

func (m *memoryStore) Load(ctx context.Context) ([]string, map[string]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, len(m.ids))
	copy(ids, m.ids)
	transport := make(map[string]bool, len(m.transport))
	for k, v := range m.transport {
		transport[k] = v
	}
	return ids, transport, nil
}

func (m *memoryStore) Save(ctx context.Context, ids []string, transport map[string]bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids = make([]string, len(ids))
	copy(m.ids, ids)
	m.transport = make(map[string]bool, len(transport))
	for k, v := range transport {
		m.transport[k] = v
	}
	return nil
}
