// interfaces/websocket/registry.go
package websocket

import (
	"hash/fnv"
	"sync"

	"github.com/google/uuid"
)

const registryShards = 16

// Registry tracks open sessions per user. It is sharded so that churn on one
// identity never contends with lookups on another: each shard holds its own
// lock and its own slice of the userID -> sessions map.
type Registry struct {
	shards [registryShards]*registryShard

	// byID resolves a session id directly, for the sender-echo path.
	idMu sync.RWMutex
	byID map[uuid.UUID]*Client
}

type registryShard struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]map[uuid.UUID]*Client
}

func NewRegistry() *Registry {
	r := &Registry{byID: make(map[uuid.UUID]*Client)}
	for i := range r.shards {
		r.shards[i] = &registryShard{
			sessions: make(map[uuid.UUID]map[uuid.UUID]*Client),
		}
	}
	return r
}

func (r *Registry) shardFor(userID uuid.UUID) *registryShard {
	h := fnv.New32a()
	h.Write(userID[:])
	return r.shards[h.Sum32()%registryShards]
}

// Register adds a session and reports whether the user just became reachable
// (this is their first open session).
func (r *Registry) Register(client *Client) (becameReachable bool) {
	s := r.shardFor(client.UserID)
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sessions[client.UserID]
	if !ok {
		set = make(map[uuid.UUID]*Client)
		s.sessions[client.UserID] = set
	}
	becameReachable = len(set) == 0
	set[client.ID] = client

	r.idMu.Lock()
	r.byID[client.ID] = client
	r.idMu.Unlock()
	return becameReachable
}

// Unregister removes a session and reports whether the user just became
// unreachable (that was their last open session). Unknown sessions are a
// no-op.
func (r *Registry) Unregister(client *Client) (becameUnreachable bool) {
	s := r.shardFor(client.UserID)
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sessions[client.UserID]
	if !ok {
		return false
	}
	if _, ok := set[client.ID]; !ok {
		return false
	}
	delete(set, client.ID)

	r.idMu.Lock()
	delete(r.byID, client.ID)
	r.idMu.Unlock()

	if len(set) == 0 {
		delete(s.sessions, client.UserID)
		return true
	}
	return false
}

// SessionsFor returns a snapshot of the user's open sessions. The returned
// slice is safe to iterate without holding any registry lock.
func (r *Registry) SessionsFor(userID uuid.UUID) []*Client {
	s := r.shardFor(userID)
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.sessions[userID]
	if len(set) == 0 {
		return nil
	}
	out := make([]*Client, 0, len(set))
	for _, c := range set {
		out = append(out, c)
	}
	return out
}

// IsReachable reports whether the user has at least one open session.
func (r *Registry) IsReachable(userID uuid.UUID) bool {
	s := r.shardFor(userID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions[userID]) > 0
}

// Session resolves a single session by id, or nil when it is gone.
func (r *Registry) Session(sessionID uuid.UUID) *Client {
	r.idMu.RLock()
	defer r.idMu.RUnlock()
	return r.byID[sessionID]
}

// ConnectedUsers returns every user that currently has at least one session.
func (r *Registry) ConnectedUsers() []uuid.UUID {
	var out []uuid.UUID
	for _, s := range r.shards {
		s.mu.RLock()
		for userID := range s.sessions {
			out = append(out, userID)
		}
		s.mu.RUnlock()
	}
	return out
}

// SessionCount returns the total number of open sessions across all users.
func (r *Registry) SessionCount() int {
	n := 0
	for _, s := range r.shards {
		s.mu.RLock()
		for _, set := range s.sessions {
			n += len(set)
		}
		s.mu.RUnlock()
	}
	return n
}
