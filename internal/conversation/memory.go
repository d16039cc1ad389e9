package conversation

import (
	"context"
	"sync"

	"govchat/internal/domain"
)

// Memory keeps dialogue state in process memory, one entry per
// conversation ID. Each entry carries its own mutex so updates to a
// single conversation are serialized while different conversations
// never contend with each other.
type Memory struct {
	mu     sync.Mutex
	states map[string]*entry
}

type entry struct {
	mu    sync.Mutex
	state domain.State
}

// NewMemory creates an empty in-memory conversation store.
func NewMemory() *Memory {
	return &Memory{states: make(map[string]*entry)}
}

func (m *Memory) entryFor(conversationID string) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.states[conversationID]
	if !ok {
		e = &entry{}
		m.states[conversationID] = e
	}
	return e
}

// Get returns a copy of the conversation's state. A conversation that
// has never been seen yields the zero state.
func (m *Memory) Get(ctx context.Context, conversationID string) (domain.State, error) {
	e := m.entryFor(conversationID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyState(e.state), nil
}

// AppendTurn records one exchange under the conversation's lock; a
// non-nil service becomes the conversation's last-service context.
func (m *Memory) AppendTurn(ctx context.Context, conversationID string, turn domain.Turn, service *domain.ServiceRecord) error {
	e := m.entryFor(conversationID)
	e.mu.Lock()
	defer e.mu.Unlock()
	if service != nil {
		rec := *service
		e.state.LastService = &rec
	}
	e.state.Turns = append(e.state.Turns, turn)
	return nil
}

func copyState(s domain.State) domain.State {
	out := domain.State{}
	if s.LastService != nil {
		rec := *s.LastService
		out.LastService = &rec
	}
	out.Turns = append(out.Turns, s.Turns...)
	return out
}

var _ domain.ConversationStore = (*Memory)(nil)
