package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"govchat/internal/domain"
	logx "govchat/pkg/logger"
)

// Redis keeps dialogue state in Redis: the turn history is a list the
// store only ever appends to, the last-service context a separate
// value, both expiring together on a TTL refreshed by every append.
// Appending instead of rewriting the whole state keeps concurrent
// turns of one conversation from overwriting each other, so the store
// is safe for multi-process deployments. Suited to setups where the
// in-memory store cannot be shared.
type Redis struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewRedis creates a Redis-backed conversation store.
func NewRedis(rdb redis.Cmdable, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

func turnsKey(conversationID string) string {
	return fmt.Sprintf("conversation:%s:turns", conversationID)
}

func serviceKey(conversationID string) string {
	return fmt.Sprintf("conversation:%s:service", conversationID)
}

// Get loads the conversation's state; a conversation with no stored
// turns or service yields the zero state.
func (r *Redis) Get(ctx context.Context, conversationID string) (domain.State, error) {
	raw, err := r.rdb.LRange(ctx, turnsKey(conversationID), 0, -1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		logx.Error().Err(err).Str("conversation", conversationID).Msg("failed to load conversation turns")
		return domain.State{}, fmt.Errorf("load conversation turns: %w", err)
	}
	state := domain.State{}
	if state.Turns, err = decodeTurns(raw); err != nil {
		return domain.State{}, err
	}

	svc, err := r.rdb.Get(ctx, serviceKey(conversationID)).Result()
	if errors.Is(err, redis.Nil) {
		return state, nil
	}
	if err != nil {
		logx.Error().Err(err).Str("conversation", conversationID).Msg("failed to load conversation service")
		return domain.State{}, fmt.Errorf("load conversation service: %w", err)
	}
	var rec domain.ServiceRecord
	if err := json.Unmarshal([]byte(svc), &rec); err != nil {
		return domain.State{}, fmt.Errorf("unmarshal conversation service: %w", err)
	}
	state.LastService = &rec
	return state, nil
}

// AppendTurn pushes one exchange onto the conversation's turn list and
// refreshes the TTL, all in one pipelined transaction. A non-nil
// service replaces the last-service value in the same transaction.
func (r *Redis) AppendTurn(ctx context.Context, conversationID string, turn domain.Turn, service *domain.ServiceRecord) error {
	encoded, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("marshal conversation turn: %w", err)
	}
	var svc []byte
	if service != nil {
		if svc, err = json.Marshal(service); err != nil {
			return fmt.Errorf("marshal conversation service: %w", err)
		}
	}

	tKey, sKey := turnsKey(conversationID), serviceKey(conversationID)
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, tKey, encoded)
		pipe.Expire(ctx, tKey, r.ttl)
		if svc != nil {
			pipe.Set(ctx, sKey, svc, r.ttl)
		} else {
			pipe.Expire(ctx, sKey, r.ttl)
		}
		return nil
	})
	if err != nil {
		logx.Error().Err(err).Str("conversation", conversationID).Msg("failed to append conversation turn")
		return fmt.Errorf("append conversation turn: %w", err)
	}
	return nil
}

func decodeTurns(raw []string) ([]domain.Turn, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	turns := make([]domain.Turn, len(raw))
	for i, item := range raw {
		if err := json.Unmarshal([]byte(item), &turns[i]); err != nil {
			return nil, fmt.Errorf("unmarshal conversation turn: %w", err)
		}
	}
	return turns, nil
}

var _ domain.ConversationStore = (*Redis)(nil)
