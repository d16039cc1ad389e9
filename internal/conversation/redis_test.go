package conversation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govchat/internal/domain"
)

func TestRedisKeysArePerConversation(t *testing.T) {
	assert.Equal(t, "conversation:c1:turns", turnsKey("c1"))
	assert.Equal(t, "conversation:c1:service", serviceKey("c1"))
	assert.NotEqual(t, turnsKey("a"), turnsKey("b"))
}

func TestDecodeTurnsRoundTrip(t *testing.T) {
	in := []domain.Turn{
		{User: "வணக்கம்", Bot: "வணக்கம்! நான் உதவ இங்கே இருக்கிறேன்."},
		{User: "income certificate", Bot: "Income Certificate details…"},
	}
	raw := make([]string, len(in))
	for i, turn := range in {
		b, err := json.Marshal(turn)
		require.NoError(t, err)
		raw[i] = string(b)
	}

	out, err := decodeTurns(raw)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].User, out[i].User)
		assert.Equal(t, in[i].Bot, out[i].Bot)
	}
}

func TestDecodeTurnsEmptyList(t *testing.T) {
	out, err := decodeTurns(nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestDecodeTurnsRejectsCorruptEntry(t *testing.T) {
	_, err := decodeTurns([]string{`{"user":"ok","bot":"ok"}`, `{broken`})
	assert.Error(t, err)
}
