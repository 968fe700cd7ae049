package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatMessageTimestampOmittedWhenZero(t *testing.T) {
	data, err := json.Marshal(ChatMessage{Content: "hi", Role: ChatRoleUser})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "timestamp")

	data, err = json.Marshal(ChatMessage{
		Content:   "hi",
		Role:      ChatRoleUser,
		Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), "timestamp")
}
