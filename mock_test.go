package instructor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockAdapterPlaysScriptInOrder(t *testing.T) {
	adapter := &MockAdapter{Script: []MockTurn{
		{Response: "first"},
		{Err: errors.New("second fails")},
		{Response: "third"},
	}}
	req := NewRequest("m", nil)

	raw, err := adapter.Complete(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "first", raw)

	_, err = adapter.Complete(context.Background(), req)
	assert.EqualError(t, err, "second fails")

	raw, err = adapter.Complete(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "third", raw)

	_, err = adapter.Complete(context.Background(), req)
	assert.Error(t, err, "past the end of the script")
	assert.Equal(t, 4, adapter.Calls())
}

func TestMockAdapterRecordsRequestSnapshots(t *testing.T) {
	adapter := &MockAdapter{Script: []MockTurn{{Response: "a"}}}
	req := NewRequest("m", userMessages("hello"))

	_, err := adapter.Complete(context.Background(), req)
	require.NoError(t, err)

	// Mutating the live request afterwards must not change the recording.
	req.Messages[0].Content = "changed"
	assert.Equal(t, "hello", adapter.Requests()[0].Messages[0].Content)
}

func TestMockAdapterDefaultReask(t *testing.T) {
	adapter := &MockAdapter{}
	msgs := adapter.Reask("raw output", NewRequest("m", nil))
	require.Len(t, msgs, 1)
	assert.Equal(t, RoleAssistant, msgs[0].Role)
	assert.Equal(t, "raw output", msgs[0].Content)
	assert.NotEmpty(t, msgs[0].ID)
}
