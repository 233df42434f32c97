package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	instructor "github.com/mikkihugo/instructor-go"
	"github.com/mikkihugo/instructor-go/models"
)

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestExtractNoModelConfigured(t *testing.T) {
	c := New(Config{})

	_, err := Extract[person](context.Background(), c, models.ChatModel{}, nil)
	require.Error(t, err)

	var noModel *ErrNoModel
	assert.ErrorAs(t, err, &noModel)
}

func TestExtractMissingAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		model    models.ChatModel
		provider string
	}{
		{"anthropic", models.ClaudeSonnet45, "anthropic"},
		{"openai", models.GPT52, "openai"},
		{"google", models.Gemini25Flash, "google"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(Config{})

			_, err := Extract[person](context.Background(), c, tc.model, nil)
			require.Error(t, err)

			var missing *ErrMissingAPIKey
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.provider, missing.Provider)
		})
	}
}

func TestExtractFallsBackToDefaultModel(t *testing.T) {
	c := New(Config{DefaultModel: models.GPT52})

	_, err := Extract[person](context.Background(), c, models.ChatModel{}, nil)
	require.Error(t, err)

	// Routing reached the provider lookup for the default model.
	var missing *ErrMissingAPIKey
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "openai", missing.Provider)
}

func TestRunMissingAPIKey(t *testing.T) {
	c := New(Config{})
	dec := instructor.DecoderFunc[string](func(v any) (string, []instructor.DecodeError) {
		return "", nil
	})

	_, err := Run(context.Background(), c, models.ClaudeSonnet45, nil, dec)
	var missing *ErrMissingAPIKey
	require.ErrorAs(t, err, &missing)
}

func TestErrMissingAPIKeyMessage(t *testing.T) {
	err := &ErrMissingAPIKey{Provider: "openai", Model: "gpt-5.2"}
	assert.Contains(t, err.Error(), "openai")
	assert.Contains(t, err.Error(), "gpt-5.2")

	bare := &ErrMissingAPIKey{Provider: "google"}
	assert.Equal(t, "no API key configured for google", bare.Error())
}

func TestRequestAppliesDefaults(t *testing.T) {
	c := New(Config{DefaultMaxRetries: 3},
		WithDefaultTemperature(0.2),
		WithDefaultMaxTokens(512),
	)

	req := c.request(models.GPT52, nil, nil)
	assert.Equal(t, "gpt-5.2", req.Model)
	assert.Equal(t, 3, req.MaxRetries)
	require.NotNil(t, req.Temperature)
	assert.Equal(t, 0.2, *req.Temperature)
	assert.Equal(t, 512, req.MaxTokens)
}

func TestRequestPerCallOptionsWin(t *testing.T) {
	c := New(Config{DefaultMaxRetries: 3}, WithDefaultTemperature(0.2))

	req := c.request(models.GPT52, nil, []instructor.Option{
		instructor.WithTemperature(0.9),
		instructor.WithMaxRetries(0),
	})
	assert.Equal(t, 0.9, *req.Temperature)
	assert.Equal(t, 0, req.MaxRetries)
}
