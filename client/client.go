package client

import (
	"context"
	"fmt"
	"sync"

	instructor "github.com/mikkihugo/instructor-go"
	"github.com/mikkihugo/instructor-go/internal/provider/anthropic"
	"github.com/mikkihugo/instructor-go/internal/provider/google"
	"github.com/mikkihugo/instructor-go/internal/provider/openai"
	"github.com/mikkihugo/instructor-go/models"
)

// APIKeys holds API keys for different providers.
// Only configure keys for providers you intend to use.
type APIKeys struct {
	Anthropic string
	OpenAI    string
	Google    string
}

// Config holds configuration for creating a unified client.
type Config struct {
	// APIKeys contains authentication keys for each provider.
	APIKeys APIKeys

	// DefaultModel is used when a call does not name a model.
	DefaultModel models.ChatModel

	// DefaultMaxRetries is the retry budget applied when a request does not
	// set one. Zero means no retries.
	DefaultMaxRetries int

	// Events is an optional channel for receiving retry loop events.
	// Events are sent non-blocking; if the channel is full, events are dropped.
	Events chan<- instructor.Event
}

// ErrMissingAPIKey is returned when a model is used but no API key is
// configured for that model's provider.
type ErrMissingAPIKey struct {
	Provider string
	Model    string
}

func (e *ErrMissingAPIKey) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("no API key configured for %s (required by model %q)", e.Provider, e.Model)
	}
	return fmt.Sprintf("no API key configured for %s", e.Provider)
}

// ErrNoModel is returned when no model is specified and no default is
// configured.
type ErrNoModel struct{}

func (e *ErrNoModel) Error() string {
	return "no model specified: set client.Config.DefaultModel or pass a model"
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithDefaultTemperature sets the default temperature for requests.
// Per-request options override this default.
func WithDefaultTemperature(t float64) ClientOption {
	return func(c *Client) {
		c.defaultOpts = append(c.defaultOpts, instructor.WithTemperature(t))
	}
}

// WithDefaultMaxTokens sets the default max tokens for requests.
// Per-request options override this default.
func WithDefaultMaxTokens(n int) ClientOption {
	return func(c *Client) {
		c.defaultOpts = append(c.defaultOpts, instructor.WithMaxTokens(n))
	}
}

// WithDefaultOptions sets default options for all requests.
// Per-request options override these defaults.
func WithDefaultOptions(opts ...instructor.Option) ClientOption {
	return func(c *Client) {
		c.defaultOpts = append(c.defaultOpts, opts...)
	}
}

// Client routes extraction requests to the provider backend owning the
// model. Provider adapters are lazily initialized when first needed.
type Client struct {
	apiKeys           APIKeys
	defaultModel      models.ChatModel
	defaultMaxRetries int
	events            chan<- instructor.Event
	defaultOpts       []instructor.Option

	// Lazy-initialized adapters (protected by mutex)
	mu               sync.RWMutex
	anthropicAdapter *anthropic.Adapter
	openaiAdapter    *openai.Adapter
	googleAdapter    *google.Adapter
	googleInitErr    error
}

// New creates a unified client with the given configuration.
func New(cfg Config, opts ...ClientOption) *Client {
	c := &Client{
		apiKeys:           cfg.APIKeys,
		defaultModel:      cfg.DefaultModel,
		defaultMaxRetries: cfg.DefaultMaxRetries,
		events:            cfg.Events,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getAnthropicAdapter returns the Anthropic adapter, initializing it if needed.
func (c *Client) getAnthropicAdapter() (*anthropic.Adapter, error) {
	c.mu.RLock()
	if c.anthropicAdapter != nil {
		defer c.mu.RUnlock()
		return c.anthropicAdapter, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.anthropicAdapter != nil {
		return c.anthropicAdapter, nil
	}

	if c.apiKeys.Anthropic == "" {
		return nil, &ErrMissingAPIKey{Provider: "anthropic"}
	}

	c.anthropicAdapter = anthropic.New(c.apiKeys.Anthropic)
	return c.anthropicAdapter, nil
}

// getOpenAIAdapter returns the OpenAI adapter, initializing it if needed.
func (c *Client) getOpenAIAdapter() (*openai.Adapter, error) {
	c.mu.RLock()
	if c.openaiAdapter != nil {
		defer c.mu.RUnlock()
		return c.openaiAdapter, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.openaiAdapter != nil {
		return c.openaiAdapter, nil
	}

	if c.apiKeys.OpenAI == "" {
		return nil, &ErrMissingAPIKey{Provider: "openai"}
	}

	c.openaiAdapter = openai.New(c.apiKeys.OpenAI)
	return c.openaiAdapter, nil
}

// getGoogleAdapter returns the Google adapter, initializing it if needed.
// Initialization can fail, so the failure is cached alongside the adapter.
func (c *Client) getGoogleAdapter(ctx context.Context) (*google.Adapter, error) {
	c.mu.RLock()
	if c.googleAdapter != nil {
		defer c.mu.RUnlock()
		return c.googleAdapter, nil
	}
	if c.googleInitErr != nil {
		defer c.mu.RUnlock()
		return nil, c.googleInitErr
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.googleAdapter != nil {
		return c.googleAdapter, nil
	}
	if c.googleInitErr != nil {
		return nil, c.googleInitErr
	}

	if c.apiKeys.Google == "" {
		return nil, &ErrMissingAPIKey{Provider: "google"}
	}

	adapter, err := google.New(ctx, c.apiKeys.Google)
	if err != nil {
		c.googleInitErr = fmt.Errorf("failed to initialize Google adapter: %w", err)
		return nil, c.googleInitErr
	}

	c.googleAdapter = adapter
	return c.googleAdapter, nil
}

// adapterFor returns the adapter serving the given model's provider.
func (c *Client) adapterFor(ctx context.Context, model models.ChatModel) (instructor.Adapter, error) {
	switch model.Provider() {
	case instructor.ProviderAnthropic:
		return c.getAnthropicAdapter()
	case instructor.ProviderOpenAI:
		return c.getOpenAIAdapter()
	case instructor.ProviderGoogle:
		return c.getGoogleAdapter(ctx)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", model.Provider())
	}
}

// resolveModel picks the call's model, falling back to the configured default.
func (c *Client) resolveModel(model models.ChatModel) (models.ChatModel, error) {
	if !model.IsZero() {
		return model, nil
	}
	if !c.defaultModel.IsZero() {
		return c.defaultModel, nil
	}
	return models.ChatModel{}, &ErrNoModel{}
}

// request builds a Request with client defaults applied before per-call
// options so the latter win.
func (c *Client) request(model models.ChatModel, messages []instructor.Message, opts []instructor.Option) *instructor.Request {
	all := make([]instructor.Option, 0, len(c.defaultOpts)+len(opts)+2)
	all = append(all, instructor.WithMaxRetries(c.defaultMaxRetries))
	if c.events != nil {
		all = append(all, instructor.WithEvents(c.events))
	}
	all = append(all, c.defaultOpts...)
	all = append(all, opts...)
	return instructor.NewRequest(model.String(), messages, all...)
}

// Extract runs validation-guided extraction of T from the conversation,
// routed to the provider backend owning the model.
func Extract[T any](ctx context.Context, c *Client, model models.ChatModel, messages []instructor.Message, opts ...instructor.Option) (T, error) {
	var zero T

	resolved, err := c.resolveModel(model)
	if err != nil {
		return zero, err
	}

	adapter, err := c.adapterFor(ctx, resolved)
	if err != nil {
		return zero, err
	}

	req := c.request(resolved, messages, opts)
	return instructor.Extract[T](ctx, adapter, req)
}

// Run executes the retry loop with an explicit decoder instead of the
// reflective struct decoder.
func Run[T any](ctx context.Context, c *Client, model models.ChatModel, messages []instructor.Message, dec instructor.Decoder[T], opts ...instructor.Option) (T, error) {
	var zero T

	resolved, err := c.resolveModel(model)
	if err != nil {
		return zero, err
	}

	adapter, err := c.adapterFor(ctx, resolved)
	if err != nil {
		return zero, err
	}

	req := c.request(resolved, messages, opts)
	return instructor.Run(ctx, adapter, req, dec)
}
