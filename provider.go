package instructor

// ProviderName identifies an LLM provider.
type ProviderName string

// String returns the provider identifier.
func (p ProviderName) String() string { return string(p) }

// Supported providers.
const (
	ProviderAnthropic ProviderName = "anthropic"
	ProviderOpenAI    ProviderName = "openai"
	ProviderGoogle    ProviderName = "google"
)
