// Package client provides a unified, multi-provider entry point for
// validation-guided structured extraction.
//
// A Client is configured once with API keys and defaults, then routes each
// call to the provider backend owning the requested model:
//
//	c := client.New(client.Config{
//		APIKeys: client.APIKeys{
//			Anthropic: os.Getenv("ANTHROPIC_API_KEY"),
//			OpenAI:    os.Getenv("OPENAI_API_KEY"),
//		},
//		DefaultModel:      models.ClaudeSonnet45,
//		DefaultMaxRetries: 2,
//	})
//
//	person, err := client.Extract[Person](ctx, c, models.ChatModel{}, msgs)
//
// Provider adapters are lazily initialized the first time a model from that
// provider is used; a missing API key surfaces as *ErrMissingAPIKey at that
// point.
package client
