package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	instructor "github.com/mikkihugo/instructor-go"
	"github.com/mikkihugo/instructor-go/client"
	"github.com/mikkihugo/instructor-go/models"
)

type Person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	Mood string `json:"mood,omitempty"`
}

func main() {
	godotenv.Load()
	ctx := context.Background()

	events := make(chan instructor.Event, 16)
	go func() {
		for ev := range events {
			fmt.Fprintf(os.Stderr, "[%s] attempt %d/%d %v\n",
				ev.Type, ev.Attempt, ev.MaxAttempts, ev.Errors)
		}
	}()

	c := client.New(client.Config{
		APIKeys: client.APIKeys{
			Anthropic: os.Getenv("ANTHROPIC_API_KEY"),
			OpenAI:    os.Getenv("OPENAI_API_KEY"),
			Google:    os.Getenv("GOOGLE_API_KEY"),
		},
		DefaultMaxRetries: 2,
		Events:            events,
	})

	messages := []instructor.Message{
		{Role: instructor.RoleUser, Content: "Leon is a 28 year old who just got a promotion."},
	}

	if os.Getenv("ANTHROPIC_API_KEY") != "" {
		fmt.Println("=== Anthropic ===")
		extract(ctx, c, models.DefaultClaudeModel, messages)
	}

	if os.Getenv("OPENAI_API_KEY") != "" {
		fmt.Println("\n=== OpenAI ===")
		extract(ctx, c, models.DefaultGPTModel, messages)
	}

	if os.Getenv("GOOGLE_API_KEY") != "" {
		fmt.Println("\n=== Google ===")
		extract(ctx, c, models.DefaultGeminiModel, messages)
	}
}

func extract(ctx context.Context, c *client.Client, model models.ChatModel, messages []instructor.Message) {
	person, err := client.Extract[Person](ctx, c, model, messages)
	if err != nil {
		if instructor.IsValidationError(err) {
			fmt.Fprintf(os.Stderr, "validation gave up: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		return
	}
	fmt.Printf("%s is %d", person.Name, person.Age)
	if person.Mood != "" {
		fmt.Printf(" and feeling %s", person.Mood)
	}
	fmt.Println()
}
