package advisor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Anthropic consults a Claude model over the Messages API. It keeps the
// running conversation for the current Pokémon so the model can reason about
// its own earlier picks; Reset drops it when the context no longer applies.
//
// Safe for concurrent use, though the engine serializes calls per battle.
type Anthropic struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64

	mu      sync.Mutex
	history []anthropic.MessageParam
}

// AnthropicOptions configure the adapter.
type AnthropicOptions struct {
	// APIKey overrides the ANTHROPIC_API_KEY environment variable.
	APIKey string
	// Model is the model identifier. Empty selects a default.
	Model string
	// MaxTokens caps the response length. Zero means 256; a single action
	// name needs far less.
	MaxTokens int64
}

const defaultModel = "claude-3-5-haiku-latest"

// NewAnthropic constructs the adapter.
func NewAnthropic(opts AnthropicOptions) *Anthropic {
	var reqOpts []option.RequestOption
	if opts.APIKey != "" {
		reqOpts = append(reqOpts, option.WithAPIKey(opts.APIKey))
	}
	model := anthropic.Model(opts.Model)
	if model == "" {
		model = defaultModel
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 256
	}
	return &Anthropic{
		client:    anthropic.NewClient(reqOpts...),
		model:     model,
		maxTokens: maxTokens,
	}
}

// Choose sends the prompt as the next user turn and returns the model's
// text. The exchange is appended to the conversation only on success, so a
// failed call never poisons the history.
func (a *Anthropic) Choose(ctx context.Context, prompt string) (string, error) {
	a.mu.Lock()
	messages := append(append([]anthropic.MessageParam(nil), a.history...),
		anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)))
	a.mu.Unlock()

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: SystemPrompt}},
		Messages:  messages,
	})
	if err != nil {
		return "", fmt.Errorf("advisor: message request: %w", err)
	}

	var reply strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			reply.WriteString(block.Text)
		}
	}
	text := reply.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("advisor: empty response from %s", a.model)
	}

	a.mu.Lock()
	a.history = append(a.history,
		anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		anthropic.NewAssistantMessage(anthropic.NewTextBlock(text)))
	a.mu.Unlock()
	return text, nil
}

// Reset discards the conversation.
func (a *Anthropic) Reset() {
	a.mu.Lock()
	a.history = nil
	a.mu.Unlock()
}
