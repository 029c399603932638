package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient talks to an OpenAI-compatible chat-completions endpoint. The
// request timeout is mandatory: the upstream enforces none, and an unbounded
// wait would hang every caller.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIClient(apiKey, baseURL, model string, timeout time.Duration) *OpenAIClient {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAIClient{
		client:  openai.NewClient(opts...),
		model:   model,
		timeout: timeout,
	}
}

func (c *OpenAIClient) SendMessage(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		}),
		Model: openai.F(openai.ChatModel(c.model)),
	}
	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	return completion.Choices[0].Message.Content, nil
}
