package query

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"tripreco/pkg/observability"
)

const parserPrompt = `Extract travel search signals from the user query.
Return JSON only, no prose, no markdown. Use exactly these keys and omit
any you cannot fill:
{"destination":"city name","origin":"city name","tags":["beach"],"budget_max":5000,"nights":2,"trip_type":"flight","max_stops":0}
Amounts like "5k" mean 5000. Tags are lowercase interest words.`

// OpenAIParser extracts signals with a chat completion model. Calls are
// rate limited and bounded by a timeout; any failure makes the extractor
// fall back to local heuristics.
type OpenAIParser struct {
	client  *openai.Client
	model   string
	limiter *rate.Limiter
	timeout time.Duration
}

func NewOpenAIParser(apiKey, model string, rps float64, timeout time.Duration) *OpenAIParser {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIParser{
		client:  openai.NewClient(apiKey),
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		timeout: timeout,
	}
}

func (p *OpenAIParser) Source() Source { return SourceExternal }

func (p *OpenAIParser) Parse(ctx context.Context, text string) (Signals, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return Signals{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: 0.1,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: parserPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		observability.ObserveExternal("openai", "parse", 500, time.Since(start))
		return Signals{}, fmt.Errorf("openai parse: %w", err)
	}
	observability.ObserveExternal("openai", "parse", 200, time.Since(start))

	if len(resp.Choices) == 0 {
		return Signals{}, fmt.Errorf("openai parse: empty response")
	}
	var sig Signals
	if err := json.Unmarshal([]byte(cleanJSON(resp.Choices[0].Message.Content)), &sig); err != nil {
		return Signals{}, fmt.Errorf("openai parse: invalid JSON: %w", err)
	}
	return sig, nil
}
