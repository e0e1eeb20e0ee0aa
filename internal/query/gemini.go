package query

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"tripreco/pkg/observability"
)

// GeminiParser extracts signals with a Gemini model forced into JSON-only
// output mode.
type GeminiParser struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
	timeout time.Duration
}

func NewGeminiParser(apiKey, model string, rps float64, timeout time.Duration) (*GeminiParser, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &GeminiParser{
		client:  client,
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		timeout: timeout,
	}, nil
}

func (p *GeminiParser) Source() Source { return SourceExternal }

func (p *GeminiParser) Parse(ctx context.Context, text string) (Signals, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return Signals{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	m := p.client.GenerativeModel(p.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)

	start := time.Now()
	resp, err := m.GenerateContent(ctx, genai.Text(parserPrompt+"\n\nQuery: "+text))
	if err != nil {
		observability.ObserveExternal("gemini", "parse", 500, time.Since(start))
		return Signals{}, fmt.Errorf("gemini parse: %w", err)
	}
	observability.ObserveExternal("gemini", "parse", 200, time.Since(start))

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return Signals{}, fmt.Errorf("gemini parse: no content")
	}
	content := cleanJSON(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	var sig Signals
	if err := json.Unmarshal([]byte(content), &sig); err != nil {
		return Signals{}, fmt.Errorf("gemini parse: invalid JSON: %w", err)
	}
	return sig, nil
}

func (p *GeminiParser) Close() error { return p.client.Close() }
