package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrQuotaExceeded marks a rejection by the vendor's requests-per-minute
// ceiling. The scrape path drops the candidate without retrying in-run; the
// chatbot surfaces it as 429.
var ErrQuotaExceeded = errors.New("model quota exceeded")

// TextGenerator is the single prompt-in / text-out surface the pipeline needs
// from the model vendor.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient calls the Gemini generateContent REST API. All calls pass
// through the shared Gate before leaving the process.
type GeminiClient struct {
	client  *resty.Client
	gate    *Gate
	apiKey  string
	model   string
	baseURL string
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func NewGeminiClient(apiKey, model string, gate *Gate) *GeminiClient {
	return &GeminiClient{
		client:  resty.New().SetTimeout(60 * time.Second),
		gate:    gate,
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta/models",
	}
}

// Generate sends one prompt and returns the model's raw text reply.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if err := g.gate.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate gate: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	req := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{
				Text: prompt,
			}},
		}},
	}

	var resp geminiResponse
	httpResp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&resp).
		SetError(&resp).
		Post(url)

	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}

	if httpResp.StatusCode() == http.StatusTooManyRequests {
		return "", fmt.Errorf("%w: %s", ErrQuotaExceeded, httpResp.Status())
	}

	if resp.Error != nil {
		if resp.Error.Code == http.StatusTooManyRequests || strings.Contains(resp.Error.Message, "429") {
			return "", fmt.Errorf("%w: %s", ErrQuotaExceeded, resp.Error.Message)
		}
		return "", fmt.Errorf("API error: %s", resp.Error.Message)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}
