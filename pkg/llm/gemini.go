package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// GeminiClient calls the Google Generative Language API. Streaming uses the
// SSE variant of streamGenerateContent; attachments are sent inline as
// base64 parts with a sniffed content type.
type GeminiClient struct {
	apiKey       string
	baseURL      string
	defaultModel string
	client       *http.Client
}

// GeminiOption customizes a GeminiClient
type GeminiOption func(*GeminiClient)

// WithGeminiHTTPClient overrides the HTTP client, mainly for tests
func WithGeminiHTTPClient(c *http.Client) GeminiOption {
	return func(g *GeminiClient) { g.client = c }
}

// NewGeminiClient creates a Gemini client. The HTTP client has no overall
// timeout because streamed generations can legitimately run for minutes;
// connection setup and response headers are bounded instead.
func NewGeminiClient(apiKey, baseURL, defaultModel string, opts ...GeminiOption) *GeminiClient {
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	g := &GeminiClient{
		apiKey:       apiKey,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		defaultModel: defaultModel,
		client: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   30 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 120 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"system_instruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiClient) buildRequest(req GenerateRequest) (*geminiRequest, error) {
	parts := []geminiPart{{Text: req.Prompt}}
	for _, path := range req.AttachmentPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read attachment %s: %w", path, err)
		}
		mime := mimetype.Detect(data)
		parts = append(parts, geminiPart{
			InlineData: &geminiInlineData{
				MimeType: mime.String(),
				Data:     base64.StdEncoding.EncodeToString(data),
			},
		})
	}

	body := &geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: parts}},
	}
	if req.SystemPrompt != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemPrompt}}}
	}
	if req.Temperature > 0 {
		body.GenerationConfig = &geminiGenerationConfig{Temperature: req.Temperature}
	}
	return body, nil
}

func (g *GeminiClient) model(req GenerateRequest) string {
	if req.Model != "" {
		return req.Model
	}
	return g.defaultModel
}

// Stream starts an SSE generation and forwards text fragments as they arrive
func (g *GeminiClient) Stream(ctx context.Context, req GenerateRequest) (<-chan Chunk, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("gemini api key not configured")
	}

	body, err := g.buildRequest(req)
	if err != nil {
		return nil, err
	}
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?alt=sse&key=%s",
		g.baseURL, g.model(req), g.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	out := make(chan Chunk, 16)
	go func() {
		defer close(out)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if data == "" || data == "[DONE]" {
				continue
			}
			var chunk geminiResponse
			if err := json.Unmarshal([]byte(data), &chunk); err != nil {
				out <- Chunk{Err: fmt.Errorf("failed to parse stream event: %w", err)}
				return
			}
			for _, cand := range chunk.Candidates {
				for _, part := range cand.Content.Parts {
					if part.Text != "" {
						out <- Chunk{Text: part.Text}
					}
				}
			}
		}
		if err := scanner.Err(); err != nil {
			out <- Chunk{Err: fmt.Errorf("stream read failed: %w", err)}
		}
	}()
	return out, nil
}

// Complete runs a single generateContent call and returns the full text
func (g *GeminiClient) Complete(ctx context.Context, req GenerateRequest) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini api key not configured")
	}

	body, err := g.buildRequest(req)
	if err != nil {
		return "", err
	}
	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model(req), g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range gr.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}

// ListModels returns the model names the API reports, empty on any failure
func (g *GeminiClient) ListModels(ctx context.Context) []string {
	if g.apiKey == "" {
		return []string{}
	}

	url := fmt.Sprintf("%s/v1beta/models?key=%s", g.baseURL, g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return []string{}
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return []string{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return []string{}
	}

	var listResp struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return []string{}
	}

	names := make([]string, 0, len(listResp.Models))
	for _, m := range listResp.Models {
		names = append(names, strings.TrimPrefix(m.Name, "models/"))
	}
	return names
}
