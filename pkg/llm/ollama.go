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
)

// OllamaClient calls a local or remote Ollama server. Generation uses the
// NDJSON streaming form of /api/generate; attachments are passed as base64
// entries in the images array.
type OllamaClient struct {
	baseURL      string
	defaultModel string
	client       *http.Client
}

// OllamaOption customizes an OllamaClient
type OllamaOption func(*OllamaClient)

// WithOllamaHTTPClient overrides the HTTP client, mainly for tests
func WithOllamaHTTPClient(c *http.Client) OllamaOption {
	return func(o *OllamaClient) { o.client = c }
}

// NewOllamaClient creates an Ollama client. Like the Gemini client it
// bounds connection setup rather than total request time.
func NewOllamaClient(baseURL, defaultModel string, opts ...OllamaOption) *OllamaClient {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	o := &OllamaClient{
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
		opt(o)
	}
	return o
}

type ollamaGenerateRequest struct {
	Model   string                 `json:"model"`
	Prompt  string                 `json:"prompt"`
	System  string                 `json:"system,omitempty"`
	Images  []string               `json:"images,omitempty"`
	Stream  bool                   `json:"stream"`
	Options map[string]interface{} `json:"options,omitempty"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

func (o *OllamaClient) buildRequest(req GenerateRequest, stream bool) (*ollamaGenerateRequest, error) {
	body := &ollamaGenerateRequest{
		Model:  o.model(req),
		Prompt: req.Prompt,
		System: req.SystemPrompt,
		Stream: stream,
	}
	for _, path := range req.AttachmentPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read attachment %s: %w", path, err)
		}
		body.Images = append(body.Images, base64.StdEncoding.EncodeToString(data))
	}
	if req.Temperature > 0 {
		body.Options = map[string]interface{}{"temperature": req.Temperature}
	}
	return body, nil
}

func (o *OllamaClient) model(req GenerateRequest) string {
	if req.Model != "" {
		return req.Model
	}
	return o.defaultModel
}

// Stream starts an NDJSON generation and forwards fragments as they arrive
func (o *OllamaClient) Stream(ctx context.Context, req GenerateRequest) (<-chan Chunk, error) {
	body, err := o.buildRequest(req, true)
	if err != nil {
		return nil, err
	}
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/generate", bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	out := make(chan Chunk, 16)
	go func() {
		defer close(out)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}
			var chunk ollamaGenerateResponse
			if err := json.Unmarshal(line, &chunk); err != nil {
				out <- Chunk{Err: fmt.Errorf("failed to parse stream line: %w", err)}
				return
			}
			if chunk.Error != "" {
				out <- Chunk{Err: fmt.Errorf("ollama error: %s", chunk.Error)}
				return
			}
			if chunk.Response != "" {
				out <- Chunk{Text: chunk.Response}
			}
			if chunk.Done {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			out <- Chunk{Err: fmt.Errorf("stream read failed: %w", err)}
		}
	}()
	return out, nil
}

// Complete runs a non-streaming generation and returns the full text
func (o *OllamaClient) Complete(ctx context.Context, req GenerateRequest) (string, error) {
	body, err := o.buildRequest(req, false)
	if err != nil {
		return "", err
	}
	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/generate", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var gr ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if gr.Error != "" {
		return "", fmt.Errorf("ollama error: %s", gr.Error)
	}
	return gr.Response, nil
}

// ListModels returns the locally installed models, empty on any failure
func (o *OllamaClient) ListModels(ctx context.Context) []string {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/api/tags", nil)
	if err != nil {
		return []string{}
	}

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return []string{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return []string{}
	}

	var tagsResp struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tagsResp); err != nil {
		return []string{}
	}

	names := make([]string, 0, len(tagsResp.Models))
	for _, m := range tagsResp.Models {
		names = append(names, m.Name)
	}
	return names
}
