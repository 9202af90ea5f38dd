package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// OpenAIClient synthesizes speech through the OpenAI speech endpoint.
type OpenAIClient struct {
	apiKey     string
	model      string
	voice      string
	baseURL    string
	httpClient *http.Client
}

var _ Synthesizer = &OpenAIClient{}

func NewOpenAIClient(apiKey, model, voice string) *OpenAIClient {
	return &OpenAIClient{
		apiKey:     apiKey,
		model:      model,
		voice:      voice,
		baseURL:    "https://api.openai.com/v1",
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// NewOpenAIClientWithURL targets a non-default endpoint (tests, proxies).
func NewOpenAIClientWithURL(apiKey, model, voice, baseURL string) *OpenAIClient {
	c := NewOpenAIClient(apiKey, model, voice)
	c.baseURL = baseURL
	return c
}

type speechRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format,omitempty"`
}

func (c *OpenAIClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	payload, err := json.Marshal(speechRequest{
		Model:          c.model,
		Input:          text,
		Voice:          c.voice,
		ResponseFormat: "mp3",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/speech", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("speech API error %d: %s", resp.StatusCode, string(respBody))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading audio: %w", err)
	}
	return audio, nil
}

func (c *OpenAIClient) SynthesizeToFile(ctx context.Context, text, path string) error {
	audio, err := c.Synthesize(ctx, text)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, audio, 0644); err != nil {
		return fmt.Errorf("writing audio file: %w", err)
	}
	return nil
}
