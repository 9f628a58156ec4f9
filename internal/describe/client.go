// Package describe drafts product descriptions through an external
// generation endpoint, with a deterministic local fallback when the
// endpoint is not configured.
package describe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Result is a generated draft.
type Result struct {
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Generator produces a description draft for a product.
type Generator interface {
	Generate(ctx context.Context, title, category, keywords string) (Result, error)
}

// ErrEmptyPrompt indicates title or category was missing.
var ErrEmptyPrompt = errors.New("describe: title and category are required")

// Client calls a JSON generation endpoint.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a client for the given endpoint.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSpace(baseURL),
		apiKey:  strings.TrimSpace(apiKey),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// FromEnv returns the configured remote client, or the local fallback when
// CARDGEN_AI_URL is unset.
func FromEnv() Generator {
	if url := os.Getenv("CARDGEN_AI_URL"); url != "" {
		return NewClient(url, os.Getenv("CARDGEN_AI_KEY"))
	}
	return Fallback{}
}

type generateRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Keywords string `json:"keywords,omitempty"`
}

// Generate posts the prompt fields and decodes the draft.
func (c *Client) Generate(ctx context.Context, title, category, keywords string) (Result, error) {
	title = strings.TrimSpace(title)
	category = strings.TrimSpace(category)
	if title == "" || category == "" {
		return Result{}, ErrEmptyPrompt
	}
	body, err := json.Marshal(generateRequest{Title: title, Category: category, Keywords: strings.TrimSpace(keywords)})
	if err != nil {
		return Result{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("describe: request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("describe: unexpected status %d", resp.StatusCode)
	}
	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("describe: decode: %w", err)
	}
	if strings.TrimSpace(out.Description) == "" {
		return Result{}, errors.New("describe: empty draft")
	}
	return out, nil
}

// Fallback drafts a serviceable description without a remote endpoint.
type Fallback struct{}

func (Fallback) Generate(_ context.Context, title, category, keywords string) (Result, error) {
	title = strings.TrimSpace(title)
	category = strings.TrimSpace(category)
	if title == "" || category == "" {
		return Result{}, ErrEmptyPrompt
	}
	desc := fmt.Sprintf("Discover %s, a standout pick in %s. Designed for everyday use with quality you can feel, it is the easy upgrade your routine deserves. Order today and see the difference.", title, category)
	tags := []string{slugTag(title), slugTag(category)}
	for _, kw := range strings.Split(keywords, ",") {
		if tag := slugTag(kw); tag != "" {
			tags = append(tags, tag)
		}
		if len(tags) >= 5 {
			break
		}
	}
	return Result{Description: desc, Tags: tags}, nil
}

func slugTag(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "#" + b.String()
}
