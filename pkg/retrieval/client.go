package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-docauthor-be/pkg/ai"
)

// Client talks to the external context-retrieval collaborator, which
// answers similarity searches over previously ingested resources.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type queryContextRequest struct {
	Description     string   `json:"description"`
	Content         string   `json:"content"`
	SelectedSources []string `json:"selectedSources,omitempty"`
}

type queryContextResponse struct {
	Results []struct {
		Content  string                 `json:"content"`
		Metadata map[string]interface{} `json:"metadata"`
		Score    float64                `json:"score"`
	} `json:"results"`
}

// QueryContext fetches ranked text snippets for a section. A nil or empty
// selectedSources filter searches all attached resources.
func (c *Client) QueryContext(ctx context.Context, description, content string, selectedSources []string) ([]ai.ContextSnippet, error) {
	payloadBytes, err := json.Marshal(queryContextRequest{
		Description:     description,
		Content:         content,
		SelectedSources: selectedSources,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/query-context"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query-context request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("query-context error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var queryResp queryContextResponse
	if err := json.Unmarshal(bodyBytes, &queryResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	snippets := make([]ai.ContextSnippet, 0, len(queryResp.Results))
	for _, r := range queryResp.Results {
		snippets = append(snippets, ai.ContextSnippet{
			Content: r.Content,
			Source:  snippetSource(r.Metadata),
			Score:   r.Score,
		})
	}
	return snippets, nil
}

// snippetSource reads the attribution field; the collaborator uses
// "source" for files and "source_url" for fetched URLs.
func snippetSource(metadata map[string]interface{}) string {
	for _, key := range []string{"source", "source_url"} {
		if v, ok := metadata[key].(string); ok && v != "" {
			return v
		}
	}
	return "unknown"
}
