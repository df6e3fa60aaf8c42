package ingestion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// ProcessedDocument is the ingestion collaborator's record of an uploaded
// file or URL. Status transitions processing -> completed|error on its side.
type ProcessedDocument struct {
	Id        int      `json:"id"`
	Name      string   `json:"name"`
	Status    string   `json:"status"`
	VectorIds []string `json:"vector_ids"`
}

// Client talks to the external document-processing collaborator that
// ingests resources and serves them to the retrieval endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			// Ingestion chunks and embeds whole files; allow for slow runs.
			Timeout: 5 * time.Minute,
		},
	}
}

// ProcessFile uploads one file for ingestion.
func (c *Client) ProcessFile(ctx context.Context, filename string, r io.Reader) (*ProcessedDocument, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create multipart file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("copy file data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/documents/process", body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req)
}

// ProcessURL submits a remote URL for ingestion.
func (c *Client) ProcessURL(ctx context.Context, url string) (*ProcessedDocument, error) {
	payloadBytes, err := json.Marshal(map[string]string{"url": url})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/documents/process-url", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// Delete removes an ingested document. A 404 means it is already gone and
// is treated as success; repeated deletes are idempotent.
func (c *Client) Delete(ctx context.Context, id int) error {
	url := fmt.Sprintf("%s/documents/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, "DELETE", url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("delete error: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) do(req *http.Request) (*ProcessedDocument, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ingestion request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ingestion error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var doc ProcessedDocument
	if err := json.Unmarshal(bodyBytes, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &doc, nil
}
