package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/username/dishboard/src/logger"
	"github.com/username/dishboard/src/models"
)

// scriptResponse is the shape the Apps Script write endpoint answers with.
type scriptResponse struct {
	Result  string `json:"result"`
	Message string `json:"message"`
}

// Client fetches the record source over HTTP and forwards new-entry
// submissions to the write endpoint. Each call is a single request with no
// retry; recovery is a manual repeat of the action.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchCSV downloads the sheet's CSV export and returns the raw bytes.
func (c *Client) FetchCSV(ctx context.Context, sheetURL string) ([]byte, error) {
	exportURL := CSVExportURL(sheetURL)
	logger.L.Debug("Fetching sheet CSV export", "url", exportURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building sheet request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("sheet export returned status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading sheet export body: %w", err)
	}
	logger.L.Info("Sheet fetch complete", "bytes", len(body))
	return body, nil
}

// ForwardEntry POSTs one new order line item to the Apps Script write
// endpoint and returns the script's message. A non-"success" result is an
// error carrying the script's own message.
func (c *Client) ForwardEntry(ctx context.Context, scriptURL string, entry models.SheetEntry) (string, error) {
	body, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("encoding entry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, scriptURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building write request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("forwarding entry: %w", err)
	}
	defer resp.Body.Close()

	var result scriptResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding write endpoint response: %w", err)
	}

	if result.Result != "success" {
		if result.Message == "" {
			result.Message = "failed to update sheet"
		}
		return "", fmt.Errorf("write endpoint rejected entry: %s", result.Message)
	}

	logger.L.Info("Entry forwarded to write endpoint", "orderId", entry.OrderID)
	return result.Message, nil
}
