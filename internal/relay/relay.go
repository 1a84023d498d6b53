// Package relay talks to the HTTP service that converts logical command
// packets into transmitted IR/RF pulses.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"glowsync/internal/logging"
)

var logger = logging.New("relay")

const sendPacketPath = "/send-packet"

// Client posts opaque packets to the relay's send-packet endpoint. A 200
// response only means the packet was forwarded, not that the device
// received it; any other status is a send failure.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func New(apiURL string, timeout time.Duration) (*Client, error) {
	if apiURL == "" {
		return nil, fmt.Errorf("relay API URL is required")
	}
	return &Client{
		endpoint:   strings.TrimRight(apiURL, "/") + sendPacketPath,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type sendPacketRequest struct {
	Packet string `json:"packet"`
}

func (c *Client) Send(ctx context.Context, packet string) error {
	body, err := json.Marshal(sendPacketRequest{Packet: packet})
	if err != nil {
		return fmt.Errorf("encoding packet: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending packet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Failure bodies carry diagnostics; logged, never parsed for
		// control decisions.
		diag, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("relay returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(diag)))
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
