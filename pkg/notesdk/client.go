package notesdk

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to a memoa server. It is safe for concurrent use.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}
