package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client that exposes all of its
// methods directly while pinning a base URL and a request timeout.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient for the given base URL. Each call
// returns an independent client with its own connection pool. A non-positive
// timeout leaves resty's default (no timeout) in place.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:5000", 15*time.Second)
//	resp, err := client.R().Get("/blogs")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
