// Package utils holds small helpers shared by the adapter and the CLI:
// the resty client wrapper and the request-id generator.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://tracker.example/ajax.php?action=index")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with its own connection pool.
// Every request asks for JSON; ajax.php ignores the header but it keeps
// intermediaries from serving HTML error pages when they can avoid it.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json")
	return &HTTPClient{Client: client}
}
