package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used for
// outbound calls to external providers. It embeds *resty.Client to expose
// all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://generativelanguage.googleapis.com", 20*time.Second)
//	resp, err := client.R().SetBody(payload).Post("/v1beta/models/m:generateContent")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent JSON client rooted at baseURL.
// A trailing slash on baseURL is dropped so request paths can always start
// with "/". A non-positive timeout leaves the resty default (no timeout).
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
