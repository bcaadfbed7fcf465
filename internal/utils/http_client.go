package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "beyond-catalog"

// HTTPClient embeds *resty.Client so callers use the resty API directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that never retries, asks for
// JSON and bounds every call by timeout. A zero timeout leaves calls
// unbounded apart from the request context.
//
//	client := utils.NewHTTPClient(5 * time.Second)
//	resp, err := client.R().SetContext(ctx).Get(url)
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
