package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapTokenInfoResponse converts a token-info answer into an error. Only
// 200 OK is a success.
func mapTokenInfoResponse(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch {
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrProviderFailure, resp.StatusCode(), body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrTokenRejected, resp.StatusCode(), body)
	}
}
