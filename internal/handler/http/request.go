package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/beyond-catalog/models"
)

const accessTokenHeader = "access_token"

// maxBodySize bounds every JSON request body.
const maxBodySize = 1 << 20

// decodeJSON reads the request body into dst. An empty body reports
// io.EOF so callers can fall back to the query string.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(dst)
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func queryBool(q url.Values, key string) (bool, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", ErrInvalidQueryParameter, key)
	}
	return v, nil
}

// queryNGC parses the ngc parameter. An absent value yields zero, which
// the validators reject.
func queryNGC(q url.Values) (int64, error) {
	raw := strings.TrimSpace(q.Get("ngc"))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: ngc must be an integer", ErrInvalidQueryParameter)
	}
	return v, nil
}

// credentialsFromRequest collects the credential proof sent as query
// parameters and the access_token header.
func credentialsFromRequest(r *http.Request) (models.Credentials, error) {
	q := r.URL.Query()
	isGoogle, err := queryBool(q, "isGoogle")
	if err != nil {
		return models.Credentials{}, err
	}

	return models.Credentials{
		Email:       q.Get("email"),
		Password:    q.Get("password"),
		AccessToken: r.Header.Get(accessTokenHeader),
		IsGoogle:    isGoogle,
	}, nil
}

func registerRequestFromQuery(q url.Values) (models.RegisterRequest, error) {
	isGoogle, err := queryBool(q, "isGoogle")
	if err != nil {
		return models.RegisterRequest{}, err
	}

	return models.RegisterRequest{
		Email:     q.Get("email"),
		Username:  q.Get("username"),
		Password:  q.Get("password"),
		FirstName: q.Get("firstName"),
		LastName:  q.Get("lastName"),
		IsGoogle:  isGoogle,
	}, nil
}
