package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/beyond-catalog/internal/config"
	"github.com/MKhiriev/beyond-catalog/internal/logger"
	"github.com/MKhiriev/beyond-catalog/internal/utils"
)

type googleVerifier struct {
	client       *utils.HTTPClient
	tokenInfoURL string

	logger *logger.Logger
}

// NewGoogleVerifier builds an [IdentityVerifier] that calls the token-info
// endpoint configured in cfg. The client never retries and every call is
// bounded by cfg.RequestTimeout.
func NewGoogleVerifier(cfg config.Adapter, logger *logger.Logger) IdentityVerifier {
	client := utils.NewHTTPClient(cfg.RequestTimeout)

	logger.Debug().Str("token_info_url", cfg.TokenInfoURL).Msg("creating google token verifier")

	return &googleVerifier{
		client:       client,
		tokenInfoURL: cfg.TokenInfoURL,
		logger:       logger,
	}
}

func (g *googleVerifier) Verify(ctx context.Context, token string) bool {
	log := logger.FromContext(ctx)

	if err := g.check(ctx, token); err != nil {
		log.Warn().Err(err).Str("func", "*googleVerifier.Verify").Msg("access token verification failed")
		return false
	}

	return true
}

func (g *googleVerifier) check(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get(g.tokenInfoURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProviderFailure, err)
	}

	return mapTokenInfoResponse(resp)
}
