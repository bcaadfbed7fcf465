// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds clients for services outside the catalog.
//
// [IdentityVerifier] checks federated (Google) access tokens. The HTTP
// implementation ([NewGoogleVerifier]) asks the provider's token-info
// endpoint and treats anything but 200 OK as a rejection.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// IdentityVerifier validates bearer tokens issued by an external identity
// provider.
type IdentityVerifier interface {
	// Verify reports whether the provider accepts token. Network failures,
	// timeouts and any non-200 answer yield false.
	Verify(ctx context.Context, token string) bool
}
