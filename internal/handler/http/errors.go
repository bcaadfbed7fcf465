// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request decoding errors. They are answered with 400.
var (
	ErrInvalidJSON           = errors.New("invalid JSON was passed")
	ErrInvalidQueryParameter = errors.New("invalid query parameter")
)

var (
	errMethodNotAllowed = errors.New("method not allowed")
	errRouteNotFound    = errors.New("route not found")
)
