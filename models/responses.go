package models

// MessageResponse is the body of every successful mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthResponse is returned by a successful authentication.
type AuthResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// VersionResponse reports build metadata.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate"`
	BuildCommit string `json:"buildCommit"`
}
