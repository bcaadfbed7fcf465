package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/beyond-catalog/internal/utils"
	"github.com/MKhiriev/beyond-catalog/models"
)

// createUser registers an account from a JSON body, or from query
// parameters when the body is empty.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	err := decodeJSON(r, &req)
	if errors.Is(err, io.EOF) {
		req, err = registerRequestFromQuery(r.URL.Query())
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = h.services.UserService.Register(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, "User created successfully", http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	creds, err := credentialsFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	username, err := h.services.UserService.Authenticate(r.Context(), creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Message:  "User authenticated successfully",
		Username: username,
	}, http.StatusOK)
}

func (h *Handler) editUser(w http.ResponseWriter, r *http.Request) {
	var req models.EditUserRequest
	if err := decodeJSON(r, &req); err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrInvalidJSON
		}
		writeError(w, r, err)
		return
	}
	req.AccessToken = r.Header.Get(accessTokenHeader)

	if err := h.services.UserService.Edit(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, "User edited successfully", http.StatusCreated)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	creds, err := credentialsFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.Delete(r.Context(), creds); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, "User deleted successfully", http.StatusOK)
}
