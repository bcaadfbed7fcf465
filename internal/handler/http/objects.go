package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/beyond-catalog/internal/utils"
	"github.com/MKhiriev/beyond-catalog/models"
)

func (h *Handler) createObject(w http.ResponseWriter, r *http.Request) {
	var req models.CreateObjectRequest
	if err := decodeJSON(r, &req); err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrInvalidJSON
		}
		writeError(w, r, err)
		return
	}

	if _, err := h.services.ObjectService.Create(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, "Object created successfully", http.StatusCreated)
}

func (h *Handler) getObject(w http.ResponseWriter, r *http.Request) {
	ngc, err := queryNGC(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	object, err := h.services.ObjectService.Get(r.Context(), models.ObjectKey{NGC: ngc})
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, object, http.StatusOK)
}

func (h *Handler) getAllObjects(w http.ResponseWriter, r *http.Request) {
	objects, err := h.services.ObjectService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, objects, http.StatusOK)
}

func (h *Handler) deleteObject(w http.ResponseWriter, r *http.Request) {
	ngc, err := queryNGC(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ObjectService.Delete(r.Context(), models.ObjectKey{NGC: ngc}); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, "Object deleted successfully", http.StatusOK)
}
