package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/beyond-catalog/internal/utils"
	"github.com/MKhiriev/beyond-catalog/models"
)

func (h *Handler) addFavourite(w http.ResponseWriter, r *http.Request) {
	var req models.FavouriteRequest
	if err := decodeJSON(r, &req); err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrInvalidJSON
		}
		writeError(w, r, err)
		return
	}

	if err := h.services.FavouriteService.Add(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, "Favourite added successfully", http.StatusOK)
}

func (h *Handler) deleteFavourite(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ngc, err := queryNGC(q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	req := models.FavouriteRequest{Email: q.Get("email"), NGC: ngc}
	if err = h.services.FavouriteService.Remove(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, "Favourite deleted successfully", http.StatusOK)
}

func (h *Handler) getFavourites(w http.ResponseWriter, r *http.Request) {
	favourites, err := h.services.FavouriteService.List(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, favourites, http.StatusOK)
}
