package http

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Panics are reported to Sentry (a no-op without a
// configured client) and then answered with 500 by chi's Recoverer.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// users
	router.Post("/create-user", h.createUser)
	router.Get("/get-user", h.getUser)
	router.Post("/edit-user", h.editUser)
	router.Delete("/delete-user", h.deleteUser)

	// catalog objects
	router.Post("/create-object", h.createObject)
	router.Get("/get-object", h.getObject)
	router.Get("/get-all-objects", h.getAllObjects)
	router.Delete("/delete-object", h.deleteObject)

	// favourites
	router.Post("/add-favourite", h.addFavourite)
	router.Delete("/delete-favourite", h.deleteFavourite)
	router.Get("/get-favourites", h.getFavourites)

	router.Get("/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errRouteNotFound)
	})

	return router
}
