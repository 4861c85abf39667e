package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/eihojp/corpsite/internal/sse"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Public *Handler
	Admin  *AdminHandler
	Broker *sse.Broker

	// UploadsDir is served read-only under /static/uploads/.
	UploadsDir string
}

// NewRouter builds the chi router with the public site API, the admin API
// behind session auth, and the static upload mount.
func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", deps.Public.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/public/home", deps.Public.PublicHome)
		r.Get("/public/news", deps.Public.PublicNews)
		r.Get("/news", deps.Public.NewsList)
		r.Get("/news/{id}", deps.Public.NewsDetail)
		r.Get("/services/{index}", deps.Public.ServiceDetail)
		r.Post("/contact", deps.Public.Contact)

		r.Route("/admin", func(r chi.Router) {
			r.Use(deps.Admin.RequireAuth)
			r.Get("/home", deps.Admin.GetHome)
			r.Post("/home", deps.Admin.UpdateHome)
			r.Get("/news", deps.Admin.ListNews)
			r.Post("/news", deps.Admin.CreateNews)
			r.Put("/news/{id}", deps.Admin.UpdateNews)
			r.Delete("/news/{id}", deps.Admin.DeleteNews)
			r.Post("/uploads", deps.Admin.Uploads)
			r.Get("/assets", deps.Admin.Assets)
			r.Get("/events", deps.Broker.ServeHTTP)
		})
	})

	r.Post("/admin/login", deps.Admin.Login)
	r.Get("/admin/logout", deps.Admin.Logout)

	if deps.UploadsDir != "" {
		fs := http.StripPrefix("/static/uploads/", http.FileServer(http.Dir(deps.UploadsDir)))
		r.Get("/static/uploads/*", fs.ServeHTTP)
	}

	return r
}
