package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

type RouterConfig struct {
	AllowedOrigins []string
	SecureCookies  bool
}

func NewHandler(sessions *SessionStore, cfg RouterConfig) http.Handler {
	navigationHandler := NewNavigationHandler()
	catalogHandler := NewCatalogHandler()
	roomHandler := NewRoomHandler()
	suggestionHandler := NewSuggestionHandler()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(sessions.Middleware(cfg.SecureCookies))

		r.Get("/view", navigationHandler.GetView)
		r.Post("/back", navigationHandler.Back)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", catalogHandler.GetCatalog)
			r.Post("/closed", catalogHandler.SetShowClosed)
			r.Post("/filters/{token}", catalogHandler.ToggleFilter)
			r.Post("/sort", catalogHandler.SetSort)
		})

		r.Post("/rooms/{id}", roomHandler.OpenRoom)
		r.Route("/room", func(r chi.Router) {
			r.Get("/", roomHandler.GetRoom)
			r.Put("/answers/{questionID}", roomHandler.RecordAnswer)
			r.Post("/submit", roomHandler.Submit)
			r.Post("/vote", roomHandler.CastVote)
			r.Get("/results", roomHandler.GetResults)
			r.Get("/comments", roomHandler.GetComments)
			r.Post("/comments", roomHandler.PostComment)
		})

		r.Route("/suggestion", func(r chi.Router) {
			r.Post("/", suggestionHandler.Open)
			r.Post("/submit", suggestionHandler.Submit)
		})
	})

	return r
}
