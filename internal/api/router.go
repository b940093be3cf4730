package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/jmorgan/word-royale/internal/api/handlers"
	"github.com/jmorgan/word-royale/internal/api/middleware"
	"github.com/jmorgan/word-royale/internal/service"
	"github.com/jmorgan/word-royale/internal/ws"
)

func NewRouter(games *service.GameService, hub *ws.Hub) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.CORS)

	healthHandler := handlers.NewHealthHandler()
	roomHandler := handlers.NewRoomHandler(games, hub)
	wsHandler := handlers.NewWebSocketHandler(games, hub)

	r.Get("/health", healthHandler.Check)

	r.Route("/api/rooms", func(r chi.Router) {
		r.Post("/", roomHandler.Create)
		r.Route("/{code}", func(r chi.Router) {
			r.Get("/", roomHandler.GetState)
			r.Post("/join", roomHandler.Join)
			r.Post("/start", roomHandler.Start)
			r.Post("/guess", roomHandler.SubmitGuess)
			r.Post("/current-guess", roomHandler.UpdateCurrentGuess)
			r.Delete("/players/{playerID}", roomHandler.Leave)
			r.Get("/leaderboard", roomHandler.Leaderboard)
			r.Get("/ws", wsHandler.Handle)
		})
	})

	return r
}
