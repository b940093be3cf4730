package testutil

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmorgan/word-royale/internal/api"
	"github.com/jmorgan/word-royale/internal/clock"
	"github.com/jmorgan/word-royale/internal/repository"
	"github.com/jmorgan/word-royale/internal/repository/memory"
	"github.com/jmorgan/word-royale/internal/service"
	"github.com/jmorgan/word-royale/internal/words"
	"github.com/jmorgan/word-royale/internal/ws"
)

// Answer is the word every room created by a test server uses.
const Answer = "CRANE"

// Guessable lists the non-answer words a test may submit.
var Guessable = []string{"TRACE", "ABIDE", "SPEED", "MOUNT", "FLAME", "GHOST", "BRICK"}

// TestServer bundles a running HTTP server with the pieces tests need
// to reach behind the API.
type TestServer struct {
	Server *httptest.Server
	Repos  *repository.Repositories
	Games  *service.GameService
	Clock  *clock.Manual
	Hub    *ws.Hub
}

// NewTestServer spins up the full router on an in-memory store with a
// deterministic word source and a manual clock.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	repos := memory.NewRepositories()
	src := words.NewSource([]string{Answer}, Guessable)
	clk := clock.NewManual(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	games := service.NewGameService(repos, src, clk)
	hub := ws.NewHub()

	srv := httptest.NewServer(api.NewRouter(games, hub))
	t.Cleanup(srv.Close)

	return &TestServer{
		Server: srv,
		Repos:  repos,
		Games:  games,
		Clock:  clk,
		Hub:    hub,
	}
}

// URL joins the server base URL with a path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}
