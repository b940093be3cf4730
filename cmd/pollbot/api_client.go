package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/api/rooms",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Response types matching backend

type Room struct {
	ID         int    `json:"id"`
	Code       string `json:"code"`
	Word       string `json:"word"`
	Status     string `json:"status"`
	MaxPlayers int    `json:"maxPlayers"`
	TimeLimit  int    `json:"timeLimit"`
}

type Player struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	IsHost   bool     `json:"isHost"`
	Status   string   `json:"status"`
	Guesses  []string `json:"guesses"`
	Solved   bool     `json:"solved"`
	Attempts int      `json:"attempts"`
}

type RoomAndPlayer struct {
	Room   Room   `json:"room"`
	Player Player `json:"player"`
}

type GameState struct {
	Room          Room     `json:"room"`
	Players       []Player `json:"players"`
	TimeRemaining int      `json:"timeRemaining"`
}

type GuessResult struct {
	Word    string   `json:"word"`
	Result  []string `json:"result"`
	IsValid bool     `json:"isValid"`
	IsWin   bool     `json:"isWin"`
}

type LeaderboardEntry struct {
	Player Player `json:"player"`
	Rank   int    `json:"rank"`
	Score  int    `json:"score"`
}

func (c *APIClient) CreateRoom(playerName string) (*RoomAndPlayer, error) {
	var out RoomAndPlayer
	err := c.do(http.MethodPost, "/", map[string]string{"playerName": playerName}, &out)
	return &out, err
}

func (c *APIClient) JoinRoom(code, playerName string) (*RoomAndPlayer, error) {
	var out RoomAndPlayer
	err := c.do(http.MethodPost, "/"+code+"/join", map[string]string{"playerName": playerName}, &out)
	return &out, err
}

func (c *APIClient) GetState(code string) (*GameState, error) {
	var out GameState
	err := c.do(http.MethodGet, "/"+code, nil, &out)
	return &out, err
}

func (c *APIClient) StartGame(code string, playerID int) error {
	return c.do(http.MethodPost, "/"+code+"/start", map[string]int{"playerId": playerID}, nil)
}

func (c *APIClient) SubmitGuess(code string, playerID int, guess string) (*GuessResult, error) {
	var out GuessResult
	err := c.do(http.MethodPost, "/"+code+"/guess", map[string]any{
		"playerId": playerID,
		"guess":    guess,
	}, &out)
	return &out, err
}

func (c *APIClient) Leaderboard(code string) ([]LeaderboardEntry, error) {
	var out []LeaderboardEntry
	err := c.do(http.MethodGet, "/"+code+"/leaderboard", nil, &out)
	return out, err
}

func (c *APIClient) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Message, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
