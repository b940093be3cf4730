package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

const apiBase = "http://localhost:8080/api/rooms"

type Room struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
}

type Player struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	IsHost bool   `json:"isHost"`
}

type CreateResponse struct {
	Room   Room   `json:"room"`
	Player Player `json:"player"`
}

func post(path string, payload any) ([]byte, error) {
	body, _ := json.Marshal(payload)

	resp, err := http.Post(apiBase+path, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed (%d): %s", resp.StatusCode, string(data))
	}
	return data, nil
}

func main() {
	fmt.Println("Setting up demo room...")

	data, err := post("", map[string]string{"playerName": "Demo Host"})
	if err != nil {
		fmt.Printf("Failed to create room: %v\n", err)
		os.Exit(1)
	}

	var created CreateResponse
	if err := json.Unmarshal(data, &created); err != nil {
		fmt.Printf("Failed to decode response: %v\n", err)
		os.Exit(1)
	}

	for _, name := range []string{"Demo Alice", "Demo Bob"} {
		if _, err := post("/"+created.Room.Code+"/join", map[string]string{"playerName": name}); err != nil {
			fmt.Printf("Failed to join %s: %v\n", name, err)
			os.Exit(1)
		}
	}

	fmt.Println()
	fmt.Println("Demo room ready!")
	fmt.Printf("  Code:    %s\n", created.Room.Code)
	fmt.Printf("  Host ID: %d (use this playerId to start the game)\n", created.Player.ID)
	fmt.Printf("  State:   GET %s/%s\n", apiBase, created.Room.Code)
}
