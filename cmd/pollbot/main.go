package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/jmorgan/word-royale/internal/words"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "play":
		playCmd(apiURL, args)
	case "watch":
		watchCmd(apiURL, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Pollbot - Development tool that plays rooms over the polling API

USAGE:
  pollbot <command> [options]

COMMANDS:
  play      Create a room, fill it with bots, and play a full game
  watch     Poll an existing room and print its state until it finishes
  help      Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8080)

EXAMPLES:
  # Play a full 4-bot game against a local server
  pollbot play --bots=4

  # Create a room but leave the first slot unstarted so you can join
  pollbot play --bots=2 --no-start

  # Watch a room someone else created
  pollbot watch --room=ABC123`)
}

func playCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	bots := fs.Int("bots", 3, "Number of bot players including the host (1-8)")
	noStart := fs.Bool("no-start", false, "Create and fill the room but do not start the game")
	guessable := fs.String("guessable", "data/guessable.txt", "Word list the bots draw guesses from")
	answers := fs.String("answers", "data/answers.txt", "Answer list (only used as a guess pool fallback)")
	fs.Parse(args)

	if *bots < 1 || *bots > 8 {
		fmt.Println("Error: --bots must be between 1 and 8")
		os.Exit(1)
	}

	pool := guessPool(*answers, *guessable)
	client := NewAPIClient(apiURL)

	fmt.Print("Creating room... ")
	created, err := client.CreateRoom("Bot1")
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK (code: %s)\n", created.Room.Code)

	players := []Player{created.Player}
	for i := 2; i <= *bots; i++ {
		joined, err := client.JoinRoom(created.Room.Code, fmt.Sprintf("Bot%d", i))
		if err != nil {
			fmt.Printf("Failed to join bot %d: %v\n", i, err)
			os.Exit(1)
		}
		players = append(players, joined.Player)
	}
	fmt.Printf("Joined %d bots\n", len(players))

	if *noStart {
		fmt.Printf("Room %s is waiting; join it and start when ready.\n", created.Room.Code)
		return
	}

	if err := client.StartGame(created.Room.Code, created.Player.ID); err != nil {
		fmt.Printf("Failed to start game: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Game started")

	runGame(client, created.Room.Code, players, pool)
}

// runGame drives every bot on the same 1-second poll cadence a browser
// client would use.
func runGame(client *APIClient, code string, players []Player, pool []string) {
	guessed := make(map[int]map[string]bool)
	for _, p := range players {
		guessed[p.ID] = make(map[string]bool)
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		state, err := client.GetState(code)
		if err != nil {
			fmt.Printf("Poll failed: %v\n", err)
			os.Exit(1)
		}
		if state.Room.Status == "finished" {
			fmt.Printf("Game over. The word was %s\n", state.Room.Word)
			printLeaderboard(client, code)
			return
		}

		for _, p := range state.Players {
			if p.Status == "finished" || p.Solved {
				continue
			}
			guess := pickGuess(pool, guessed[p.ID])
			if guess == "" {
				continue
			}
			result, err := client.SubmitGuess(code, p.ID, guess)
			if err != nil {
				fmt.Printf("  %s guess %s rejected: %v\n", p.Name, guess, err)
				continue
			}
			guessed[p.ID][guess] = true
			marker := ""
			if result.IsWin {
				marker = "  <- solved it!"
			}
			fmt.Printf("  %s guessed %s [%s]%s\n", p.Name, guess, strings.Join(result.Result, " "), marker)
		}
	}
}

func watchCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	room := fs.String("room", "", "Room code to watch (required)")
	fs.Parse(args)

	if *room == "" {
		fmt.Println("Error: --room is required")
		os.Exit(1)
	}

	client := NewAPIClient(apiURL)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		state, err := client.GetState(*room)
		if err != nil {
			fmt.Printf("Poll failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("[%s] %ds left:", state.Room.Status, state.TimeRemaining)
		for _, p := range state.Players {
			fmt.Printf("  %s(%d/%d)", p.Name, p.Attempts, 6)
		}
		fmt.Println()

		if state.Room.Status == "finished" {
			fmt.Printf("The word was %s\n", state.Room.Word)
			printLeaderboard(client, *room)
			return
		}
	}
}

func printLeaderboard(client *APIClient, code string) {
	entries, err := client.Leaderboard(code)
	if err != nil {
		fmt.Printf("Failed to fetch leaderboard: %v\n", err)
		return
	}
	fmt.Println("=== Leaderboard ===")
	for _, e := range entries {
		solved := " "
		if e.Player.Solved {
			solved = "*"
		}
		fmt.Printf("  %d. %s%s - %d points (%d attempts)\n", e.Rank, solved, e.Player.Name, e.Score, e.Player.Attempts)
	}
}

// guessPool loads the same lists the server uses so bot guesses pass
// validation. Falls back to the built-in words when the files are
// missing.
func guessPool(answersPath, guessablePath string) []string {
	src, err := words.Load(answersPath, guessablePath)
	if err != nil {
		src = words.Fallback()
	}
	return src.GuessPool()
}

func pickGuess(pool []string, used map[string]bool) string {
	for range 20 {
		w := pool[rand.Intn(len(pool))]
		if !used[w] {
			return w
		}
	}
	return ""
}
