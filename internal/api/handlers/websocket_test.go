package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorgan/word-royale/internal/testutil"
)

func dialRoom(t *testing.T, ts *testutil.TestServer, code string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.Server.URL, "http") + "/api/rooms/" + code + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWebSocketFeedMirrorsMutations(t *testing.T) {
	ts := testutil.NewTestServer(t)
	created := createRoom(t, ts, "alice")
	conn := dialRoom(t, ts, created.Room.Code)

	joinRoom(t, ts, created.Room.Code, "bob")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var state gameState
	require.NoError(t, json.Unmarshal(data, &state))
	assert.Equal(t, created.Room.Code, state.Room.Code)
	assert.Len(t, state.Players, 2)
	assert.Empty(t, state.Room.Word)
}

func TestWebSocketUnknownRoom(t *testing.T) {
	ts := testutil.NewTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.Server.URL, "http") + "/api/rooms/NOPE99/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
