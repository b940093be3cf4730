package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialPair returns both ends of a live websocket connection.
func dialPair(t *testing.T) (server, client *websocket.Conn) {
	t.Helper()

	accepted := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		accepted <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	clientConn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { clientConn.Close() })

	select {
	case serverConn := <-accepted:
		t.Cleanup(func() { serverConn.Close() })
		return serverConn, clientConn
	case <-time.After(2 * time.Second):
		t.Fatal("no connection accepted")
		return nil, nil
	}
}

func TestBroadcastDropsSlowClientWithoutPanic(t *testing.T) {
	h := NewHub()
	serverConn, _ := dialPair(t)

	// No write pump drains the buffer, so the second broadcast finds it
	// full and must drop the client.
	c := &Client{hub: h, conn: serverConn, send: make(chan []byte, 1), room: "ROOM01"}
	h.add("ROOM01", c)

	h.Broadcast("ROOM01", map[string]int{"seq": 1})

	assert.NotPanics(t, func() {
		h.Broadcast("ROOM01", map[string]int{"seq": 2})
	})

	// The slow client's connection was closed so its pumps tear it down.
	err := serverConn.WriteMessage(websocket.TextMessage, []byte("x"))
	assert.Error(t, err)

	// Still registered until the read pump deregisters it; further
	// broadcasts keep hitting the full buffer and must stay safe.
	assert.NotPanics(t, func() {
		h.Broadcast("ROOM01", map[string]int{"seq": 3})
	})
}

func TestBroadcastReachesSubscribedClient(t *testing.T) {
	h := NewHub()
	serverConn, clientConn := dialPair(t)

	c := &Client{hub: h, conn: serverConn, send: make(chan []byte, 64), room: "ROOM02"}
	h.add("ROOM02", c)
	go c.writePump()

	h.Broadcast("ROOM02", map[string]string{"hello": "there"})

	clientConn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := clientConn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"hello":"there"}`, string(data))
}

func TestCloseRoomDisconnectsClients(t *testing.T) {
	h := NewHub()
	serverConn, clientConn := dialPair(t)

	c := &Client{hub: h, conn: serverConn, send: make(chan []byte, 64), room: "ROOM03"}
	h.add("ROOM03", c)
	go c.writePump()

	h.CloseRoom("ROOM03")

	clientConn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		if _, _, err := clientConn.ReadMessage(); err != nil {
			assert.True(t, websocket.IsCloseError(err, websocket.CloseNoStatusReceived) ||
				websocket.IsUnexpectedCloseError(err), "expected close, got %v", err)
			break
		}
	}

	// The room entry is gone, so later broadcasts are no-ops.
	assert.NotPanics(t, func() {
		h.Broadcast("ROOM03", map[string]int{"seq": 1})
	})
}
