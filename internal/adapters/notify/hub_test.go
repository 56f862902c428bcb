package notify

import (
	"delivery-sim/internal/ports"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 5*time.Millisecond)
	return conn
}

func TestHubBroadcastsNotifications(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub)

	hub.Notify(ports.Notification{Kind: ports.DeliveryCompleted, Address: "123 Main St"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got ports.Notification
	require.NoError(t, conn.ReadJSON(&got))

	assert.Equal(t, ports.DeliveryCompleted, got.Kind)
	assert.Equal(t, "123 Main St", got.Address)
}

func TestHubDropsDisconnectedClient(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub)

	conn.Close()

	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 5*time.Millisecond)
	hub.Notify(ports.Notification{Kind: ports.RouteRecomputed})
}

func TestHubCloseDisconnectsClients(t *testing.T) {
	hub := NewHub()
	conn := dialHub(t, hub)

	hub.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "err = %v", err)
	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 5*time.Millisecond)
}
