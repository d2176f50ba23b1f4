package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"PvtCall/internal/utils"
)

var upgrader = websocket.Upgrader{
	// Browsers cannot forge Origin, and the pairing surface is public;
	// HTTP-level CORS covers the REST routes.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades the connection, assigns it an opaque connection ID, and
// hands it to the hub. onConnect is invoked before the pumps start so the
// engine knows about the client before its first event can arrive.
// The optional auth middleware puts the display username in the gin context.
func ServeWS(hub *Hub, onConnect func(id, username string)) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			utils.Log.Warn("websocket upgrade failed", "err", err)
			return
		}

		client := &Client{
			ID:       uuid.NewString(),
			Username: username,
			Conn:     conn,
			Send:     make(chan OutgoingMessage, 32),
			Hub:      hub,
		}

		hub.register <- client
		if onConnect != nil {
			onConnect(client.ID, username)
		}

		go client.writePump()
		go client.readPump()
	}
}
