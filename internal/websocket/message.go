package websocket

// OutgoingMessage is a server-to-client event envelope.
type OutgoingMessage struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data,omitempty"`
}

// IncomingMessage is a client-to-server event envelope. From is the
// server-assigned connection ID, stamped by the read pump; anything the
// client put there is overwritten.
type IncomingMessage struct {
	From  string         `json:"-"`
	Event string         `json:"event"`
	Data  map[string]any `json:"data,omitempty"`
}
