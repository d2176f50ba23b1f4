package match

// Inbound events a connected client may send.
const (
	EventFindMatch    = "find-match"
	EventOffer        = "offer"
	EventAnswer       = "answer"
	EventICECandidate = "ice-candidate"
	EventChatMessage  = "chat-message"
	EventTyping       = "typing"
	EventNext         = "next"
	EventLeave        = "leave"
)

// Outbound events the engine emits.
const (
	EventWaiting     = "waiting"
	EventMatched     = "matched"
	EventPartnerLeft = "partner-left"
	EventLeftRoom    = "left-room"
)

// relayEvents are forwarded verbatim to the other room member. The engine
// never inspects their payloads.
var relayEvents = map[string]bool{
	EventOffer:        true,
	EventAnswer:       true,
	EventICECandidate: true,
	EventChatMessage:  true,
	EventTyping:       true,
}
