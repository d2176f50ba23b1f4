package match

import "fmt"

// roomTable owns the active two-party pairings and the reverse index used to
// resolve a sender's room without trusting anything client-supplied.
type roomTable struct {
	members map[string][2]string // roomID -> both member connection IDs
	roomOf  map[string]string    // connection ID -> roomID
}

func newRoomTable() *roomTable {
	return &roomTable{
		members: make(map[string][2]string),
		roomOf:  make(map[string]string),
	}
}

// roomID derives the identifier from the unordered pair, so the same two
// connections always yield the same room no matter who requested the match.
func roomID(a, b string) string {
	lo, hi := a, b
	if hi < lo {
		lo, hi = hi, lo
	}
	return fmt.Sprintf("room-%s-%s", lo, hi)
}

// create pairs two clients. Erroring when either side is already paired is a
// defensive invariant; the engine tears down old rooms before re-pairing, so
// hitting it means a lifecycle bug.
func (t *roomTable) create(a, b string) (string, error) {
	if rid, ok := t.roomOf[a]; ok {
		return "", fmt.Errorf("client %s already in room %s", a, rid)
	}
	if rid, ok := t.roomOf[b]; ok {
		return "", fmt.Errorf("client %s already in room %s", b, rid)
	}
	rid := roomID(a, b)
	t.members[rid] = [2]string{a, b}
	t.roomOf[a] = rid
	t.roomOf[b] = rid
	return rid, nil
}

func (t *roomTable) roomOfClient(id string) (string, bool) {
	rid, ok := t.roomOf[id]
	return rid, ok
}

// membersOf returns both members of a room.
func (t *roomTable) membersOf(rid string) (string, string, bool) {
	m, ok := t.members[rid]
	if !ok {
		return "", "", false
	}
	return m[0], m[1], true
}

// partnerOf resolves the other member of the sender's room.
func (t *roomTable) partnerOf(id string) (string, bool) {
	rid, ok := t.roomOf[id]
	if !ok {
		return "", false
	}
	m := t.members[rid]
	if m[0] == id {
		return m[1], true
	}
	return m[0], true
}

func (t *roomTable) destroy(rid string) {
	m, ok := t.members[rid]
	if !ok {
		return
	}
	delete(t.roomOf, m[0])
	delete(t.roomOf, m[1])
	delete(t.members, rid)
}
