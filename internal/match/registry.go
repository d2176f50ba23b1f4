package match

// peer is a live transport connection known to the engine. The username is
// whatever the account layer attached to the connection; empty for anonymous
// clients.
type peer struct {
	id       string
	username string
}

type registry struct {
	peers map[string]*peer
}

func newRegistry() *registry {
	return &registry{peers: make(map[string]*peer)}
}

func (r *registry) register(id, username string) {
	r.peers[id] = &peer{id: id, username: username}
}

// unregister is a no-op if the peer is already gone.
func (r *registry) unregister(id string) {
	delete(r.peers, id)
}

func (r *registry) exists(id string) bool {
	_, ok := r.peers[id]
	return ok
}

func (r *registry) username(id string) string {
	if p, ok := r.peers[id]; ok {
		return p.username
	}
	return ""
}

func (r *registry) count() int {
	return len(r.peers)
}
