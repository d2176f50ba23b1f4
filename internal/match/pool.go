package match

// waitingPool is a strict FIFO queue of clients seeking a partner, with a
// membership set so enqueue stays idempotent and remove is cheap to check.
type waitingPool struct {
	order  []string
	queued map[string]struct{}
}

func newWaitingPool() *waitingPool {
	return &waitingPool{queued: make(map[string]struct{})}
}

// enqueue appends to the tail. No-op if the client is already queued.
func (p *waitingPool) enqueue(id string) {
	if _, ok := p.queued[id]; ok {
		return
	}
	p.order = append(p.order, id)
	p.queued[id] = struct{}{}
}

// dequeueNext pops the head. Callers must check the returned client is still
// connected; a client may have gone away while queued.
func (p *waitingPool) dequeueNext() (string, bool) {
	if len(p.order) == 0 {
		return "", false
	}
	id := p.order[0]
	p.order = p.order[1:]
	delete(p.queued, id)
	return id, true
}

// remove deletes an arbitrary member. Reports whether it was queued.
func (p *waitingPool) remove(id string) bool {
	if _, ok := p.queued[id]; !ok {
		return false
	}
	delete(p.queued, id)
	for i, qid := range p.order {
		if qid == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return true
}

func (p *waitingPool) contains(id string) bool {
	_, ok := p.queued[id]
	return ok
}

func (p *waitingPool) len() int {
	return len(p.order)
}
