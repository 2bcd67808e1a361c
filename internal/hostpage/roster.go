package hostpage

// Roster is the insertion-ordered host-page list from spec §2 item 4: tail
// is the oldest candidate (first considered for reclaim), head is the
// newest. Pages carry their own prev/next links (an intrusive list, styled
// on go-clockpro's ring.go but non-circular, since spec requires an
// observable, non-wrapping tail).
type Roster struct {
	head, tail *Page
	len        int
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{}
}

// Len returns the number of pages in the roster.
func (r *Roster) Len() int {
	return r.len
}

// Empty reports whether the roster has no pages.
func (r *Roster) Empty() bool {
	return r.len == 0
}

// Tail returns the oldest page in the roster, or nil if empty.
func (r *Roster) Tail() *Page {
	return r.tail
}

// PushHead inserts p as the newest page in the roster. p must not already be
// linked into any roster.
func (r *Roster) PushHead(p *Page) {
	p.prev = nil
	p.next = r.head
	if r.head != nil {
		r.head.prev = p
	}
	r.head = p
	if r.tail == nil {
		r.tail = p
	}
	r.len++
}

// Detach removes p from the roster. p must currently be linked into it.
func (r *Roster) Detach(p *Page) {
	if p.prev != nil {
		p.prev.next = p.next
	} else {
		r.head = p.next
	}
	if p.next != nil {
		p.next.prev = p.prev
	} else {
		r.tail = p.prev
	}
	p.prev, p.next = nil, nil
	r.len--
}

// MoveToHead detaches p and reinserts it as the newest page, implementing
// the round-robin rotation spec §4.7 S1 mandates.
func (r *Roster) MoveToHead(p *Page) {
	r.Detach(p)
	r.PushHead(p)
}
