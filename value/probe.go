package value

import "github.com/google/uuid"

// Probe is a placeholder sub-value whose only job is to make its lifecycle
// visible. It carries an instance identifier for tracing and nothing else.
//
// Every Probe equals every other Probe. A Record embedding a Probe is therefore
// compared on its remaining fields only.
//
// The zero Probe is valid and reports uuid.Nil as its ID, the same state a
// probe is left in after being moved from.
type Probe struct {
	id uuid.UUID
}

// NewProbe constructs a probe with a fresh identity.
func NewProbe() Probe {
	p := Probe{id: uuid.New()}
	trace(EventConstructed, p.id, uuid.Nil)
	return p
}

// ID returns the instance identifier. Two probes never share an ID unless one
// was moved into the other.
func (p Probe) ID() uuid.UUID { return p.id }

// Copy returns an independent probe. The copy gets its own identity.
func (p Probe) Copy() Probe {
	c := Probe{id: uuid.New()}
	trace(EventCopied, c.id, p.id)
	return c
}

// Move transfers p's identity to the returned probe. p is left moved-from.
func (p *Probe) Move() Probe {
	m := Probe{id: p.id}
	p.id = uuid.Nil
	trace(EventMoved, m.id, uuid.Nil)
	return m
}

// Assign copy-assigns src to p. p keeps its identity.
func (p *Probe) Assign(src Probe) {
	trace(EventCopyAssigned, p.id, src.id)
}

// MoveAssign move-assigns src to p. p keeps its identity, src is left
// moved-from.
func (p *Probe) MoveAssign(src *Probe) {
	from := src.id
	if src != p {
		src.id = uuid.Nil
	}
	trace(EventMoveAssigned, p.id, from)
}

// Equal always reports true.
func (Probe) Equal(Probe) bool { return true }
