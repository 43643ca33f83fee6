package game

import "github.com/tomz197/missiles/internal/object"

// Sequencer owns the active explosions and advances them together.
type Sequencer struct {
	active []*object.Explosion
}

// Add appends explosions to the active set.
func (q *Sequencer) Add(explosions ...*object.Explosion) {
	q.active = append(q.active, explosions...)
}

// Advance updates every explosion once and removes the finished ones.
// Returns how many were removed.
func (q *Sequencer) Advance() int {
	kept := q.active[:0] // reuse backing array
	for _, e := range q.active {
		if !e.Update() {
			kept = append(kept, e)
		}
	}
	removed := len(q.active) - len(kept)
	clear(q.active[len(kept):])
	q.active = kept
	return removed
}

// Len returns the number of active explosions.
func (q *Sequencer) Len() int {
	return len(q.active)
}

// Explosions returns the active explosions. The slice is only valid until
// the next Add, Advance or Clear.
func (q *Sequencer) Explosions() []*object.Explosion {
	return q.active
}

// Clear drops all explosions.
func (q *Sequencer) Clear() {
	clear(q.active)
	q.active = q.active[:0]
}
