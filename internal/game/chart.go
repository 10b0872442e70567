package game

// Chart holds the notes currently in the play area.
type Chart struct {
	Notes []*Note
}

func (c *Chart) Add(notes ...*Note) {
	c.Notes = append(c.Notes, notes...)
}

// Compact drops every note that has left the Active state. Callers mark
// notes while iterating and compact afterwards.
func (c *Chart) Compact() {
	live := c.Notes[:0]
	for _, n := range c.Notes {
		if n.Live() {
			live = append(live, n)
		}
	}
	for i := len(live); i < len(c.Notes); i++ {
		c.Notes[i] = nil
	}
	c.Notes = live
}

func (c *Chart) Reset() {
	c.Notes = nil
}

// Judgeable returns the live, non-decoy notes.
func (c *Chart) Judgeable() []*Note {
	notes := make([]*Note, 0, len(c.Notes))
	for _, n := range c.Notes {
		if n.Live() && !n.Decoy {
			notes = append(notes, n)
		}
	}
	return notes
}
