package domain

// Slide is one content node of a deck
type Slide struct {
	ID     string
	Title  string
	Body   string // raw markdown
	Source string // file the slide was read from
	Clone  bool   // synthetic copy used for the loop illusion
}

// Copy returns a deep copy of the slide marked as a clone
func (s Slide) Copy() Slide {
	c := s
	c.Clone = true
	return c
}

// DisplayTitle returns the title, falling back to the id
func (s Slide) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return s.ID
}
