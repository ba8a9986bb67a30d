package domain

// Toast is the visibility state of the transient "added to cart" notification.
// Every Show starts a new generation; Hide only takes effect for the latest
// one, so a hide scheduled by an earlier Show can never cut a later one short.
type Toast struct {
	visible    bool
	generation uint64
}

// Show makes the toast visible and returns the generation to hide later
func (t *Toast) Show() uint64 {
	t.generation++
	t.visible = true
	return t.generation
}

// Hide hides the toast if generation is still current and reports whether it did
func (t *Toast) Hide(generation uint64) bool {
	if generation != t.generation || !t.visible {
		return false
	}
	t.visible = false
	return true
}

// Visible reports whether the toast is showing
func (t *Toast) Visible() bool {
	return t.visible
}

// Generation returns the generation of the latest Show
func (t *Toast) Generation() uint64 {
	return t.generation
}
