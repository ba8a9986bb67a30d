package views

// pager tracks the selected card. The visible page is always the one
// holding the cursor.
type pager struct {
	size   int
	total  int
	cursor int
}

func newPager(size int) *pager {
	if size <= 0 {
		size = 10
	}
	return &pager{size: size}
}

// Load starts over on a list of n cards
func (p *pager) Load(n int) {
	p.total = n
	p.cursor = 0
}

// Resize sets the number of cards per page
func (p *pager) Resize(size int) {
	if size > 0 {
		p.size = size
	}
}

func (p *pager) Cursor() int {
	return p.cursor
}

// Select moves the cursor to card i, clamped to the list
func (p *pager) Select(i int) {
	p.cursor = max(0, min(i, p.total-1))
}

// Move shifts the cursor by delta cards
func (p *pager) Move(delta int) {
	p.Select(p.cursor + delta)
}

// Turn jumps to the first card delta pages away. It reports false and stays
// put when that page does not exist.
func (p *pager) Turn(delta int) bool {
	page := p.cursor/p.size + delta
	if page < 0 || page >= p.Pages() {
		return false
	}
	p.cursor = page * p.size
	return true
}

// Page is the 1-based page number of the cursor
func (p *pager) Page() int {
	return p.cursor/p.size + 1
}

func (p *pager) Pages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.size - 1) / p.size
}

// Window returns the half-open card range shown on the current page
func (p *pager) Window() (start, end int) {
	start = p.cursor / p.size * p.size
	return start, min(start+p.size, p.total)
}
