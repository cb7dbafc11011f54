package display

// Counter is the click counter owned by a single [Display]. The zero value
// starts at 0. It is not safe for concurrent use.
type Counter struct {
	n int
}

// Increment adds exactly one click.
func (c *Counter) Increment() {
	c.n++
}

// Value returns the number of clicks so far.
func (c *Counter) Value() int {
	return c.n
}
