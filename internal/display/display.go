package display

import "fmt"

// Texts rendered by the page.
const (
	Title        = "React + Docker Lab"
	Heading      = "Variables de Entorno"
	RuntimeLabel = "Runtime API URL:"
	BuildLabel   = "Build-time VITE_API_URL:"
	Hint         = "Edit internal/display/display.go and rebuild to see your changes"

	// Fallback replaces any configuration value that is not set.
	Fallback = "No configurada"
)

// Config holds the two configuration sources shown on the page.
// Both values are opaque display strings.
type Config struct {
	// RuntimeAPIURL comes from the environment the process was launched in.
	RuntimeAPIURL string
	// BuildAPIURL was baked into the binary at build time.
	BuildAPIURL string
}

// Display is the lab page component. Construct it with [New].
type Display struct {
	cfg     Config
	counter Counter
}

// New returns a component with its counter at 0.
func New(cfg Config) *Display {
	return &Display{cfg: cfg}
}

// Resolve returns v, or [Fallback] when v is empty.
func Resolve(v string) string {
	if v == "" {
		return Fallback
	}
	return v
}

// Click registers one press of the counter control.
func (d *Display) Click() {
	d.counter.Increment()
}

// Count returns the current counter value.
func (d *Display) Count() int {
	return d.counter.Value()
}

// Render resolves both configuration values and snapshots the counter.
// It has no side effects.
func (d *Display) Render() View {
	return View{
		Title:        Title,
		Heading:      Heading,
		RuntimeValue: Resolve(d.cfg.RuntimeAPIURL),
		BuildValue:   Resolve(d.cfg.BuildAPIURL),
		Count:        d.counter.Value(),
	}
}

// ButtonLabel is the accessible name of the counter control after n clicks.
func ButtonLabel(n int) string {
	return fmt.Sprintf("count is %d", n)
}
