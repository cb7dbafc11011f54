package display

// View is one rendered frame of the page.
type View struct {
	Title        string
	Heading      string
	RuntimeValue string
	BuildValue   string
	Count        int
}

// RuntimeLine renders the runtime value with its label.
func (v View) RuntimeLine() string {
	return RuntimeLabel + " " + v.RuntimeValue
}

// BuildLine renders the build-time value with its label.
func (v View) BuildLine() string {
	return BuildLabel + " " + v.BuildValue
}

// ButtonLabel renders the counter control label.
func (v View) ButtonLabel() string {
	return ButtonLabel(v.Count)
}

// Lines returns every text node of the view in display order.
func (v View) Lines() []string {
	return []string{
		v.Title,
		v.Heading,
		v.RuntimeLine(),
		v.BuildLine(),
		v.ButtonLabel(),
		Hint,
	}
}
