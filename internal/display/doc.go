// Package display implements the lab page as a pure component: it resolves
// the runtime and build-time API URLs against a fixed fallback and renders
// them next to a click counter.
//
// The component knows nothing about terminals or HTTP. Front ends call
// [Display.Render] to obtain a [View] and [Display.Click] when the user
// presses the counter control.
package display
