// Package app wires the display component to the front end selected by the
// configuration: the HTTP page when an address is set, the terminal UI
// otherwise.
package app
