// Package tui is the terminal front end of the lab page, built on bubbletea.
package tui
