// Package http implements the HTTP front end of the lab page.
//
// It renders the page as HTML, accepts counter clicks as form posts and
// publishes the runtime configuration as a window.RUNTIME_ENV script.
// Request tracing and access logging are handled by middleware before
// requests reach the page handlers.
package http
