package models

// RuntimeEnvAPIURLKey is the key under which the runtime API URL is published
// to the page, mirroring the container's window.RUNTIME_ENV object.
const RuntimeEnvAPIURLKey = "API_URL"

// RuntimeEnv holds configuration injected into the process at launch rather
// than at build time. It is read-only once the application has started.
type RuntimeEnv struct {
	// APIURL is the API URL taken from the API_URL environment variable,
	// a flag or the JSON config file. Empty when not configured.
	APIURL string
}

// Values returns the non-empty runtime values keyed by their public names.
// Unset values are omitted so consumers can apply their own fallback.
func (e RuntimeEnv) Values() map[string]string {
	values := make(map[string]string, 1)
	if e.APIURL != "" {
		values[RuntimeEnvAPIURLKey] = e.APIURL
	}
	return values
}
