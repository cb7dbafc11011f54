// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are injected by linker flags when the image is built and are fixed
// for the lifetime of that build. apiURL is the build-time API URL
// (VITE_API_URL) shown next to the runtime one.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
	apiURL       string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit, apiURL string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
		apiURL:       apiURL,
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// APIURL returns the API URL baked into the binary at build time.
// An empty string means the build did not set it.
func (a AppBuildInfo) APIURL() string {
	return a.apiURL
}
