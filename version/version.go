// Package version records the rescom release version.
package version

// Version is the current rescom release.
const Version = "1.1.0"
