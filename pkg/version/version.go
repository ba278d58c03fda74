// Package version holds the romrun release version.
package version

// Version is set at build time via -ldflags "-X romrun/pkg/version.Version=...".
var Version = "dev"
