// Package version holds the build version of the CLI.
package version

// Version is the current release of the gh-models CLI.
const Version = "0.1.0"
