// Package version holds the supported configuration document version.
package version

// Version is the only configuration document version this build understands.
const Version = "v1"
