// Package version carries build identity, overridable via -ldflags.
package version

var (
	AppName = "server-warden"
	Version = "dev"
	Commit  = "none"
)
