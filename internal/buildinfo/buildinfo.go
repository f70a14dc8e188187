// Package buildinfo carries version metadata stamped at build time via
// -ldflags "-X github.com/veritaslabs/veritas/internal/buildinfo.Version=...".
package buildinfo

// Version is the release version of the binary.
var Version = "0.1.0-dev"
