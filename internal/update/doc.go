// Package update fetches, verifies and installs release binaries.
//
// It serves two commands:
//   - `shnote update` reads the VERSION file of the latest shnote release,
//     downloads the platform binary with its .sha256 file and replaces the
//     running executable (release.go, download.go, install.go).
//   - `shnote setup` installs pueue and pueued into ~/.shnote/bin, verifying
//     each download against pinned SHA-256 checksums (pueue.go).
//
// Every URL can be routed through a GitHub mirror with GITHUB_PROXY.
package update
