package testutil

import (
	"os"
	"testing"
)

// environmentVars lists variables that change how shnote resolves tools,
// picks a language or colors its output. Isolated tests start with all of
// them unset.
var environmentVars = []string{
	"SHNOTE_LANG",
	"SHNOTE_LOG",
	"SHNOTE_ASCII",
	"SHNOTE_CFG_PYTHON",
	"SHNOTE_CFG_NODE",
	"SHNOTE_CFG_SHELL",
	"SHNOTE_CFG_LANGUAGE",
	"SHNOTE_CFG_OUTPUT",
	"SHNOTE_CFG_COLOR",
	"SHNOTE_CFG_WHAT_COLOR",
	"SHNOTE_CFG_WHY_COLOR",
	"LC_ALL",
	"LC_MESSAGES",
	"LANGUAGE",
	"LANG",
	"GITHUB_PROXY",
}

// IsolateHome points HOME (and USERPROFILE) at a fresh directory, clears
// shnote's environment overrides and disables color. It returns the home.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    home := testutil.IsolateHome(t)
//	    // config, rules and data now live under home
//	}
func IsolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, key := range environmentVars {
		// t.Setenv restores the original value after the test.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("NO_COLOR", "1")
	return home
}

// IsolatePath leaves a single empty directory on PATH and returns it, so
// only tools a test places there resolve.
func IsolatePath(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("PATH", dir)
	return dir
}
