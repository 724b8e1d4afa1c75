package admin

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wangnov/shnote/internal/blockmerge"
	"github.com/wangnov/shnote/internal/cli/shared"
	cfgpkg "github.com/wangnov/shnote/internal/config"
	"github.com/wangnov/shnote/internal/errors"
	"github.com/wangnov/shnote/internal/executor"
	"github.com/wangnov/shnote/internal/i18n"
	"github.com/wangnov/shnote/internal/rules"
	"github.com/wangnov/shnote/internal/testutil"
	"github.com/wangnov/shnote/internal/uninstall"
	"github.com/wangnov/shnote/internal/update"
)

type reinitCall struct {
	exe, lang, target string
}

type harness struct {
	root *cobra.Command
	out  *bytes.Buffer
	home string
	// exe is the binary update replaces; updates fail while it is empty.
	exe   string
	calls []reinitCall
}

// newHarness returns a root command with the maintenance commands bound to
// a fresh home directory and an empty PATH. srv, when set, serves releases.
func newHarness(t *testing.T, srv *httptest.Server) *harness {
	t.Helper()
	h := &harness{out: &bytes.Buffer{}, home: testutil.IsolateHome(t)}
	testutil.IsolatePath(t)

	env := shared.NewEnv(executor.Streams{Stdout: h.out, Stderr: h.out})
	env.LoadStore(cfgpkg.DefaultPath())

	d := deps{
		source: func() *update.Source {
			src := update.NewSource(nil, "")
			if srv != nil {
				src = update.NewSource(srv.Client(), "").WithBaseURL(srv.URL)
			}
			return src
		},
		installer: func() (*update.Installer, error) {
			if h.exe == "" {
				return nil, os.ErrPermission
			}
			return update.NewInstallerFor(h.exe), nil
		},
		home: func() (string, error) { return h.home, nil },
		reinit: func(_ context.Context, exe, lang, target string, _ io.Writer) error {
			h.calls = append(h.calls, reinitCall{exe: exe, lang: lang, target: target})
			return nil
		},
	}

	h.root = &cobra.Command{Use: "shnote", SilenceErrors: true, SilenceUsage: true}
	h.root.SetOut(h.out)
	h.root.SetErr(h.out)
	shared.AddGroups(h.root)
	register(h.root, env, d)
	return h
}

func (h *harness) run(stdin string, args ...string) error {
	h.root.SetIn(strings.NewReader(stdin))
	h.root.SetArgs(args)
	return h.root.Execute()
}

func supportedPlatform(t *testing.T) {
	t.Helper()
	if _, ok := update.Triple(runtime.GOOS, runtime.GOARCH); !ok {
		t.Skipf("no release assets for %s/%s", runtime.GOOS, runtime.GOARCH)
	}
}

func TestSetup_ChecksumMismatch(t *testing.T) {
	supportedPlatform(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "not pueue")
	}))
	defer srv.Close()
	h := newHarness(t, srv)

	err := h.run("", "setup")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum mismatch for pueue-")
	assert.Equal(t, shared.ExitFailure, shared.ExitCode(err))

	binDir, err := cfgpkg.BinDir()
	require.NoError(t, err)
	entries, _ := os.ReadDir(binDir)
	assert.Empty(t, entries, "nothing is left behind after a failed verification")
}

func TestInPath(t *testing.T) {
	t.Parallel()

	sep := string(os.PathListSeparator)
	dir := filepath.Join("home", "u", ".shnote", "bin")
	tests := map[string]struct {
		list string
		want bool
	}{
		"present":        {list: "/usr/bin" + sep + dir, want: true},
		"trailing slash": {list: dir + string(filepath.Separator), want: true},
		"absent":         {list: "/usr/bin" + sep + "/bin", want: false},
		"empty":          {list: "", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, inPath(dir, tt.list))
		})
	}
}

func TestWritePathHint(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		goos string
		want string
	}{
		"unix":    {goos: "linux", want: "  export PATH=\"/h/.shnote/bin:$PATH\"\n"},
		"windows": {goos: "windows", want: "  setx PATH \"%PATH%;/h/.shnote/bin\"\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var b bytes.Buffer
			writePathHint(&b, "/h/.shnote/bin", tt.goos)
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestDoctor_ReportsMissingTools(t *testing.T) {
	h := newHarness(t, nil)

	err := h.run("", "doctor")
	require.Error(t, err)
	assert.Equal(t, shared.ExitFailure, shared.ExitCode(err))

	out := h.out.String()
	assert.True(t, strings.HasPrefix(out, "Checking environment:\n"))
	assert.Contains(t, out, "✗ python:")
	assert.Contains(t, out, "✗ pueued:")
	assert.Contains(t, out, "check(s) failed.")
}

func TestInfo(t *testing.T) {
	h := newHarness(t, nil)

	binDir, err := cfgpkg.BinDir()
	require.NoError(t, err)
	pueue := testutil.Script(t, binDir, cfgpkg.ExeName("pueue"), "")

	require.NoError(t, h.run("", "info"))
	out := h.out.String()
	assert.True(t, strings.HasPrefix(out, "shnote dev ("+runtime.GOOS+"/"+runtime.GOARCH+")\n"))
	assert.Contains(t, out, "Config file: "+filepath.Join(h.home, ".shnote", "config.yaml"))
	assert.Contains(t, out, "Data directory: "+filepath.Join(h.home, ".shnote"))
	assert.Contains(t, out, "pueue: installed ("+pueue+")")
	assert.Contains(t, out, "pueued: not installed (run `shnote setup`)")
}

func TestInfo_BrokenConfig(t *testing.T) {
	h := newHarness(t, nil)
	path, err := cfgpkg.DefaultPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("shell: [unterminated\n"), 0o644))

	require.NoError(t, h.run("", "info"))
	assert.Contains(t, h.out.String(), "pueue: not installed")
}

// releaseServer serves VERSION, the shnote binary and its checksum.
func releaseServer(t *testing.T, version string, binary []byte) *httptest.Server {
	t.Helper()
	sum := sha256.Sum256(binary)
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/latest/download/VERSION"):
			io.WriteString(w, version+"\n")
		case strings.HasSuffix(r.URL.Path, ".sha256"):
			io.WriteString(w, hex.EncodeToString(sum[:])+"  shnote\n")
		case strings.Contains(r.URL.Path, "/releases/download/"):
			w.Write(binary)
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestUpdate_Check(t *testing.T) {
	srv := releaseServer(t, "v9.9.9", nil)
	defer srv.Close()
	h := newHarness(t, srv)

	require.NoError(t, h.run("", "update", "--check"))
	out := h.out.String()
	assert.Contains(t, out, "Current version: dev")
	assert.Contains(t, out, "Latest version: 9.9.9")
	assert.Contains(t, out, "Update available: 9.9.9")
}

func TestUpdate_RefusesDevBuild(t *testing.T) {
	srv := releaseServer(t, "v9.9.9", nil)
	defer srv.Close()
	h := newHarness(t, srv)

	err := h.run("", "update")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "development build")
}

func TestUpdate_InstallsRelease(t *testing.T) {
	supportedPlatform(t)
	if runtime.GOOS == "windows" {
		t.Skip("replaces a shell script")
	}
	release := []byte("#!/bin/sh\necho 9.9.9\n")
	srv := releaseServer(t, "v9.9.9", release)
	defer srv.Close()
	h := newHarness(t, srv)

	h.exe = filepath.Join(t.TempDir(), "shnote")
	require.NoError(t, os.WriteFile(h.exe, []byte("old"), 0o755))

	require.NoError(t, h.run("", "update", "--force"))
	got, err := os.ReadFile(h.exe)
	require.NoError(t, err)
	assert.Equal(t, release, got)
	assert.Contains(t, h.out.String(), "Updated to 9.9.9.")
	assert.Empty(t, h.calls, "no rules installed, nothing to refresh")

	info, err := os.Stat(h.exe)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o100, "installed binary is executable")
}

func TestUpdate_ChecksumMismatch(t *testing.T) {
	supportedPlatform(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/VERSION"):
			io.WriteString(w, "v9.9.9\n")
		case strings.HasSuffix(r.URL.Path, ".sha256"):
			io.WriteString(w, strings.Repeat("0", 64)+"\n")
		default:
			io.WriteString(w, "tampered")
		}
	}))
	defer srv.Close()
	h := newHarness(t, srv)

	exe := filepath.Join(t.TempDir(), "shnote")
	require.NoError(t, os.WriteFile(exe, []byte("old"), 0o755))
	installer := update.NewInstallerFor(exe)

	cmd := &cobra.Command{}
	cmd.SetOut(h.out)
	cmd.SetErr(h.out)
	cmd.SetContext(context.Background())
	v, err := update.ParseVersion("9.9.9")
	require.NoError(t, err)

	err = installRelease(cmd, shared.NewEnv(executor.Streams{}), update.NewSource(srv.Client(), "").WithBaseURL(srv.URL), installer, v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum mismatch")

	got, err := os.ReadFile(exe)
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(exe), ".shnote-download-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

// installRules merges rules bodies into the codex and gemini memory files.
func installRules(t *testing.T, home, codexBody, geminiBody string) {
	t.Helper()
	for target, body := range map[rules.Target]string{rules.Codex: codexBody, rules.Gemini: geminiBody} {
		_, err := blockmerge.Merge(blockmerge.Block{Path: target.MemoryFile(home), Markers: rules.Markers, Body: body})
		require.NoError(t, err)
	}
}

func TestCheckRules(t *testing.T) {
	pristine := rules.Render(i18n.Zh, false)
	edited := rules.Render(i18n.En, true) + "\nMy own note.\n"

	tests := map[string]struct {
		updated   bool
		stdin     string
		wantCalls []reinitCall
		wantOut   []string
	}{
		"after update both accepted": {
			updated: true,
			stdin:   "y\ny\n",
			wantCalls: []reinitCall{
				{exe: "/bin/shnote", lang: "zh", target: "codex"},
				{exe: "/bin/shnote", lang: "en", target: "gemini"},
			},
			wantOut: []string{"contains rules from an older shnote", "Update them now?", "+My own note.", "Overwrite your changes?"},
		},
		"after update modified declined": {
			updated:   true,
			stdin:     "y\nn\n",
			wantCalls: []reinitCall{{exe: "/bin/shnote", lang: "zh", target: "codex"}},
			wantOut:   []string{"Skipped."},
		},
		"already latest": {
			updated:   false,
			stdin:     "y\n",
			wantCalls: []reinitCall{{exe: "/bin/shnote", lang: "en", target: "gemini"}},
			wantOut:   []string{"AGENTS.md is up to date."},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, nil)
			installRules(t, h.home, pristine, edited)

			var calls []reinitCall
			d := deps{
				home: func() (string, error) { return h.home, nil },
				reinit: func(_ context.Context, exe, lang, target string, _ io.Writer) error {
					calls = append(calls, reinitCall{exe: exe, lang: lang, target: target})
					return nil
				},
			}
			cmd := &cobra.Command{}
			cmd.SetIn(strings.NewReader(tt.stdin))
			cmd.SetOut(h.out)
			cmd.SetContext(context.Background())

			require.NoError(t, checkRules(cmd, shared.NewEnv(executor.Streams{}), d, "/bin/shnote", tt.updated))
			assert.Equal(t, tt.wantCalls, calls)
			for _, want := range tt.wantOut {
				assert.Contains(t, h.out.String(), want)
			}
		})
	}
}

func TestCheckRules_NothingInstalled(t *testing.T) {
	h := newHarness(t, nil)
	cmd := &cobra.Command{}
	cmd.SetOut(h.out)

	d := deps{home: func() (string, error) { return h.home, nil }}
	require.NoError(t, checkRules(cmd, shared.NewEnv(executor.Streams{}), d, "/bin/shnote", true))
	assert.Empty(t, h.out.String())
}

func uninstallFixture(t *testing.T) []uninstall.UninstallTarget {
	t.Helper()
	dir := t.TempDir()
	dataDir := filepath.Join(dir, ".shnote")
	binary := filepath.Join(dir, "bin", "shnote")
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "bin"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.yaml"), []byte("color: false\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Dir(binary), 0o755))
	require.NoError(t, os.WriteFile(binary, []byte("bin"), 0o755))
	return uninstall.GetUninstallTargets(binary, dataDir)
}

func TestUninstall(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("binary removal is deferred on Windows")
	}

	tests := map[string]struct {
		stdin       string
		yes         bool
		wantRemoved bool
		wantOut     string
	}{
		"confirmed":      {stdin: "y\n", wantRemoved: true, wantOut: "shnote has been uninstalled."},
		"yes flag":       {yes: true, wantRemoved: true, wantOut: "shnote has been uninstalled."},
		"declined":       {stdin: "n\n", wantOut: "Cancelled."},
		"no answer is n": {stdin: "", wantOut: "Cancelled."},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			targets := uninstallFixture(t)
			var out bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetIn(strings.NewReader(tt.stdin))
			cmd.SetOut(&out)
			cmd.SetErr(&out)

			mentions := []string{"/home/u/.codex/AGENTS.md"}
			require.NoError(t, runUninstall(cmd, shared.NewEnv(executor.Streams{}), targets, mentions, tt.yes))

			assert.Contains(t, out.String(), "(config and data)")
			assert.Contains(t, out.String(), "/home/u/.codex/AGENTS.md")
			assert.Contains(t, out.String(), tt.wantOut)
			for _, target := range targets {
				_, err := os.Stat(target.Path)
				assert.Equal(t, tt.wantRemoved, os.IsNotExist(err), target.Path)
			}
		})
	}
}

func TestUninstall_NothingToRemove(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	targets := uninstall.GetUninstallTargets(filepath.Join(dir, "shnote"), filepath.Join(dir, ".shnote"))

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.NoError(t, runUninstall(cmd, shared.NewEnv(executor.Streams{}), targets, nil, true))
	assert.Equal(t, "Nothing to remove.\n", out.String())
}

func TestCompletions_Generate(t *testing.T) {
	tests := map[string]struct {
		shell string
		want  string
	}{
		"bash":   {shell: "bash", want: "__start_shnote"},
		"zsh":    {shell: "zsh", want: "#compdef shnote"},
		"fish":   {shell: "fish", want: "complete -c shnote"},
		"elvish": {shell: "elvish", want: "__complete"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, nil)
			require.NoError(t, h.run("", "completions", tt.shell))
			assert.Contains(t, h.out.String(), tt.want)
		})
	}
}

func TestCompletions_InvalidShell(t *testing.T) {
	h := newHarness(t, nil)

	err := h.run("", "completions", "tcsh")
	require.Error(t, err)
	assert.Equal(t, errors.KindInvalidArgument, errors.KindOf(err))
	assert.Equal(t, shared.ExitUsage, shared.ExitCode(err))
}

func TestCompletions_Install(t *testing.T) {
	h := newHarness(t, nil)
	rc := filepath.Join(h.home, ".bashrc")
	require.NoError(t, os.WriteFile(rc, []byte("alias ll='ls -l'\n"), 0o644))

	require.NoError(t, h.run("", "completions", "bash", "--install"))
	out := h.out.String()
	assert.Contains(t, out, "Completions installed in "+rc)
	assert.Contains(t, out, "Backup saved to "+rc+".shnote-backup-")
	assert.Contains(t, out, "Restart your shell")

	content, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "alias ll='ls -l'\n"))
	assert.Contains(t, string(content), "# >>> shnote completion >>>")

	h.out.Reset()
	require.NoError(t, h.run("", "completions", "bash", "--install"))
	assert.Equal(t, "Completions already installed in "+rc+"\n", h.out.String())
}

func TestCompletions_InstallCorruptBlock(t *testing.T) {
	h := newHarness(t, nil)
	rc := filepath.Join(h.home, ".zshrc")
	require.NoError(t, os.WriteFile(rc, []byte("# >>> shnote completion >>>\nsource x\n"), 0o644))

	err := h.run("", "completions", "zsh", "--install")
	require.Error(t, err)
	assert.Equal(t, shared.ExitCorruptBlock, shared.ExitCode(err))
	assert.Contains(t, err.Error(), rc)
}
