package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(server *httptest.Server, goos, goarch string) *Source {
	s := NewSource(server.Client(), "").WithBaseURL(server.URL)
	s.goos = goos
	s.goarch = goarch
	return s
}

func TestTriple(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		goos, goarch string
		want         string
		ok           bool
	}{
		"macos arm":     {goos: "darwin", goarch: "arm64", want: "aarch64-apple-darwin", ok: true},
		"macos intel":   {goos: "darwin", goarch: "amd64", want: "x86_64-apple-darwin", ok: true},
		"linux x86":     {goos: "linux", goarch: "amd64", want: "x86_64-unknown-linux-musl", ok: true},
		"linux arm":     {goos: "linux", goarch: "arm64", want: "aarch64-unknown-linux-musl", ok: true},
		"windows x86":   {goos: "windows", goarch: "amd64", want: "x86_64-pc-windows-msvc", ok: true},
		"windows arm":   {goos: "windows", goarch: "arm64"},
		"freebsd":       {goos: "freebsd", goarch: "amd64"},
		"linux 386 bit": {goos: "linux", goarch: "386"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := Triple(tt.goos, tt.goarch)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyProxy(t *testing.T) {
	t.Parallel()

	const url = "https://github.com/wangnov/shnote/releases/latest/download/VERSION"
	tests := map[string]struct {
		proxy string
		want  string
	}{
		"no proxy":       {proxy: "", want: url},
		"blank proxy":    {proxy: "   ", want: url},
		"plain proxy":    {proxy: "https://mirror.example", want: "https://mirror.example/" + url},
		"trailing slash": {proxy: "https://mirror.example/", want: "https://mirror.example/" + url},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ApplyProxy(tt.proxy, url))
		})
	}
}

func TestSource_URLs(t *testing.T) {
	t.Parallel()

	v, err := ParseVersion("0.3.1")
	require.NoError(t, err)

	s := NewSource(nil, "")
	s.goos, s.goarch = "linux", "amd64"

	assert.Equal(t, "https://github.com/wangnov/shnote/releases/latest/download/VERSION", s.VersionURL())

	bin, err := s.BinaryURL(v)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/wangnov/shnote/releases/download/v0.3.1/shnote-x86_64-unknown-linux-musl", bin)

	sum, err := s.ChecksumURL(v)
	require.NoError(t, err)
	assert.Equal(t, bin+".sha256", sum)

	s.goos = "windows"
	bin, err = s.BinaryURL(v)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/wangnov/shnote/releases/download/v0.3.1/shnote-x86_64-pc-windows-msvc.exe", bin)

	s.goos = "plan9"
	_, err = s.BinaryURL(v)
	assert.Error(t, err)
}

func TestSource_URLsWithProxy(t *testing.T) {
	t.Parallel()

	s := NewSource(nil, "https://mirror.example/")
	assert.Equal(t, "https://mirror.example/https://github.com/wangnov/shnote/releases/latest/download/VERSION", s.VersionURL())
	assert.Equal(t, "https://mirror.example/", s.Proxy())
}

func TestSource_Check(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		current       string
		body          string
		status        int
		wantLatest    string
		wantAvailable bool
		wantErr       bool
	}{
		"update available": {
			current: "0.2.0", body: "0.3.1\n", status: http.StatusOK,
			wantLatest: "0.3.1", wantAvailable: true,
		},
		"already latest": {
			current: "0.3.1", body: "v0.3.1", status: http.StatusOK,
			wantLatest: "0.3.1",
		},
		"ahead of release": {
			current: "0.4.0", body: "0.3.1", status: http.StatusOK,
			wantLatest: "0.3.1",
		},
		"dev build": {
			current: "dev", body: "0.3.1", status: http.StatusOK,
			wantLatest: "0.3.1", wantAvailable: true,
		},
		"not found": {
			current: "0.3.1", status: http.StatusNotFound, wantErr: true,
		},
		"garbage version file": {
			current: "0.3.1", body: "<html>", status: http.StatusOK, wantErr: true,
		},
		"empty version file": {
			current: "0.3.1", body: "\n", status: http.StatusOK, wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/wangnov/shnote/releases/latest/download/VERSION", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			got, err := newTestSource(server, "linux", "amd64").Check(context.Background(), tt.current)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLatest, got.Latest.String())
			assert.Equal(t, tt.wantAvailable, got.UpdateAvailable)
		})
	}
}
