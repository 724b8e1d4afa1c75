package update

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(data string) string {
	h := sha256.Sum256([]byte(data))
	return hex.EncodeToString(h[:])
}

func TestSource_Download(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		responseCode int
		responseBody string
		wantErr      bool
	}{
		"successful download": {
			responseCode: http.StatusOK,
			responseBody: "fake binary content",
		},
		"not found": {
			responseCode: http.StatusNotFound,
			wantErr:      true,
		},
		"server error": {
			responseCode: http.StatusInternalServerError,
			wantErr:      true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.responseCode)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			dir := t.TempDir()
			path, err := newTestSource(server, "linux", "amd64").Download(context.Background(), server.URL, dir, nil)
			if tt.wantErr {
				assert.Error(t, err)
				entries, _ := os.ReadDir(dir)
				assert.Empty(t, entries)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, dir, filepath.Dir(path))
			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.responseBody, string(content))
		})
	}
}

func TestSource_Download_WithProgress(t *testing.T) {
	t.Parallel()

	body := "test content for progress tracking"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(body)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	var lastCurrent, lastTotal int64
	path, err := newTestSource(server, "linux", "amd64").Download(context.Background(), server.URL, t.TempDir(),
		func(current, total int64) {
			lastCurrent, lastTotal = current, total
		})
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, int64(len(body)), lastCurrent)
	assert.Equal(t, int64(len(body)), lastTotal)
}

func TestParseChecksum(t *testing.T) {
	t.Parallel()

	valid := sum("shnote")
	tests := map[string]struct {
		content string
		want    string
		wantErr bool
	}{
		"bare hash":            {content: valid + "\n", want: valid},
		"sha256sum format":     {content: valid + "  shnote-x86_64-unknown-linux-musl\n", want: valid},
		"uppercase is lowered": {content: strings.ToUpper(valid), want: valid},
		"leading whitespace":   {content: "\n  " + valid, want: valid},
		"empty":                {content: "", wantErr: true},
		"too short":            {content: "abc123", wantErr: true},
		"not hex":              {content: strings.Repeat("z", 64), wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseChecksum(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyChecksum(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bin")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0o644))

	require.NoError(t, VerifyChecksum(path, "bin", sum("payload")))
	require.NoError(t, VerifyChecksum(path, "bin", strings.ToUpper(sum("payload"))))

	err := VerifyChecksum(path, "bin", sum("other"))
	var mismatch *ChecksumMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "bin", mismatch.Name)
	assert.Equal(t, sum("payload"), mismatch.Actual)
	assert.Equal(t, sum("other"), mismatch.Expected)

	assert.Error(t, VerifyChecksum(filepath.Join(t.TempDir(), "missing"), "missing", sum("")))
}

func TestSource_FetchChecksum(t *testing.T) {
	t.Parallel()

	want := sum("binary")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(want + "  shnote-aarch64-apple-darwin\n"))
	}))
	defer server.Close()

	got, err := newTestSource(server, "darwin", "arm64").FetchChecksum(context.Background(), server.URL+"/x.sha256")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
