package update

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"
	"time"
)

const (
	// Repo is the GitHub repository shnote releases are published from.
	Repo = "wangnov/shnote"

	// GitHubURL is the default origin for release downloads.
	GitHubURL = "https://github.com"

	// EnvProxy names a GitHub mirror prefix, e.g. https://ghproxy.example.
	EnvProxy = "GITHUB_PROXY"

	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 60 * time.Second
)

// Triple returns the release target triple for goos/goarch, the suffix used
// by both shnote and pueue release assets.
func Triple(goos, goarch string) (string, bool) {
	switch goos + "/" + goarch {
	case "darwin/arm64":
		return "aarch64-apple-darwin", true
	case "darwin/amd64":
		return "x86_64-apple-darwin", true
	case "linux/amd64":
		return "x86_64-unknown-linux-musl", true
	case "linux/arm64":
		return "aarch64-unknown-linux-musl", true
	case "windows/amd64":
		return "x86_64-pc-windows-msvc", true
	}
	return "", false
}

// ApplyProxy prefixes url with proxy. A trailing slash on proxy is dropped
// so both "https://mirror" and "https://mirror/" produce the same result.
func ApplyProxy(proxy, url string) string {
	proxy = strings.TrimRight(strings.TrimSpace(proxy), "/")
	if proxy == "" {
		return url
	}
	return proxy + "/" + url
}

// Source resolves and fetches shnote release artifacts.
type Source struct {
	httpClient *http.Client
	baseURL    string
	proxy      string
	goos       string
	goarch     string
}

// NewSource creates a release source for the running platform.
// proxy is normally os.Getenv(EnvProxy).
func NewSource(client *http.Client, proxy string) *Source {
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	return &Source{
		httpClient: client,
		baseURL:    GitHubURL,
		proxy:      proxy,
		goos:       runtime.GOOS,
		goarch:     runtime.GOARCH,
	}
}

// WithBaseURL points the source at a different origin. Used by tests.
func (s *Source) WithBaseURL(base string) *Source {
	s.baseURL = strings.TrimRight(base, "/")
	return s
}

// Proxy returns the configured mirror prefix, or "".
func (s *Source) Proxy() string {
	return strings.TrimSpace(s.proxy)
}

// VersionURL is the URL of the VERSION file in the latest release.
func (s *Source) VersionURL() string {
	return s.url(fmt.Sprintf("%s/%s/releases/latest/download/VERSION", s.baseURL, Repo))
}

// AssetName returns the shnote binary name for the source's platform.
func (s *Source) AssetName() (string, error) {
	triple, ok := Triple(s.goos, s.goarch)
	if !ok {
		return "", fmt.Errorf("no prebuilt binary for %s/%s", s.goos, s.goarch)
	}
	name := "shnote-" + triple
	if s.goos == "windows" {
		name += ".exe"
	}
	return name, nil
}

// BinaryURL returns the download URL of the shnote binary for v.
func (s *Source) BinaryURL(v *Version) (string, error) {
	asset, err := s.AssetName()
	if err != nil {
		return "", err
	}
	return s.url(fmt.Sprintf("%s/%s/releases/download/%s/%s", s.baseURL, Repo, v.Tag(), asset)), nil
}

// ChecksumURL returns the URL of the .sha256 file next to the binary for v.
func (s *Source) ChecksumURL(v *Version) (string, error) {
	u, err := s.BinaryURL(v)
	if err != nil {
		return "", err
	}
	return u + ".sha256", nil
}

func (s *Source) url(raw string) string {
	return ApplyProxy(s.proxy, raw)
}

// LatestVersion reads the VERSION file of the latest release.
func (s *Source) LatestVersion(ctx context.Context) (*Version, error) {
	body, err := s.FetchText(ctx, s.VersionURL())
	if err != nil {
		return nil, fmt.Errorf("fetching latest version: %w", err)
	}
	v, err := ParseVersion(body)
	if err != nil {
		return nil, err
	}
	if v.IsDev() {
		return nil, fmt.Errorf("latest release published an empty VERSION file")
	}
	return v, nil
}

// FetchText GETs url and returns the body as a string.
func (s *Source) FetchText(ctx context.Context, url string) (string, error) {
	resp, err := s.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(body), nil
}

func (s *Source) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "shnote")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("requesting %s: unexpected status %d", url, resp.StatusCode)
	}
	return resp, nil
}

// UpdateCheck contains the result of an update check.
type UpdateCheck struct {
	Current         *Version
	Latest          *Version
	UpdateAvailable bool
}

// Check compares current against the latest release. A dev build always
// reports an update as available.
func (s *Source) Check(ctx context.Context, current string) (*UpdateCheck, error) {
	cur, err := ParseVersion(current)
	if err != nil {
		return nil, err
	}
	latest, err := s.LatestVersion(ctx)
	if err != nil {
		return nil, err
	}
	return &UpdateCheck{
		Current:         cur,
		Latest:          latest,
		UpdateAvailable: latest.IsNewerThan(cur),
	}, nil
}
