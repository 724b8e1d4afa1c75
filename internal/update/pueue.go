package update

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PueueVersion is the pueue release `shnote setup` installs.
const PueueVersion = "4.0.1"

// pueueChecksums pins the SHA-256 of every pueue/pueued release asset,
// keyed by asset name.
var pueueChecksums = map[string]string{
	"pueue-aarch64-apple-darwin":        "4306f593b6a6b6db9d641889e33fe3a2effa6423888b8f82391fa57951ef1a9b",
	"pueued-aarch64-apple-darwin":       "dc14a7873a4a474ae42e7a6ee5778c2af2d53049182ecaa2d061f4803f04bf23",
	"pueue-x86_64-apple-darwin":         "25f07f7e93f916d6189acc11846aab6ebee975b0cc5867cf40a96b5c70f3b55c",
	"pueued-x86_64-apple-darwin":        "3e50d3bfadd1e417c8561aed2c1f4371605e8002f7fd793f39045719af5436a8",
	"pueue-x86_64-unknown-linux-musl":   "16aea6654b3915c6495bb2f456184fd7f3d418de3f74afb5eab04ae953cdfedf",
	"pueued-x86_64-unknown-linux-musl":  "8a97b176f55929e37cda49577b28b66ea345151adf766b9d8efa8c9d81525a0b",
	"pueue-aarch64-unknown-linux-musl":  "666af79b5a0246efa61a8589e51a190e3174bf80ad1c78b264204e7d312d43a9",
	"pueued-aarch64-unknown-linux-musl": "8d3811f2ad57ef72ed171f446f19676ef755e189286d1c31a1e478ed57465bdb",
	"pueue-x86_64-pc-windows-msvc.exe":  "1ac310e87cf2333a5852cecb9519c4b8f07ec0701c81aff3a82638dd0202c65c",
	"pueued-x86_64-pc-windows-msvc.exe": "de1274b4d369f31efa1df0a75eb810954666a87109f6a2594a1b777517740601",
}

// ErrUnsupportedPlatform is returned when no pueue build exists for the
// running platform.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// PueueAsset is one pueue binary to install.
type PueueAsset struct {
	// Binary is the installed file name: pueue, pueued (with .exe on Windows).
	Binary string
	// Name is the release asset name.
	Name string
	// SHA256 is the expected hex digest of the asset.
	SHA256 string
}

// PueueAssets returns the pueue and pueued assets for the source's platform.
func (s *Source) PueueAssets() ([]PueueAsset, error) {
	triple, ok := Triple(s.goos, s.goarch)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, s.goos, s.goarch)
	}
	ext := ""
	if s.goos == "windows" {
		ext = ".exe"
	}

	assets := make([]PueueAsset, 0, 2)
	for _, bin := range []string{"pueue", "pueued"} {
		name := bin + "-" + triple + ext
		assets = append(assets, PueueAsset{
			Binary: bin + ext,
			Name:   name,
			SHA256: pueueChecksums[name],
		})
	}
	return assets, nil
}

// PueueURL returns the download URL of a pueue release asset.
func (s *Source) PueueURL(asset PueueAsset) string {
	return s.url(fmt.Sprintf("%s/Nukesor/pueue/releases/download/v%s/%s", s.baseURL, PueueVersion, asset.Name))
}

// InstallPueue installs asset into binDir and returns the installed path.
// When a file with the expected checksum is already there, nothing is
// downloaded and skipped is true.
func (s *Source) InstallPueue(ctx context.Context, binDir string, asset PueueAsset) (path string, skipped bool, err error) {
	dest := filepath.Join(binDir, asset.Binary)
	if sum, err := SHA256File(dest); err == nil && strings.EqualFold(sum, asset.SHA256) {
		return dest, true, nil
	}

	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return "", false, fmt.Errorf("creating %s: %w", binDir, err)
	}

	tmp, err := s.Download(ctx, s.PueueURL(asset), binDir, nil)
	if err != nil {
		return "", false, err
	}
	defer os.Remove(tmp)

	if err := VerifyChecksum(tmp, asset.Name, asset.SHA256); err != nil {
		return "", false, err
	}
	if err := os.Chmod(tmp, 0o755); err != nil {
		return "", false, fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return "", false, fmt.Errorf("installing %s: %w", asset.Binary, err)
	}
	return dest, false, nil
}
