package update

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// ProgressWriter wraps an io.Writer to report download progress.
type ProgressWriter struct {
	Writer   io.Writer
	Total    int64
	Current  int64
	OnUpdate func(current, total int64)
}

// Write implements io.Writer and reports progress.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Current += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Current, pw.Total)
	}
	return n, err
}

// Download fetches url into a new file in dir (os.TempDir when empty) and
// returns its path. The caller owns the file.
func (s *Source) Download(ctx context.Context, url, dir string, onProgress func(current, total int64)) (string, error) {
	resp, err := s.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	tmpFile, err := os.CreateTemp(dir, ".shnote-download-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer tmpFile.Close()

	writer := io.Writer(tmpFile)
	if onProgress != nil {
		writer = &ProgressWriter{
			Writer:   tmpFile,
			Total:    resp.ContentLength,
			OnUpdate: onProgress,
		}
	}

	if _, err := io.Copy(writer, resp.Body); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("writing to temp file: %w", err)
	}

	return tmpFile.Name(), nil
}

// FetchChecksum downloads a .sha256 file and returns the hash it carries.
func (s *Source) FetchChecksum(ctx context.Context, checksumURL string) (string, error) {
	body, err := s.FetchText(ctx, checksumURL)
	if err != nil {
		return "", fmt.Errorf("fetching checksum: %w", err)
	}
	return ParseChecksum(body)
}

// ParseChecksum returns the first whitespace-separated field of a sha256sum
// style file, lowercased. Both "<hash>" and "<hash>  <filename>" are accepted.
func ParseChecksum(content string) (string, error) {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return "", fmt.Errorf("checksum file is empty")
	}
	sum := strings.ToLower(fields[0])
	if len(sum) != sha256.Size*2 {
		return "", fmt.Errorf("malformed sha256 checksum %q", fields[0])
	}
	if _, err := hex.DecodeString(sum); err != nil {
		return "", fmt.Errorf("malformed sha256 checksum %q", fields[0])
	}
	return sum, nil
}

// SHA256File returns the hex-encoded SHA-256 of the file at path.
func SHA256File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening file for checksum: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("computing checksum: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ChecksumMismatchError reports a download whose hash differs from the
// published one.
type ChecksumMismatchError struct {
	Name     string
	Expected string
	Actual   string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch for %s: expected %s, got %s", e.Name, e.Expected, e.Actual)
}

// VerifyChecksum computes the SHA256 hash of a file and compares it to expected.
func VerifyChecksum(filePath, name, expected string) error {
	actual, err := SHA256File(filePath)
	if err != nil {
		return err
	}
	if !strings.EqualFold(actual, expected) {
		return &ChecksumMismatchError{Name: name, Expected: strings.ToLower(expected), Actual: actual}
	}
	return nil
}
