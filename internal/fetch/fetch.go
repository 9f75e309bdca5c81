// Copyright BioCuration Labs, 2026. All rights reserved.

// Package fetch downloads the preprint collection archive and records a
// manifest of what was fetched.
package fetch

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/biocuration/preprint-triage/pkg/types"
)

// ErrMissingArchive reports that no local archive exists and the run was
// not asked to download one.
var ErrMissingArchive = errors.New("archive not found")

// Manifest records where and when the archive was fetched.
type Manifest struct {
	SourceURL string    `yaml:"source_url"`
	FetchedAt time.Time `yaml:"fetched_at"`
	SizeBytes int64     `yaml:"size_bytes"`
	SHA256    string    `yaml:"sha256"`
}

// Ensure returns the local archive path, downloading the archive first
// when force is set or no local copy exists. Progress lines go to w.
// Downloads are single-attempt; any network or filesystem failure is
// returned to the caller.
func Ensure(client *http.Client, cfg types.FetchConfig, force bool, w io.Writer) (string, error) {
	path := cfg.ArchivePath()
	if !force {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(w, "using cached archive: %s\n", path)
			return path, nil
		}
	}

	if err := os.MkdirAll(cfg.DownloadPath, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", cfg.DownloadPath, err)
	}

	fmt.Fprintf(w, "downloading: %s\n", cfg.SourceURL)
	size, sum, err := downloadFile(client, cfg, path)
	if err != nil {
		return "", fmt.Errorf("downloading archive: %w", err)
	}

	m := Manifest{
		SourceURL: cfg.SourceURL,
		FetchedAt: time.Now().UTC(),
		SizeBytes: size,
		SHA256:    sum,
	}
	if err := writeManifest(path, m); err != nil {
		return "", err
	}

	fmt.Fprintf(w, "saved archive: %s (%d bytes)\n", path, size)
	return path, nil
}

// Require returns the local archive path, or ErrMissingArchive when no
// archive exists. It never downloads.
func Require(cfg types.FetchConfig) (string, error) {
	path := cfg.ArchivePath()
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s (pass --download or run fetch first)", ErrMissingArchive, path)
	}
	return path, nil
}

// downloadFile streams the source URL to a temporary file and renames it
// into place on success, so a failed download never leaves a partial
// archive behind.
func downloadFile(client *http.Client, cfg types.FetchConfig, destPath string) (int64, string, error) {
	req, err := http.NewRequest(http.MethodGet, cfg.SourceURL, nil)
	if err != nil {
		return 0, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, cfg.SourceURL)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return 0, "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	hash := sha256.New()
	size, copyErr := io.Copy(io.MultiWriter(tmpFile, hash), resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return 0, "", fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return 0, "", fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return 0, "", fmt.Errorf("renaming temp file: %w", err)
	}
	return size, hex.EncodeToString(hash.Sum(nil)), nil
}

// ManifestPath returns the manifest sidecar path for an archive.
func ManifestPath(archivePath string) string {
	return archivePath + ".meta.yaml"
}

func writeManifest(archivePath string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(ManifestPath(archivePath), data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// ReadManifest loads the manifest sidecar of an archive.
func ReadManifest(archivePath string) (*Manifest, error) {
	data, err := os.ReadFile(ManifestPath(archivePath))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
