// Package source turns identifiers into IIIF manifests: it maps an opaque
// identifier to a directory under the source root, classifies the files in
// it, merges any sidecar context, and assembles the document graph.
package source

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lehigh-university-libraries/forager/internal/iiif"
	"github.com/lehigh-university-libraries/forager/internal/images"
	"github.com/lehigh-university-libraries/forager/internal/sidecar"
)

// ManifestSource builds manifests for directories under a single source
// root. It carries no mutable state; one value serves all requests.
type ManifestSource struct {
	root    string
	urls    iiif.BaseURLs
	pathSep string
}

func New(root string, urls iiif.BaseURLs, pathSep string) *ManifestSource {
	return &ManifestSource{
		root:    root,
		urls:    urls,
		pathSep: pathSep,
	}
}

// PathForID resolves an identifier to its directory: every occurrence of the
// configured separator becomes a path separator, and the result is joined
// under the source root.
func (s *ManifestSource) PathForID(id iiif.ID) string {
	relative := strings.ReplaceAll(string(id), s.pathSep, string(os.PathSeparator))
	return filepath.Join(s.root, relative)
}

// ManifestFor assembles the manifest for one item. Fatal failures are a
// missing path (*NotFoundError) and a path that is not a directory
// (*NotDirectoryError); everything else degrades: unloadable sidecars and
// unclassifiable or unreadable entries are logged and skipped, never
// propagated. A directory with no classifiable images yields a manifest
// whose sequence has no canvases.
func (s *ManifestSource) ManifestFor(itemID iiif.ID) (*iiif.Manifest, error) {
	sourcePath := s.PathForID(itemID)
	info, err := os.Stat(sourcePath)
	if err != nil {
		return nil, &NotFoundError{Path: sourcePath}
	}
	if !info.IsDir() {
		return nil, &NotDirectoryError{Path: sourcePath}
	}

	context, err := sidecar.Load(sourcePath)
	if err != nil {
		slog.Warn("Could not load sidecar context", "path", sourcePath, "err", err)
		context = sidecar.Empty()
	}

	sequence := iiif.NewSequence(s.urls, itemID)
	entries, err := os.ReadDir(sourcePath)
	if err != nil {
		slog.Error("Cannot read directory entries", "path", sourcePath, "err", err)
		entries = nil
	}
	for _, entry := range entries {
		fileName := entry.Name()
		imageInfo := images.Classify(filepath.Join(sourcePath, fileName))
		if imageInfo == nil {
			continue
		}
		imageID := itemID.Child(s.pathSep, fileName)
		sequence.AddImage(s.urls, itemID, imageID, fileName, imageInfo.Format, imageInfo.Width, imageInfo.Height)
	}

	description := context.Description
	if description == "" {
		description = string(itemID)
	}
	metadata := append(context.Metadata, iiif.KeyValue("location", string(itemID)))

	manifest := iiif.NewManifest(s.urls, itemID, string(itemID), metadata, description)
	manifest.AddSequence(sequence)
	return manifest, nil
}
