package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/lehigh-university-libraries/forager/internal/iiif"
)

var testURLs = iiif.NewBaseURLs("https://iiif.example.edu/presentation", "https://images.example.edu/iiif/2")

func writeJPEG(t *testing.T, path string, width, height int) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer file.Close()
	if err := jpeg.Encode(file, image.NewRGBA(image.Rect(0, 0, width, height)), nil); err != nil {
		t.Fatalf("Failed to encode jpeg: %v", err)
	}
}

func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer file.Close()
	if err := png.Encode(file, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
}

func TestPathForID(t *testing.T) {
	tests := []struct {
		name     string
		id       iiif.ID
		sep      string
		expected string
	}{
		{name: "flat id", id: "item", sep: "-", expected: "item"},
		{name: "separator names nesting", id: "books-section1", sep: "-", expected: filepath.Join("books", "section1")},
		{name: "multichar separator", id: "books__section1__maps", sep: "__", expected: filepath.Join("books", "section1", "maps")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("/data", testURLs, tt.sep)
			expected := filepath.Join("/data", tt.expected)
			if got := s.PathForID(tt.id); got != expected {
				t.Errorf("Expected %s, got %s", expected, got)
			}
		})
	}
}

func TestManifestForMissingPath(t *testing.T) {
	s := New(t.TempDir(), testURLs, "-")
	_, err := s.ManifestFor("no-such-item")

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if notFound.Path == "" {
		t.Error("Error should carry the resolved path")
	}
}

func TestManifestForFilePath(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "item"), []byte("a file, not a directory"), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(root, testURLs, "-")
	_, err := s.ManifestFor("item")

	var notDir *NotDirectoryError
	if !errors.As(err, &notDir) {
		t.Fatalf("Expected NotDirectoryError, got %v", err)
	}
}

func TestManifestForEmptyDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "empty"), 0755); err != nil {
		t.Fatal(err)
	}

	s := New(root, testURLs, "-")
	manifest, err := s.ManifestFor("empty")
	if err != nil {
		t.Fatalf("ManifestFor failed: %v", err)
	}

	if len(manifest.Sequences) != 1 {
		t.Fatalf("Expected exactly one sequence, got %d", len(manifest.Sequences))
	}
	if len(manifest.Sequences[0].Canvases) != 0 {
		t.Errorf("Expected no canvases, got %d", len(manifest.Sequences[0].Canvases))
	}
	if manifest.Description != "empty" {
		t.Errorf("Description should fall back to the identifier, got %q", manifest.Description)
	}
	if len(manifest.Metadata) != 1 || manifest.Metadata[0].Label != "location" {
		t.Errorf("Expected only the synthetic location entry, got %+v", manifest.Metadata)
	}
}

// Mirrors the canonical example: a nested item holding one real image and
// one unclassifiable file.
func TestManifestForNestedItem(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "books", "section1")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	writeJPEG(t, filepath.Join(dir, "page1.jpg"), 800, 1200)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(root, testURLs, "-")
	manifest, err := s.ManifestFor("books-section1")
	if err != nil {
		t.Fatalf("ManifestFor failed: %v", err)
	}

	if manifest.ID != "https://iiif.example.edu/presentation/books-section1/manifest" {
		t.Errorf("Unexpected manifest id %s", manifest.ID)
	}
	if manifest.Label != "books-section1" {
		t.Errorf("Unexpected label %s", manifest.Label)
	}

	canvases := manifest.Sequences[0].Canvases
	if len(canvases) != 1 {
		t.Fatalf("Expected exactly one canvas, got %d", len(canvases))
	}
	canvas := canvases[0]
	if canvas.Width != 800 || canvas.Height != 1200 {
		t.Errorf("Unexpected canvas dimensions %dx%d", canvas.Width, canvas.Height)
	}
	if canvas.Label != "page1.jpg" {
		t.Errorf("Unexpected canvas label %s", canvas.Label)
	}
	if canvas.ID != "https://iiif.example.edu/presentation/books-section1/canvas/0" {
		t.Errorf("Unexpected canvas id %s", canvas.ID)
	}

	resource := canvas.Images[0].Resource
	if resource.ID != "https://images.example.edu/iiif/2/books-section1/books-section1-page1.jpg/full/full/default.jpg" {
		t.Errorf("Unexpected asset id %s", resource.ID)
	}
	if resource.Service.ID != "https://images.example.edu/iiif/2/books-section1" {
		t.Errorf("Unexpected service id %s", resource.Service.ID)
	}
}

func TestManifestMergesSidecarMetadata(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "item")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	sidecar := `{
		"description": "Maps of the region",
		"metadata": [
			{"label": "creator", "value": "Alice"},
			{"label": "subjects", "value": ["maps", "history"]}
		]
	}`
	if err := os.WriteFile(filepath.Join(dir, "context.json"), []byte(sidecar), 0644); err != nil {
		t.Fatal(err)
	}
	writePNG(t, filepath.Join(dir, "map.png"), 640, 480)

	s := New(root, testURLs, "-")
	manifest, err := s.ManifestFor("item")
	if err != nil {
		t.Fatalf("ManifestFor failed: %v", err)
	}

	if manifest.Description != "Maps of the region" {
		t.Errorf("Unexpected description %q", manifest.Description)
	}

	labels := make([]string, 0, len(manifest.Metadata))
	for _, entry := range manifest.Metadata {
		labels = append(labels, entry.Label)
	}
	expected := []string{"creator", "subjects", "location"}
	if len(labels) != len(expected) {
		t.Fatalf("Expected labels %v, got %v", expected, labels)
	}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Errorf("Expected labels %v, got %v", expected, labels)
			break
		}
	}

	location := manifest.Metadata[len(manifest.Metadata)-1]
	data, err := json.Marshal(location.Value)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"item"` {
		t.Errorf("Location entry should hold the root identifier, got %s", data)
	}

	// The sidecar file itself must not become a canvas.
	if len(manifest.Sequences[0].Canvases) != 1 {
		t.Errorf("Expected one canvas, got %d", len(manifest.Sequences[0].Canvases))
	}
}

func TestManifestForMalformedSidecar(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "item")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "context.json"), []byte(`{"description":`), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(root, testURLs, "-")
	manifest, err := s.ManifestFor("item")
	if err != nil {
		t.Fatalf("Malformed sidecar must not fail the request, got %v", err)
	}
	if len(manifest.Metadata) != 1 || manifest.Metadata[0].Label != "location" {
		t.Errorf("Expected empty metadata plus location, got %+v", manifest.Metadata)
	}
	if manifest.Description != "item" {
		t.Errorf("Description should fall back to the identifier, got %q", manifest.Description)
	}
}

func TestCanvasOrderFollowsScanOrder(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "item")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	writeJPEG(t, filepath.Join(dir, "c.jpg"), 10, 10)
	writeJPEG(t, filepath.Join(dir, "a.jpg"), 10, 10)
	writePNG(t, filepath.Join(dir, "b.png"), 10, 10)

	s := New(root, testURLs, "-")
	manifest, err := s.ManifestFor("item")
	if err != nil {
		t.Fatalf("ManifestFor failed: %v", err)
	}

	canvases := manifest.Sequences[0].Canvases
	expected := []string{"a.jpg", "b.png", "c.jpg"}
	if len(canvases) != len(expected) {
		t.Fatalf("Expected %d canvases, got %d", len(expected), len(canvases))
	}
	for i, canvas := range canvases {
		if canvas.Label != expected[i] {
			t.Errorf("Canvas %d: expected label %s, got %s", i, expected[i], canvas.Label)
		}
		expectedID := iiif.URI("https://iiif.example.edu/presentation/item/canvas/" + strconv.Itoa(i))
		if canvas.ID != expectedID {
			t.Errorf("Canvas %d: expected id %s, got %s", i, expectedID, canvas.ID)
		}
	}
}

func TestRepeatedRequestsAreByteIdentical(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "item")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	writeJPEG(t, filepath.Join(dir, "page1.jpg"), 20, 30)
	writePNG(t, filepath.Join(dir, "page2.png"), 20, 30)

	s := New(root, testURLs, "-")
	first, err := s.ManifestFor("item")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.ManifestFor("item")
	if err != nil {
		t.Fatal(err)
	}

	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	secondJSON, err := json.Marshal(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(firstJSON, secondJSON) {
		t.Error("Two requests for an unmodified directory must serialize identically")
	}
}
