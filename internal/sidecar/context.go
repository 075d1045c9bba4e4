// Package sidecar loads optional descriptive metadata that sits next to an
// item's images: a context.json or context.yaml file in the item directory.
package sidecar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lehigh-university-libraries/forager/internal/iiif"
	"gopkg.in/yaml.v3"
)

// Context is externally supplied descriptive data for one item directory.
type Context struct {
	Description string          `json:"description" yaml:"description"`
	Metadata    []iiif.Metadata `json:"metadata" yaml:"metadata"`
}

// Empty returns a context with no description and no metadata.
func Empty() Context {
	return Context{}
}

// Load reads the sidecar context for dir. A missing sidecar is not an error
// and yields an empty context; a sidecar that exists but cannot be parsed is
// an error, which callers are expected to degrade to Empty. context.json is
// preferred over context.yaml when both exist.
func Load(dir string) (Context, error) {
	if ctx, found, err := loadFile(filepath.Join(dir, "context.json"), json.Unmarshal); found || err != nil {
		return ctx, err
	}
	if ctx, found, err := loadFile(filepath.Join(dir, "context.yaml"), yaml.Unmarshal); found || err != nil {
		return ctx, err
	}
	return Empty(), nil
}

func loadFile(path string, unmarshal func([]byte, any) error) (Context, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Empty(), false, nil
		}
		return Empty(), true, fmt.Errorf("failed to read sidecar %s: %w", path, err)
	}

	var ctx Context
	if err := unmarshal(data, &ctx); err != nil {
		return Empty(), true, fmt.Errorf("failed to parse sidecar %s: %w", path, err)
	}
	return ctx, true, nil
}
