// Package images classifies files on disk as IIIF-servable images. Only
// image headers are read; pixel data is never decoded.
package images

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/lehigh-university-libraries/forager/internal/iiif"
)

// Info is the classification result for one file.
type Info struct {
	Format iiif.Format
	Width  uint64
	Height uint64
}

// Classify reads the header of the file at path and reports its format and
// dimensions. It returns nil for anything that is not a decodable image:
// directories, unreadable files, and files no registered decoder accepts.
func Classify(path string) *Info {
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()

	config, format, err := image.DecodeConfig(file)
	if err != nil {
		return nil
	}

	info := &Info{
		Width:  uint64(config.Width),
		Height: uint64(config.Height),
	}
	switch format {
	case "jpeg":
		info.Format = iiif.FormatJPEG
	case "png":
		info.Format = iiif.FormatPNG
	default:
		info.Format = iiif.FormatUnknown
	}
	return info
}
