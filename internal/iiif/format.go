package iiif

// Format is the classified pixel format of a source image.
type Format int

const (
	FormatUnknown Format = iota
	FormatJPEG
	FormatPNG
)

// Extension returns the file extension used in derived image asset URIs.
// Unknown formats contribute an empty extension.
func (f Format) Extension() string {
	switch f {
	case FormatJPEG:
		return "jpg"
	case FormatPNG:
		return "png"
	default:
		return ""
	}
}

// MediaType returns the MIME type recorded in the resource's format field.
func (f Format) MediaType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatPNG:
		return "image/png"
	default:
		return "image/unknown"
	}
}
