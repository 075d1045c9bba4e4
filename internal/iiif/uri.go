package iiif

import "fmt"

// Fixed IIIF context and profile constants embedded in every document.
const (
	presentationContext = "http://iiif.io/api/presentation/2/context.json"
	imageContext        = "http://iiif.io/api/image/2/context.json"
	imageProfile        = "http://iiif.io/api/image/2/level2.json"
	imageProtocol       = "http://iiif.io/api/image"
)

// URI is an absolute link embedded in an output document. Every URI is either
// one of the fixed IIIF constants or derived from a base URL plus identifiers;
// it is never edited after construction.
type URI string

// ID names a manifest, canvas-owning item, or a single image within an item.
// IDs are opaque: the server only ever concatenates them with a separator or
// maps them back to a filesystem path.
type ID string

// Child derives the identifier of a file discovered inside the item named by
// id. The filename is appended verbatim; a filename containing the separator
// produces an ambiguous identifier, which matches the inherited behavior of
// the identifier scheme.
func (id ID) Child(sep, filename string) ID {
	return ID(string(id) + sep + filename)
}

// BaseURLs carries the two API roots every derived URI is built from. It is
// resolved once at startup and passed by value into every constructor.
type BaseURLs struct {
	Presentation string
	Image        string
}

func NewBaseURLs(presentation, image string) BaseURLs {
	return BaseURLs{Presentation: presentation, Image: image}
}

func (b BaseURLs) manifestURI(itemID ID) URI {
	return URI(fmt.Sprintf("%s/%s/manifest", b.Presentation, itemID))
}

func (b BaseURLs) sequenceURI(itemID ID) URI {
	return URI(fmt.Sprintf("%s/%s/sequence/normal", b.Presentation, itemID))
}

func (b BaseURLs) canvasURI(itemID ID, index int) URI {
	return URI(fmt.Sprintf("%s/%s/canvas/%d", b.Presentation, itemID, index))
}

func (b BaseURLs) imageServiceURI(itemID ID) URI {
	return URI(fmt.Sprintf("%s/%s", b.Image, itemID))
}

func (b BaseURLs) imageAssetURI(itemID, imageID ID, format Format) URI {
	return URI(fmt.Sprintf("%s/%s/%s/full/full/default.%s", b.Image, itemID, imageID, format.Extension()))
}
