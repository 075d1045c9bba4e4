// Package iiif models the subset of the IIIF Presentation API v2 this server
// emits: one Manifest owning one Sequence of Canvases, each Canvas carrying a
// single painting Annotation of an Image API resource. Constructors are pure;
// every URI is derived from BaseURLs plus identifiers at construction time.
package iiif

// Manifest is the root Presentation API document for one item.
type Manifest struct {
	Context     URI        `json:"@context"`
	ID          URI        `json:"@id"`
	Type        string     `json:"@type"`
	Label       string     `json:"label"`
	Metadata    []Metadata `json:"metadata"`
	Description string     `json:"description,omitempty"`
	Sequences   []Sequence `json:"sequences"`
}

func NewManifest(base BaseURLs, itemID ID, label string, metadata []Metadata, description string) *Manifest {
	return &Manifest{
		Context:     presentationContext,
		ID:          base.manifestURI(itemID),
		Type:        "sc:Manifest",
		Label:       label,
		Metadata:    metadata,
		Description: description,
		Sequences:   []Sequence{},
	}
}

func (m *Manifest) AddSequence(sequence Sequence) {
	m.Sequences = append(m.Sequences, sequence)
}

// Sequence is one reading order through an item's canvases. The assembler
// always produces exactly one, labeled "Normal".
type Sequence struct {
	Context  URI      `json:"@context"`
	ID       URI      `json:"@id"`
	Type     string   `json:"type"`
	Label    string   `json:"label"`
	Canvases []Canvas `json:"canvases"`
}

func NewSequence(base BaseURLs, itemID ID) Sequence {
	return Sequence{
		Context:  presentationContext,
		ID:       base.sequenceURI(itemID),
		Type:     "sc:Sequence",
		Label:    "Normal",
		Canvases: []Canvas{},
	}
}

func (s *Sequence) Add(canvas Canvas) {
	s.Canvases = append(s.Canvases, canvas)
}

// AddImage appends a canvas painting one classified image. The canvas id
// embeds the zero-based position the canvas receives in this sequence.
func (s *Sequence) AddImage(base BaseURLs, itemID, imageID ID, label string, format Format, width, height uint64) {
	canvas := NewCanvas(base, itemID, len(s.Canvases), label, width, height)
	resource := NewImageResource(base, itemID, imageID, format, width, height)
	canvas.AddImage(NewAnnotation(resource, canvas.ID))
	s.Canvases = append(s.Canvases, canvas)
}

// Canvas is one virtual page. The model allows several image annotations for
// forward compatibility; the assembler paints exactly one.
type Canvas struct {
	ID      URI          `json:"id"`
	Context URI          `json:"context"`
	Type    string       `json:"type"`
	Label   string       `json:"label"`
	Height  uint64       `json:"height"`
	Width   uint64       `json:"width"`
	Images  []Annotation `json:"images"`
}

func NewCanvas(base BaseURLs, itemID ID, index int, label string, width, height uint64) Canvas {
	return Canvas{
		ID:      base.canvasURI(itemID, index),
		Context: presentationContext,
		Type:    "sc:Canvas",
		Label:   label,
		Height:  height,
		Width:   width,
		Images:  []Annotation{},
	}
}

func (c *Canvas) AddImage(annotation Annotation) {
	c.Images = append(c.Images, annotation)
}

// Annotation binds an image resource onto its owning canvas.
type Annotation struct {
	Context    URI           `json:"context"`
	Type       string        `json:"type"`
	Motivation string        `json:"motivation"`
	Resource   ImageResource `json:"resource"`
	On         URI           `json:"on"`
}

func NewAnnotation(resource ImageResource, on URI) Annotation {
	return Annotation{
		Context:    presentationContext,
		Type:       "oa:Annotation",
		Motivation: "sc:painting",
		Resource:   resource,
		On:         on,
	}
}

// ImageResource describes the pixel-bearing asset behind a canvas.
type ImageResource struct {
	ID      URI     `json:"id"`
	Type    string  `json:"type"`
	Format  string  `json:"format"`
	Service Service `json:"service"`
	Width   uint64  `json:"width"`
	Height  uint64  `json:"height"`
}

func NewImageResource(base BaseURLs, itemID, imageID ID, format Format, width, height uint64) ImageResource {
	return ImageResource{
		ID:      base.imageAssetURI(itemID, imageID, format),
		Type:    "dctypes:Image",
		Format:  format.MediaType(),
		Service: newImageService(base, itemID),
		Width:   width,
		Height:  height,
	}
}

// Service is the Image API endpoint descriptor embedded in each resource.
// Its id is keyed by the item identifier, not the per-image identifier: all
// images of an item share one logical image service.
type Service struct {
	Context  URI `json:"context"`
	ID       URI `json:"id"`
	Profile  URI `json:"profile"`
	Protocol URI `json:"protocol"`
}

func newImageService(base BaseURLs, itemID ID) Service {
	return Service{
		Context:  imageContext,
		ID:       base.imageServiceURI(itemID),
		Profile:  imageProfile,
		Protocol: imageProtocol,
	}
}
