package shape

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"caddraw/internal/caderr"
	"caddraw/internal/dictval"
)

// Decoder builds a geometry payload from the geometry fields of a dict. id is
// only used to label validation failures.
type Decoder func(d Dict, id string) (Geometry, error)

// Factory builds shapes from dicts using an explicit decoder table.
type Factory struct {
	decoders map[Kind]Decoder
}

// NewFactory copies decoders; later changes to the map are not seen.
func NewFactory(decoders map[Kind]Decoder) *Factory {
	return &Factory{decoders: maps.Clone(decoders)}
}

// DefaultFactory knows rectangles and circles.
func DefaultFactory() *Factory {
	return NewFactory(map[Kind]Decoder{
		KindRectangle: DecodeRect,
		KindCircle:    DecodeCircle,
	})
}

// SupportedKinds lists registered kinds in declaration order.
func (f *Factory) SupportedKinds() []Kind {
	kinds := slices.Collect(maps.Keys(f.decoders))
	slices.Sort(kinds)
	return kinds
}

func (f *Factory) Supports(k Kind) bool {
	_, ok := f.decoders[k]
	return ok
}

func (f *Factory) decoder(k Kind, typeName, id string) (Decoder, error) {
	dec, ok := f.decoders[k]
	if !ok {
		return nil, caderr.Invalid(typeName, "type", id, "unsupported shape type: %s", typeName)
	}
	return dec, nil
}

// FromDict decodes one shape. Every failure is a *caderr.ValidationError
// carrying the kind and the id found in d.
func (f *Factory) FromDict(d Dict) (Shape, error) {
	id, err := dictval.String(d, "id")
	if err != nil {
		kind, _ := dictval.String(d, "type")
		if kind == "" {
			kind = "UNKNOWN"
		}
		return Shape{}, &caderr.ValidationError{ShapeKind: strings.ToUpper(kind), Field: "id",
			Message: fmt.Sprintf("invalid id: %v", err), Err: err}
	}
	typeName, err := dictval.String(d, "type")
	if err != nil || typeName == "" {
		return Shape{}, caderr.Invalid("UNKNOWN", "type", id, "invalid or missing shape type")
	}
	kind, err := ParseKind(typeName)
	if err != nil {
		return Shape{}, caderr.Invalid(typeName, "type", id, "unsupported shape type: %s", typeName)
	}
	dec, err := f.decoder(kind, kind.String(), id)
	if err != nil {
		return Shape{}, err
	}
	g, err := dec(d, id)
	if err != nil {
		return Shape{}, err
	}
	layer, opts, err := envelope(d, kind, id)
	if err != nil {
		return Shape{}, err
	}
	return New(g, layer, opts...)
}

// Create builds a shape of kind k from geometry params, such as
// {"cx": 0, "cy": 0, "radius": 5}.
func (f *Factory) Create(k Kind, layerID string, params Dict, opts ...Option) (Shape, error) {
	dec, err := f.decoder(k, k.String(), "")
	if err != nil {
		return Shape{}, err
	}
	g, err := dec(params, "")
	if err != nil {
		return Shape{}, err
	}
	return New(g, layerID, opts...)
}

// FromDict decodes with the default factory.
func FromDict(d Dict) (Shape, error) {
	return DefaultFactory().FromDict(d)
}

func (f *Factory) String() string {
	return fmt.Sprintf("Factory%v", f.SupportedKinds())
}
