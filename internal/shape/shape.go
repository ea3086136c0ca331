// Package shape defines drawable shapes: an envelope of common attributes
// around a closed set of geometry payloads.
package shape

import (
	"maps"
	"reflect"

	"github.com/google/uuid"

	"caddraw/internal/caderr"
	"caddraw/internal/geom"
	"caddraw/internal/style"
)

// Shape is an immutable drawable. Its geometry is fixed at construction and
// WithTransform is the only way to derive a changed shape.
type Shape struct {
	id        string
	layerID   string
	groupID   string
	visible   bool
	locked    bool
	style     style.Style
	transform geom.Transform
	metadata  map[string]any
	geometry  Geometry
}

// Option configures a shape under construction.
type Option func(*Shape)

// WithID sets an explicit id instead of a generated one.
func WithID(id string) Option { return func(s *Shape) { s.id = id } }

func WithGroup(groupID string) Option { return func(s *Shape) { s.groupID = groupID } }

func WithStyle(st style.Style) Option { return func(s *Shape) { s.style = st } }

// WithInitialTransform places the shape with t from the start.
func WithInitialTransform(t geom.Transform) Option { return func(s *Shape) { s.transform = t } }

func WithVisible(v bool) Option { return func(s *Shape) { s.visible = v } }

func WithLocked(v bool) Option { return func(s *Shape) { s.locked = v } }

// WithMetadata copies md into the shape.
func WithMetadata(md map[string]any) Option {
	return func(s *Shape) { s.metadata = maps.Clone(md) }
}

// New validates g and the envelope and returns the shape. Failures are
// *caderr.ValidationError.
func New(g Geometry, layerID string, opts ...Option) (Shape, error) {
	s := Shape{
		layerID:   layerID,
		visible:   true,
		style:     style.Default(),
		transform: geom.Identity(),
		geometry:  g,
	}
	for _, o := range opts {
		o(&s)
	}
	if err := validateGeometry(g, s.id); err != nil {
		return Shape{}, err
	}
	if s.layerID == "" {
		return Shape{}, caderr.Invalid(g.Kind().String(), "layer_id", s.id, "layer_id cannot be empty")
	}
	if err := s.style.Validate(); err != nil {
		return Shape{}, &caderr.ValidationError{ShapeKind: g.Kind().String(), Field: "style", ShapeID: s.id, Message: err.Error(), Err: err}
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	if s.metadata == nil {
		s.metadata = map[string]any{}
	}
	return s, nil
}

func NewRectangle(r Rect, layerID string, opts ...Option) (Shape, error) {
	return New(r, layerID, opts...)
}

func NewCircle(c Circle, layerID string, opts ...Option) (Shape, error) {
	return New(c, layerID, opts...)
}

func (s Shape) ID() string      { return s.id }
func (s Shape) LayerID() string { return s.layerID }

// Kind is 0 for the zero Shape.
func (s Shape) Kind() Kind {
	if s.geometry == nil {
		return 0
	}
	return s.geometry.Kind()
}

// GroupID is empty when the shape belongs to no group.
func (s Shape) GroupID() string           { return s.groupID }
func (s Shape) Visible() bool             { return s.visible }
func (s Shape) Locked() bool              { return s.locked }
func (s Shape) Style() style.Style        { return s.style }
func (s Shape) Transform() geom.Transform { return s.transform }
func (s Shape) Geometry() Geometry        { return s.geometry }
func (s Shape) Metadata() map[string]any  { return maps.Clone(s.metadata) }

// IsZero reports whether s is the zero Shape rather than a constructed one.
func (s Shape) IsZero() bool { return s.geometry == nil }

func (s Shape) Rect() (Rect, bool) {
	r, ok := s.geometry.(Rect)
	return r, ok
}

func (s Shape) Circle() (Circle, bool) {
	c, ok := s.geometry.(Circle)
	return c, ok
}

// WithTransform returns a copy whose transform is s.Transform().Compose(t).
// The id, geometry and every other attribute are unchanged.
func (s Shape) WithTransform(t geom.Transform) Shape {
	out := s
	out.transform = s.transform.Compose(t)
	out.metadata = maps.Clone(s.metadata)
	return out
}

// WithVisibility returns a copy with the visible flag set.
func (s Shape) WithVisibility(v bool) Shape {
	out := s
	out.visible = v
	out.metadata = maps.Clone(s.metadata)
	return out
}

// Bounds is the axis-aligned box of the transformed geometry.
func (s Shape) Bounds() geom.Bounds { return s.BoundsWith(BoundsExact) }

func (s Shape) BoundsWith(mode BoundsMode) geom.Bounds {
	if s.geometry == nil {
		return geom.Bounds{}
	}
	return geometryBounds(s.geometry, s.transform, mode)
}

// ContainsPoint tests p in drawing coordinates against the filled shape.
// A shape with a singular transform contains nothing.
func (s Shape) ContainsPoint(p geom.Point) bool {
	if s.geometry == nil {
		return false
	}
	inv, err := s.transform.Inverse()
	if err != nil {
		return false
	}
	return containsLocal(s.geometry, inv.Apply(p))
}

// Outline returns the transformed boundary as a closed ring; curved parts use
// roughly segments points per full turn.
func (s Shape) Outline(segments int) []geom.Point {
	if s.geometry == nil {
		return nil
	}
	return s.transform.ApplyAll(outlineLocal(s.geometry, segments))
}

// Equal compares every attribute; transforms use approximate equality.
func (s Shape) Equal(o Shape) bool {
	return s.id == o.id &&
		s.layerID == o.layerID &&
		s.groupID == o.groupID &&
		s.visible == o.visible &&
		s.locked == o.locked &&
		s.style == o.style &&
		s.geometry == o.geometry &&
		s.transform.Equal(o.transform) &&
		reflect.DeepEqual(s.metadata, o.metadata)
}
