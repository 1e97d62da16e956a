package measure

import (
	"github.com/UcdVrLab/Visualisation-of-the-aqueducts-of-the-Greater-Iraklio-Area/pkg/geometry"
)

// Point is a plain data-backed Marker. The rendering layer reads the
// position and visibility each frame and draws it however it likes.
type Point struct {
	role    Role
	pos     geometry.Vector3
	visible bool
}

// Role returns the slot this point was created for.
func (p *Point) Role() Role { return p.role }

func (p *Point) SetPosition(pos geometry.Vector3) { p.pos = pos }

func (p *Point) Position() geometry.Vector3 { return p.pos }

func (p *Point) SetVisible(v bool) { p.visible = v }

func (p *Point) Visible() bool { return p.visible }

// Segment connects two points. It is drawn only while both endpoints are
// placed and the segment itself is visible.
type Segment struct {
	A, B    Marker
	visible bool
}

func (s *Segment) SetVisible(v bool) { s.visible = v }

func (s *Segment) Visible() bool { return s.visible }

// Drawable reports whether the segment should appear on screen right now.
func (s *Segment) Drawable() bool {
	return s.visible && s.A.Visible() && s.B.Visible()
}

// Shapes is the Factory both viewers use. It keeps every created point and
// segment so the render loop can iterate them without knowing about roles.
type Shapes struct {
	Points   map[Role]*Point
	Segments []*Segment
}

// NewShapes creates an empty shape store
func NewShapes() *Shapes {
	return &Shapes{Points: make(map[Role]*Point)}
}

func (s *Shapes) NewMarker(role Role) Marker {
	p := &Point{role: role}
	s.Points[role] = p
	return p
}

func (s *Shapes) NewLine(a, b Marker) Line {
	seg := &Segment{A: a, B: b}
	s.Segments = append(s.Segments, seg)
	return seg
}
