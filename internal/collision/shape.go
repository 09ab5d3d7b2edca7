package collision

import rl "github.com/gen2brain/raylib-go/raylib"

// ShapeKind discriminates the collision volume union.
type ShapeKind int

const (
	KindSphere ShapeKind = iota
	KindBox
)

func (k ShapeKind) String() string {
	switch k {
	case KindSphere:
		return "Sphere"
	case KindBox:
		return "Box"
	default:
		return "Unknown"
	}
}

// Shape is a collision volume. Position is the volume's center. Boxes use
// Extents (half-widths per axis) and the Block flag; spheres use Radius.
// Block marks whether the volume should stop movement, as opposed to a
// trigger volume that only registers hits.
type Shape struct {
	Kind     ShapeKind
	Position rl.Vector3
	Extents  rl.Vector3
	Radius   float32
	Block    bool
}

func NewSphere(position rl.Vector3, radius float32) Shape {
	return Shape{Kind: KindSphere, Position: position, Radius: radius}
}

func NewBox(position, extents rl.Vector3, block bool) Shape {
	return Shape{Kind: KindBox, Position: position, Extents: extents, Block: block}
}

// Min returns the box corner with the smallest coordinates. Only meaningful
// for KindBox.
func (s Shape) Min() rl.Vector3 {
	return rl.Vector3Subtract(s.Position, s.Extents)
}

// Max returns the box corner with the largest coordinates. Only meaningful
// for KindBox.
func (s Shape) Max() rl.Vector3 {
	return rl.Vector3Add(s.Position, s.Extents)
}
