package collision

import rl "github.com/gen2brain/raylib-go/raylib"

// LineRenderer receives debug wireframe segments. render.DebugLines
// satisfies it; tests use a recording stub.
type LineRenderer interface {
	AddLine(from, to rl.Vector3, color rl.Color)
}

var wireColor = rl.Yellow

// DebugDraw emits a 12-edge wireframe for every box volume to the line
// renderer. Purely observational; sphere volumes are skipped.
func (m *Manager) DebugDraw(lines LineRenderer) {
	m.volumes.Each(func(_ Handle, shape Shape) bool {
		switch shape.Kind {
		case KindSphere:

		case KindBox:
			drawBoxWire(lines, shape)
		}
		return true
	})
}

func drawBoxWire(lines LineRenderer, box Shape) {
	p := box.Position
	e := box.Extents

	// Top face corners, then the same four shifted down.
	c0 := rl.Vector3Add(p, rl.Vector3{X: -e.X, Y: e.Y, Z: e.Z})
	c1 := rl.Vector3Add(p, rl.Vector3{X: e.X, Y: e.Y, Z: e.Z})
	c2 := rl.Vector3Add(p, rl.Vector3{X: e.X, Y: -e.Y, Z: e.Z})
	c3 := rl.Vector3Add(p, rl.Vector3{X: -e.X, Y: -e.Y, Z: e.Z})
	c4 := rl.Vector3Add(p, rl.Vector3{X: -e.X, Y: e.Y, Z: -e.Z})
	c5 := rl.Vector3Add(p, rl.Vector3{X: e.X, Y: e.Y, Z: -e.Z})
	c6 := rl.Vector3Add(p, rl.Vector3{X: e.X, Y: -e.Y, Z: -e.Z})
	c7 := rl.Vector3Add(p, rl.Vector3{X: -e.X, Y: -e.Y, Z: -e.Z})

	lines.AddLine(c0, c1, wireColor)
	lines.AddLine(c1, c2, wireColor)
	lines.AddLine(c2, c3, wireColor)
	lines.AddLine(c3, c0, wireColor)

	lines.AddLine(c4, c5, wireColor)
	lines.AddLine(c5, c6, wireColor)
	lines.AddLine(c6, c7, wireColor)
	lines.AddLine(c7, c4, wireColor)

	lines.AddLine(c0, c4, wireColor)
	lines.AddLine(c1, c5, wireColor)
	lines.AddLine(c2, c6, wireColor)
	lines.AddLine(c3, c7, wireColor)
}
