package render

import rl "github.com/gen2brain/raylib-go/raylib"

type segment struct {
	from, to rl.Vector3
	color    rl.Color
}

// DebugLines buffers line segments queued during the simulation tick and
// draws them in one pass. Flush must run between rl.BeginMode3D and
// rl.EndMode3D.
type DebugLines struct {
	segments []segment
}

func NewDebugLines() *DebugLines {
	return &DebugLines{
		segments: make([]segment, 0, 256),
	}
}

func (d *DebugLines) AddLine(from, to rl.Vector3, color rl.Color) {
	d.segments = append(d.segments, segment{from: from, to: to, color: color})
}

func (d *DebugLines) Len() int {
	return len(d.segments)
}

// Flush draws and drops every queued segment.
func (d *DebugLines) Flush() {
	for _, s := range d.segments {
		rl.DrawLine3D(s.from, s.to, s.color)
	}
	d.segments = d.segments[:0]
}
