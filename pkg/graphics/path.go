package graphics

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo PathOp = iota // Start new subpath at a point
	PathOpLineTo               // Draw line to a point
	PathOpClose                // Close subpath with line to start point
)

// PathCommand is a single path operation with its target point.
type PathCommand struct {
	Op    PathOp
	Point Offset
}

// Path is a sequence of straight-line subpaths.
type Path struct {
	Commands []PathCommand
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Point: Offset{X: x, Y: y}})
}

// LineTo adds a straight segment.
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Point: Offset{X: x, Y: y}})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// Translate returns a copy of the path moved by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	out := &Path{Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		cmd.Point = Offset{X: cmd.Point.X + dx, Y: cmd.Point.Y + dy}
		out.Commands[i] = cmd
	}
	return out
}

func (p *Path) clone() *Path {
	if p == nil {
		return nil
	}
	cmds := make([]PathCommand, len(p.Commands))
	copy(cmds, p.Commands)
	return &Path{Commands: cmds}
}
