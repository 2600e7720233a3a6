package paint

// Stats aggregates what one frame asked the tessellator to do.
type Stats struct {
	Cmds      int
	Lines     int
	Rects     int
	Texts     int
	Meshes    int
	Debug     int
	// Triangles is an estimate: two per rect and line, two per text
	// glyph, exact for meshes.
	Triangles int
}

func StatsFrom(cmds []ClippedCmd) Stats {
	var s Stats
	s.Cmds = len(cmds)
	for _, c := range cmds {
		switch c := c.Cmd.(type) {
		case LineCmd:
			s.Lines++
			s.Triangles += 2
		case RectCmd:
			s.Rects++
			s.Triangles += 2
		case TextCmd:
			s.Texts++
			s.Triangles += 2 * len(c.Text)
		case TrianglesCmd:
			s.Meshes++
			s.Triangles += len(c.Indices) / 3
		case DebugCmd:
			s.Debug++
			s.Triangles += 2 + 2*len(c.Text)
		}
	}
	return s
}
