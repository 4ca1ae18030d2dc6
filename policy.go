package main

// wallKind selects how a wall interacts with the beam.
type wallKind int

const (
	// kindMirror reflects the beam about the wall normal.
	kindMirror wallKind = iota
	// kindAbsorbing terminates the beam at the hit point.
	kindAbsorbing
	// kindTransparent lets the beam continue through unchanged.
	kindTransparent
)

// next advances the kind in the fixed cycle Mirror -> Absorbing ->
// Transparent -> Mirror used by left-clicking a wall.
func (k wallKind) next() wallKind {
	switch k {
	case kindMirror:
		return kindAbsorbing
	case kindAbsorbing:
		return kindTransparent
	default:
		return kindMirror
	}
}

func (k wallKind) String() string {
	switch k {
	case kindMirror:
		return "mirror"
	case kindAbsorbing:
		return "absorbing"
	case kindTransparent:
		return "transparent"
	}
	return "unknown"
}
