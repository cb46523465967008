package canvas

// ColorTag marks a cell as a colour directive instead of a glyph.
type ColorTag uint8

const (
	TagNone ColorTag = iota
	TagAccentA
	TagAccentB
	TagReset
)

// String reports the tag name used in trace output.
func (t ColorTag) String() string {
	switch t {
	case TagAccentA:
		return "accent-a"
	case TagAccentB:
		return "accent-b"
	case TagReset:
		return "reset"
	default:
		return "none"
	}
}

// Colour prefixes emitted ahead of a tagged cell.
const (
	accentAPrefix = "\x1b[32m"
	accentBPrefix = "\x1b[35m"
	resetPrefix   = "\x1b[0m"
)

func (t ColorTag) prefix() string {
	switch t {
	case TagAccentA:
		return accentAPrefix
	case TagAccentB:
		return accentBPrefix
	case TagReset:
		return resetPrefix
	default:
		return ""
	}
}

// Cell is a single grid position. A tagged cell renders as its colour
// prefix followed by one space and its glyph is ignored.
type Cell struct {
	Glyph rune
	Tag   ColorTag
	// Cont marks the right half of a double-width glyph.
	Cont bool
}

// Glyph returns a plain character cell.
func Glyph(r rune) Cell {
	return Cell{Glyph: r}
}

// Tagged returns a colour directive cell.
func Tagged(tag ColorTag) Cell {
	return Cell{Tag: tag}
}

// IsBlank reports whether the cell paints as empty space.
func (c Cell) IsBlank() bool {
	return c.Tag == TagNone && !c.Cont && (c.Glyph == 0 || c.Glyph == ' ')
}
