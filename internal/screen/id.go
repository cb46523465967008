package screen

import "strings"

// ID selects a screen. Menu item k (1-based) opens ID(k), so the order of
// these constants must match the menu.
type ID int

const (
	Menu ID = iota
	Table
	Graphic
	Equation
	Integrals
	Animation
	Author
	Exit
)

// Count is the number of displayable screens (Exit is not one).
const Count = int(Exit)

var idNames = [...]string{
	Menu:      "menu",
	Table:     "table",
	Graphic:   "graphic",
	Equation:  "equation",
	Integrals: "integrals",
	Animation: "animation",
	Author:    "author",
	Exit:      "exit",
}

func (id ID) String() string {
	if id < 0 || int(id) >= len(idNames) {
		return "unknown"
	}
	return idNames[id]
}

// Valid reports whether id names a displayable screen.
func (id ID) Valid() bool {
	return id >= Menu && id < Exit
}

// Names returns the names of the displayable screens in ID order.
func Names() []string {
	out := make([]string, Count)
	copy(out, idNames[:Count])
	return out
}

// Parse resolves an exact, case-insensitive screen name.
func Parse(name string) (ID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range idNames {
		if n == name {
			return ID(i), true
		}
	}
	return Menu, false
}
