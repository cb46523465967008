package screen

// DefaultCredits is shown when no credits are configured.
var DefaultCredits = []string{
	`/ \ / \ / \ / \ / \ / \ / \ / \ / \ / \ / \ / \`,
	"  Numeric methods on a terminal canvas         ",
	"  Tabulation, plotting, root finding           ",
	"  and numeric integration                      ",
	"                                               ",
	"  Press ESC to return to the menu              ",
	`\ / \ / \ / \ / \ / \ / \ / \ / \ / \ / \ / \ /`,
}

// AuthorScreen shows static credits.
type AuthorScreen struct {
	Base
	credits []string
}

func NewAuthor(credits []string) *AuthorScreen {
	if len(credits) == 0 {
		credits = DefaultCredits
	}
	a := &AuthorScreen{credits: append([]string(nil), credits...)}
	a.Base = newBase(Author, Capabilities{}, func() []string { return a.credits })
	return a
}
