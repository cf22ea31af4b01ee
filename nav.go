package main

import "strconv"

const (
	navScrolledAt  = 40
	navLookahead   = 100
	backToTopAfter = 400
)

// SectionOffset is the top offset of a page section carrying an id.
type SectionOffset struct {
	ID  string  `json:"id"`
	Top float64 `json:"top"`
}

// ActiveSection returns the id of the last section, in document order,
// whose top is at or above y plus the lookahead. It returns "" when no
// section qualifies.
func ActiveSection(y float64, sections []SectionOffset) string {
	current := ""
	for _, s := range sections {
		if y >= s.Top-navLookahead {
			current = s.ID
		}
	}
	return current
}

// NavController keeps the navbar in sync with the scroll position.
type NavController struct {
	links []string
}

// NewNavController takes the section ids that have a nav link.
func NewNavController(links []string) *NavController {
	return &NavController{links: links}
}

func (n *NavController) Scroll(y float64, sections []SectionOffset) []Patch {
	patches := []Patch{classPatch("#navbar", "scrolled", y > navScrolledAt)}
	active := ActiveSection(y, sections)
	for _, id := range n.links {
		patches = append(patches, classPatch(navLinkSelector(id), "active", id == active))
	}
	return patches
}

func navLinkSelector(id string) string {
	return `#navLinks .nav-link[href="#` + id + `"]`
}

// Menu is the mobile navigation toggle.
type Menu struct {
	open bool
}

func (m *Menu) Open() bool { return m.open }

func (m *Menu) Toggle() []Patch {
	m.open = !m.open
	return m.patches()
}

// LinkClicked closes the menu.
func (m *Menu) LinkClicked() []Patch {
	m.open = false
	return m.patches()
}

func (m *Menu) patches() []Patch {
	return []Patch{
		classPatch("#navLinks", "open", m.open),
		classPatch("#hamburger", "open", m.open),
		attrPatch("#hamburger", "aria-expanded", strconv.FormatBool(m.open)),
	}
}

// BackToTop shows the floating control once the page is scrolled far enough.
type BackToTop struct{}

func (BackToTop) Scroll(y float64) Patch {
	return classPatch("#backTop", "visible", y > backToTopAfter)
}

func (BackToTop) Click() Patch {
	return Patch{Op: "scroll", Top: 0, Smooth: true}
}
