package main

import (
	"encoding/json"
	"log"
	"net/http"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Category string

const (
	CategoryML       Category = "ml"
	CategoryNLP      Category = "nlp"
	CategoryData     Category = "data"
	CategoryAgent    Category = "agent"
	CategoryEmbedded Category = "embedded"
)

// FilterAll matches every category.
const FilterAll = "all"

// Categories lists the filter controls in display order.
var Categories = []struct {
	Filter string
	Label  string
}{
	{FilterAll, "All"},
	{string(CategoryML), "ML / DL"},
	{string(CategoryNLP), "NLP"},
	{string(CategoryData), "Data"},
	{string(CategoryAgent), "Agents"},
	{string(CategoryEmbedded), "Embedded"},
}

func (c Category) Valid() bool {
	switch c {
	case CategoryML, CategoryNLP, CategoryData, CategoryAgent, CategoryEmbedded:
		return true
	}
	return false
}

type Project struct {
	Icon     string   `json:"icon"`
	Title    string   `json:"title"`
	Desc     string   `json:"desc"`
	Tags     []string `json:"tags"`
	Category Category `json:"category"`
	Stars    int      `json:"stars"`
	URL      string   `json:"url"`
}

// Slug is the repository name at the end of the project URL.
func (p Project) Slug() string {
	return path.Base(p.URL)
}

// Matches reports whether the card stays visible under filter.
func (p Project) Matches(filter string) bool {
	return filter == FilterAll || string(p.Category) == filter
}

func cardID(i int) string {
	return "proj-" + strconv.Itoa(i)
}

// Card is a project as rendered in the grid.
type Card struct {
	Project
	ID     string
	Hidden bool
}

// Catalog renders the static project list.
type Catalog struct {
	projects []Project
}

func NewCatalog(projects []Project) *Catalog {
	return &Catalog{projects: projects}
}

func (c *Catalog) Projects() []Project {
	return c.projects
}

// Cards returns one card per project in list order, hiding the ones that
// do not match filter.
func (c *Catalog) Cards(filter string) []Card {
	cards := make([]Card, len(c.projects))
	for i, p := range c.projects {
		cards[i] = Card{Project: p, ID: cardID(i), Hidden: !p.Matches(filter)}
	}
	return cards
}

// CardIDs returns the element ids of every rendered card.
func (c *Catalog) CardIDs() []string {
	ids := make([]string, len(c.projects))
	for i := range c.projects {
		ids[i] = cardID(i)
	}
	return ids
}

// BySlug finds a project by its repository name.
func (c *Catalog) BySlug(slug string) (Project, bool) {
	for _, p := range c.projects {
		if p.Slug() == slug {
			return p, true
		}
	}
	return Project{}, false
}

// FilterBar tracks the active filter control for one page.
type FilterBar struct {
	catalog *Catalog
	active  string
}

func NewFilterBar(c *Catalog) *FilterBar {
	return &FilterBar{catalog: c, active: FilterAll}
}

func (f *FilterBar) Active() string { return f.active }

// Activate makes filter the sole active control and re-evaluates the
// visibility of every card. Cards are never added or removed.
func (f *FilterBar) Activate(filter string) []Patch {
	f.active = filter

	var patches []Patch
	for _, cat := range Categories {
		patches = append(patches, classPatch(`.filter-btn[data-filter="`+cat.Filter+`"]`, "active", cat.Filter == filter))
	}
	for _, card := range f.catalog.Cards(filter) {
		patches = append(patches, classPatch("#"+card.ID, "hidden", card.Hidden))
	}
	return patches
}

type projectHandler struct {
	catalog *Catalog
}

// section serves the filter controls when the page has no session. htmx
// gets the same patches a session would send, carried in an HX-Trigger
// header, so the existing cards are toggled in place. Other clients get
// the rendered fragment.
func (h *projectHandler) section(c *gin.Context) {
	filter := c.DefaultQuery("filter", FilterAll)
	if c.GetHeader("HX-Request") == "true" {
		trigger, err := json.Marshal(map[string]any{
			"applyPatches": gin.H{"patches": NewFilterBar(h.catalog).Activate(filter)},
		})
		if err != nil {
			log.Printf("projects: encode trigger: %v", err)
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Header("HX-Trigger", string(trigger))
		c.Status(http.StatusNoContent)
		return
	}
	c.HTML(http.StatusOK, "projects.html", gin.H{
		"filters": Categories,
		"active":  filter,
		"cards":   h.catalog.Cards(filter),
	})
}

func (h *projectHandler) list(c *gin.Context) {
	category := c.DefaultQuery("category", FilterAll)
	if category != FilterAll && !Category(category).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category " + strconv.Quote(category)})
		return
	}

	projects := []Project{}
	for _, p := range h.catalog.Projects() {
		if p.Matches(category) {
			projects = append(projects, p)
		}
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects, "count": len(projects)})
}
