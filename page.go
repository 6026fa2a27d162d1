package main

// Links addresses the page's own URLs. The server and the static build
// reach the other theme variant and the stylesheet differently.
type Links interface {
	Toggle(current Theme) string
	Asset(name string) string
}

type serverLinks struct{}

// The toggle request carries the current theme plus the toggle event; the
// handler applies the flip.
func (serverLinks) Toggle(current Theme) string {
	return "/?theme=" + current.String() + "&toggle=1"
}

func (serverLinks) Asset(name string) string {
	return "/static/" + name
}

type staticLinks struct{}

func (staticLinks) Toggle(current Theme) string {
	return pageFile(current.Toggle())
}

func (staticLinks) Asset(name string) string {
	return "static/" + name
}

// pageFile is the static build's file name for a theme variant.
func pageFile(t Theme) string {
	if t == Light {
		return "light.html"
	}
	return "index.html"
}

// Page is the immutable view of one render.
type Page struct {
	Theme         Theme
	Palette       Palette
	Profile       Profile
	Skills        []Skill
	Projects      []Project
	ToggleURL     string
	StylesheetURL string
}

// Compose lays out content for one theme snapshot. Skills and projects keep
// their content order; nothing is filtered or sorted.
func Compose(c *Content, theme Theme, links Links) Page {
	return Page{
		Theme:         theme,
		Palette:       theme.Palette(),
		Profile:       c.Profile,
		Skills:        c.Skills,
		Projects:      c.Projects,
		ToggleURL:     links.Toggle(theme),
		StylesheetURL: links.Asset("site.css"),
	}
}
