package main

import (
	"fmt"
	"html/template"

	"gopkg.in/yaml.v3"
)

// IconKind names a glyph. Content refers to icons by kind only; the SVG
// markup is chosen when a tile is rendered.
type IconKind int

const (
	IconCode IconKind = iota + 1
	IconDatabase
	IconServer
	IconTerminal
	IconLayout
	IconPalette
	IconGitBranch
	IconGlobe
	IconBox
	IconMonitor
	IconGithub
	IconLinkedin
	IconMail
	IconSun
	IconMoon
)

var iconNames = map[IconKind]string{
	IconCode:      "code",
	IconDatabase:  "database",
	IconServer:    "server",
	IconTerminal:  "terminal",
	IconLayout:    "layout",
	IconPalette:   "palette",
	IconGitBranch: "git-branch",
	IconGlobe:     "globe",
	IconBox:       "box",
	IconMonitor:   "monitor",
	IconGithub:    "github",
	IconLinkedin:  "linkedin",
	IconMail:      "mail",
	IconSun:       "sun",
	IconMoon:      "moon",
}

// Inner SVG markup, 24x24 stroke glyphs.
var iconPaths = map[IconKind]string{
	IconCode:      `<polyline points="16 18 22 12 16 6"/><polyline points="8 6 2 12 8 18"/>`,
	IconDatabase:  `<ellipse cx="12" cy="5" rx="9" ry="3"/><path d="M3 5V19A9 3 0 0 0 21 19V5"/><path d="M3 12A9 3 0 0 0 21 12"/>`,
	IconServer:    `<rect width="20" height="8" x="2" y="2" rx="2" ry="2"/><rect width="20" height="8" x="2" y="14" rx="2" ry="2"/><line x1="6" x2="6.01" y1="6" y2="6"/><line x1="6" x2="6.01" y1="18" y2="18"/>`,
	IconTerminal:  `<polyline points="4 17 10 11 4 5"/><line x1="12" x2="20" y1="19" y2="19"/>`,
	IconLayout:    `<rect width="18" height="18" x="3" y="3" rx="2" ry="2"/><line x1="3" x2="21" y1="9" y2="9"/><line x1="9" x2="9" y1="21" y2="9"/>`,
	IconPalette:   `<circle cx="13.5" cy="6.5" r=".5"/><circle cx="17.5" cy="10.5" r=".5"/><circle cx="8.5" cy="7.5" r=".5"/><circle cx="6.5" cy="12.5" r=".5"/><path d="M12 2C6.5 2 2 6.5 2 12s4.5 10 10 10c.926 0 1.648-.746 1.648-1.688 0-.437-.18-.835-.437-1.125-.29-.289-.438-.652-.438-1.125a1.64 1.64 0 0 1 1.668-1.668h1.996c3.051 0 5.555-2.503 5.555-5.554C21.965 6.012 17.461 2 12 2z"/>`,
	IconGitBranch: `<line x1="6" x2="6" y1="3" y2="15"/><circle cx="18" cy="6" r="3"/><circle cx="6" cy="18" r="3"/><path d="M18 9a9 9 0 0 1-9 9"/>`,
	IconGlobe:     `<circle cx="12" cy="12" r="10"/><path d="M12 2a14.5 14.5 0 0 0 0 20 14.5 14.5 0 0 0 0-20"/><path d="M2 12h20"/>`,
	IconBox:       `<path d="M21 8a2 2 0 0 0-1-1.73l-7-4a2 2 0 0 0-2 0l-7 4A2 2 0 0 0 3 8v8a2 2 0 0 0 1 1.73l7 4a2 2 0 0 0 2 0l7-4A2 2 0 0 0 21 16Z"/><path d="m3.3 7 8.7 5 8.7-5"/><path d="M12 22V12"/>`,
	IconMonitor:   `<rect width="20" height="14" x="2" y="3" rx="2"/><line x1="8" x2="16" y1="21" y2="21"/><line x1="12" x2="12" y1="17" y2="21"/>`,
	IconGithub:    `<path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.403 5.403 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"/><path d="M9 18c-4.51 2-5-2-7-2"/>`,
	IconLinkedin:  `<path d="M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-2-2 2 2 0 0 0-2 2v7h-4v-7a6 6 0 0 1 6-6z"/><rect width="4" height="12" x="2" y="9"/><circle cx="4" cy="4" r="2"/>`,
	IconMail:      `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	IconSun:       `<circle cx="12" cy="12" r="4"/><path d="M12 2v2"/><path d="M12 20v2"/><path d="m4.93 4.93 1.41 1.41"/><path d="m17.66 17.66 1.41 1.41"/><path d="M2 12h2"/><path d="M20 12h2"/><path d="m6.34 17.66-1.41 1.41"/><path d="m19.07 4.93-1.41 1.41"/>`,
	IconMoon:      `<path d="M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9Z"/>`,
}

func (k IconKind) String() string {
	if name, ok := iconNames[k]; ok {
		return name
	}
	return fmt.Sprintf("icon(%d)", int(k))
}

// ParseIconKind resolves a content file icon name.
func ParseIconKind(name string) (IconKind, error) {
	for kind, n := range iconNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown icon %q", name)
}

func (k *IconKind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	kind, err := ParseIconKind(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = kind
	return nil
}

func (k IconKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// iconSVG renders the glyph for kind. Unknown kinds render nothing.
func iconSVG(kind IconKind, class string) template.HTML {
	paths, ok := iconPaths[kind]
	if !ok {
		return ""
	}
	return template.HTML(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" class="%s" data-icon="%s" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">%s</svg>`,
		template.HTMLEscapeString(class), kind, paths,
	))
}
