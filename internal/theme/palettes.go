package theme

// Palette defines the base colors for the site
type Palette struct {
	Name      string // "bushtechs", "slate", etc.
	Primary   string // hex color #RRGGBB
	Secondary string // hex color #RRGGBB
}

// GetPalette returns a palette by name
func GetPalette(name string) *Palette {
	palettes := map[string]*Palette{
		"bushtechs": {
			Name:      "bushtechs",
			Primary:   "#6a00ff",
			Secondary: "#facc15",
		},
		"slate": {
			Name:      "slate",
			Primary:   "#64748b",
			Secondary: "#0f172a",
		},
		"indigo": {
			Name:      "indigo",
			Primary:   "#4f46e5",
			Secondary: "#f97316",
		},
		"emerald": {
			Name:      "emerald",
			Primary:   "#059669",
			Secondary: "#f59e0b",
		},
		"teal": {
			Name:      "teal",
			Primary:   "#14b8a6",
			Secondary: "#f87171",
		},
	}

	return palettes[name]
}

// ListPalettes returns all available palettes in order
func ListPalettes() []*Palette {
	names := []string{"bushtechs", "slate", "indigo", "emerald", "teal"}
	var palettes []*Palette
	for _, name := range names {
		if p := GetPalette(name); p != nil {
			palettes = append(palettes, p)
		}
	}
	return palettes
}
