package theme

// Colors represents all generated colors for a rendered page
type Colors struct {
	Primary         string // Main brand color
	PrimaryContrast string // Text color on primary backgrounds
	Secondary       string // Accent/highlight color
	Background      string // Page background
	Surface         string // Card/container background
	Text            string // Main text color
	TextMuted       string // Secondary/muted text
	Border          string // Border/divider color
	Success         string // Success state color
	Error           string // Error state color
	Warning         string // Warning state color
}

// GenerateColors generates the full color set from a palette for a mode
func GenerateColors(palette *Palette, mode Mode) *Colors {
	if mode == Dark {
		return generateDarkColors(palette)
	}
	return generateLightColors(palette)
}

// generateLightColors creates colors for light mode
func generateLightColors(palette *Palette) *Colors {
	return &Colors{
		Primary:         palette.Primary,
		PrimaryContrast: "#ffffff",
		Secondary:       palette.Secondary,
		Background:      "#ffffff",
		Surface:         "#f9fafb",
		Text:            "#111111",
		TextMuted:       "#6b7280",
		Border:          "#e5e7eb",
		Success:         "#22c55e",
		Error:           "#ef4444",
		Warning:         "#f59e0b",
	}
}

// generateDarkColors creates colors for dark mode
func generateDarkColors(palette *Palette) *Colors {
	return &Colors{
		Primary:         palette.Primary,
		PrimaryContrast: "#ffffff",
		Secondary:       palette.Secondary,
		Background:      "#121212",
		Surface:         "#1e1e1e",
		Text:            "#e0e0e0",
		TextMuted:       "#94a3b8",
		Border:          "#333333",
		Success:         "#22c55e",
		Error:           "#ef4444",
		Warning:         "#f59e0b",
	}
}
