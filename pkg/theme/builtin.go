package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thTab10Theme(),
		thGruvboxTheme(),
		thNordTheme(),
		thCatppuccinTheme(),
		thDraculaTheme(),
	} {
		thRegister(t)
	}
}

// thTab10Theme returns the light theme with the classic ten-color
// categorical palette.
func thTab10Theme() Theme {
	return Theme{
		Name:       "tab10",
		Background: "#ffffff",
		Foreground: "#222222",
		Grid:       "#cccccc",
		Dim:        "#7f7f7f",
		Accent:     "#1f77b4",
		Palette: []string{
			"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
			"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
		},
	}
}

// thGruvboxTheme returns the warm retro Gruvbox theme.
func thGruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Background: "#282828",
		Foreground: "#ebdbb2",
		Grid:       "#504945",
		Dim:        "#928374",
		Accent:     "#fe8019",
		Palette: []string{
			"#fb4934", "#b8bb26", "#fabd2f", "#83a598", "#d3869b",
			"#8ec07c", "#fe8019", "#cc241d", "#98971a", "#d79921",
		},
	}
}

// thNordTheme returns the arctic blue Nord theme.
func thNordTheme() Theme {
	return Theme{
		Name:       "nord",
		Background: "#2e3440",
		Foreground: "#eceff4",
		Grid:       "#434c5e",
		Dim:        "#4c566a",
		Accent:     "#88c0d0",
		Palette: []string{
			"#88c0d0", "#bf616a", "#a3be8c", "#ebcb8b", "#b48ead",
			"#d08770", "#81a1c1", "#8fbcbb", "#5e81ac", "#e5e9f0",
		},
	}
}

// thCatppuccinTheme returns the Catppuccin Mocha theme.
func thCatppuccinTheme() Theme {
	return Theme{
		Name:       "catppuccin",
		Background: "#1e1e2e",
		Foreground: "#cdd6f4",
		Grid:       "#45475a",
		Dim:        "#6c7086",
		Accent:     "#cba6f7",
		Palette: []string{
			"#89b4fa", "#f38ba8", "#a6e3a1", "#fab387", "#cba6f7",
			"#94e2d5", "#f9e2af", "#eba0ac", "#74c7ec", "#b4befe",
		},
	}
}

// thDraculaTheme returns the Dracula theme.
func thDraculaTheme() Theme {
	return Theme{
		Name:       "dracula",
		Background: "#282a36",
		Foreground: "#f8f8f2",
		Grid:       "#44475a",
		Dim:        "#6272a4",
		Accent:     "#bd93f9",
		Palette: []string{
			"#bd93f9", "#ff79c6", "#50fa7b", "#ffb86c", "#8be9fd",
			"#f1fa8c", "#ff5555", "#6272a4", "#f8f8f2", "#44475a",
		},
	}
}
