package theme

// Pairs are {background, foreground}, indexed by rank.
func init() {
	Register(Theme{
		Name:        "original",
		Description: "Classic colors (works on 16-color terminals)",
		colors: palette{
			{8, 255}, {1, 255}, {2, 255}, {3, 255}, {4, 255}, {5, 255}, {6, 255}, {7, 255},
			{9, 0}, {10, 0}, {11, 0}, {12, 0}, {13, 0}, {14, 0}, {255, 0}, {255, 0},
		},
	})

	Register(Theme{
		Name:        "blackwhite",
		Description: "Black-to-white scale (requires 256-color support)",
		colors: palette{
			{232, 255}, {234, 255}, {236, 255}, {238, 255}, {240, 255}, {242, 255}, {244, 255}, {246, 0},
			{248, 0}, {249, 0}, {250, 0}, {251, 0}, {252, 0}, {253, 0}, {254, 0}, {255, 0},
		},
	})

	Register(Theme{
		Name:        "bluered",
		Description: "Blue-to-red scale (requires 256-color support)",
		colors: palette{
			{235, 255}, {63, 255}, {57, 255}, {93, 255}, {129, 255}, {165, 255}, {201, 255}, {200, 255},
			{199, 255}, {198, 255}, {197, 255}, {196, 255}, {196, 255}, {196, 255}, {196, 255}, {196, 255},
		},
	})
}
