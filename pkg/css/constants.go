package css

// Property names read by the background composition.
const (
	BackgroundColor     = "background-color"
	BackgroundImage     = "background-image"
	BackgroundRepeat    = "background-repeat"
	BackgroundBlendMode = "background-blend-mode"
	BackgroundPosition  = "background-position"
	FontSize            = "font-size"
)

// Keywords shared by several properties.
const (
	None        = "none"
	Transparent = "transparent"
	Repeat      = "repeat"
	RepeatX     = "repeat-x"
	RepeatY     = "repeat-y"
	NoRepeat    = "no-repeat"
	Space       = "space"
	Round       = "round"
)
