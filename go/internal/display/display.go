// Package display defines the text surface the game renders to.
package display

// Alignment is the horizontal placement of a line of text.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Presenter receives render commands. Calls are fire-and-forget: the
// caller never waits on the display and gets no failure back.
type Presenter interface {
	Clear()
	DisplayText(line int, text string, align Alignment)
}

// Palette is the static color configuration of the display.
type Palette struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
}

// DefaultPalette is dark blue text on white.
var DefaultPalette = Palette{
	Background: "white",
	Text:       "darkblue",
}
