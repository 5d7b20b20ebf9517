package display

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

var ansiForeground = map[string]string{
	"black":    "30",
	"red":      "31",
	"green":    "32",
	"yellow":   "33",
	"blue":     "34",
	"darkblue": "34",
	"magenta":  "35",
	"cyan":     "36",
	"white":    "37",
}

var ansiBackground = map[string]string{
	"black":   "40",
	"red":     "41",
	"green":   "42",
	"yellow":  "43",
	"blue":    "44",
	"magenta": "45",
	"cyan":    "46",
	"white":   "47",
}

// Console renders the display as a fixed-size text frame on a writer.
// Every DisplayText redraws the whole frame.
type Console struct {
	out     io.Writer
	width   int
	palette Palette
	color   bool

	mu    sync.Mutex
	lines []string
}

// NewConsole creates a console display of rows lines, each width runes wide.
func NewConsole(out io.Writer, width, rows int, palette Palette, color bool) *Console {
	if width <= 0 {
		width = 24
	}
	if rows <= 0 {
		rows = 6
	}
	return &Console{
		out:     out,
		width:   width,
		palette: palette,
		color:   color,
		lines:   make([]string, rows),
	}
}

func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		c.lines[i] = ""
	}
}

func (c *Console) DisplayText(line int, text string, align Alignment) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if line < 0 || line >= len(c.lines) {
		log.Warn().Int("line", line).Str("text", text).Msg("display line out of range")
		return
	}
	c.lines[line] = Align(text, c.width, align)
	c.flushLocked()
}

// Lines returns a copy of the current frame contents.
func (c *Console) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Console) flushLocked() {
	var b strings.Builder
	border := "+" + strings.Repeat("-", c.width) + "+\n"
	b.WriteString(border)
	for _, l := range c.lines {
		if l == "" {
			l = strings.Repeat(" ", c.width)
		}
		b.WriteString("|")
		b.WriteString(c.paint(l))
		b.WriteString("|\n")
	}
	b.WriteString(border)

	if _, err := io.WriteString(c.out, b.String()); err != nil {
		log.Debug().Err(err).Msg("console display write failed")
	}
}

func (c *Console) paint(s string) string {
	if !c.color {
		return s
	}
	codes := make([]string, 0, 2)
	if fg, ok := ansiForeground[c.palette.Text]; ok {
		codes = append(codes, fg)
	}
	if bg, ok := ansiBackground[c.palette.Background]; ok {
		codes = append(codes, bg)
	}
	if len(codes) == 0 {
		return s
	}
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", strings.Join(codes, ";"), s)
}

// Align pads or truncates text to exactly width runes.
func Align(text string, width int, align Alignment) string {
	r := []rune(text)
	if len(r) >= width {
		return string(r[:width])
	}
	pad := width - len(r)
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + text
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
	default:
		return text + strings.Repeat(" ", pad)
	}
}
