package game

import (
	"fmt"

	"github.com/mcdev12/reaction/go/internal/display"
)

// Display rows, in 20px font lines.
const (
	RowHeadline = 2
	RowDetail   = 3
	RowPrompt   = 4
)

const (
	textPressToStart = "Press to start"
	textWait         = "Wait..."
	textGo           = "GO!"
	textPressNow     = "Press button now!"
	textCheating     = "Cheating!"
)

func showIdle(p display.Presenter) {
	p.Clear()
	p.DisplayText(RowHeadline, textPressToStart, display.AlignCenter)
}

func showWait(p display.Presenter) {
	p.Clear()
	p.DisplayText(RowHeadline, textWait, display.AlignCenter)
}

func showGo(p display.Presenter) {
	p.Clear()
	p.DisplayText(RowHeadline, textGo, display.AlignCenter)
	p.DisplayText(RowPrompt, textPressNow, display.AlignCenter)
}

func showCheating(p display.Presenter) {
	p.Clear()
	p.DisplayText(RowHeadline, textCheating, display.AlignCenter)
}

// showResult renders the last run. The fastest line is only drawn once a
// run has completed, so the sentinel never reaches the screen.
func showResult(p display.Presenter, s *Session) {
	p.Clear()
	p.DisplayText(RowHeadline, fmt.Sprintf("current: %d ms", s.ReactionMS), display.AlignCenter)
	if s.HasFastest() {
		p.DisplayText(RowDetail, fmt.Sprintf("Fastest: %d ms", s.FastestMS), display.AlignCenter)
	}
}
