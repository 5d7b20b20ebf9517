package game

import (
	"context"

	"github.com/mcdev12/reaction/go/internal/debounce"
	"github.com/rs/zerolog/log"
)

// Controller turns raw button edges into machine events. Each button may
// have its own Debouncer; a button without one passes every edge through.
type Controller struct {
	machine  *Machine
	bouncers map[Button]*debounce.Debouncer
}

// NewController routes edges to machine. secondary may be nil, which
// leaves the reset button undebounced.
func NewController(machine *Machine, primary, secondary *debounce.Debouncer) *Controller {
	bouncers := make(map[Button]*debounce.Debouncer, 2)
	if primary != nil {
		bouncers[ButtonPrimary] = primary
	}
	if secondary != nil {
		bouncers[ButtonSecondary] = secondary
	}
	return &Controller{
		machine:  machine,
		bouncers: bouncers,
	}
}

// OnEdge handles one falling edge and reports whether it reached the machine.
func (c *Controller) OnEdge(b Button) bool {
	if d, ok := c.bouncers[b]; ok && !d.Accept() {
		c.machine.metrics.RecordDroppedEdge(b.String())
		return false
	}
	c.machine.HandleEvent(b.Event())
	return true
}

// Run services edges in arrival order until ctx is done or edges is closed.
func (c *Controller) Run(ctx context.Context, edges <-chan Button) error {
	log.Info().Str("session_id", c.machine.session.ID).Msg("input loop started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("session_id", c.machine.session.ID).Msg("input loop shutdown requested")
			return nil
		case b, ok := <-edges:
			if !ok {
				log.Info().Str("session_id", c.machine.session.ID).Msg("edge channel closed, input loop exiting")
				return nil
			}
			if !c.OnEdge(b) {
				log.Debug().Str("button", b.String()).Msg("edge suppressed")
			}
		}
	}
}

// Close stops every debounce timer.
func (c *Controller) Close() {
	for _, d := range c.bouncers {
		d.Stop()
	}
}
