package payment

import "time"

// Gateway supplies the completion signal for a submitted payment. The
// simulator below stands in for a real processor; a production gateway
// implementation would complete from a network response instead of a timer,
// reusing the same state machine.
type Gateway interface {
	Authorize(amount float64, done func())
}

// SimulatedGateway always succeeds after a fixed delay.
type SimulatedGateway struct {
	Delay time.Duration
}

func (g SimulatedGateway) Authorize(amount float64, done func()) {
	time.AfterFunc(g.Delay, done)
}
