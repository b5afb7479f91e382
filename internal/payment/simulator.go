package payment

import (
	"errors"
	"sync"
)

// Tab identifies which payment-method form is visible.
type Tab string

const (
	TabCard Tab = "card"
	TabUPI  Tab = "upi"
	TabQR   Tab = "qr"
)

// State is the payment modal's position in its lifecycle.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateProcessing
)

var (
	ErrNotOpen     = errors.New("payment modal is not open")
	ErrAlreadyOpen = errors.New("payment modal is already open")
	ErrProcessing  = errors.New("payment is processing and cannot be interrupted")
	ErrInvalidTab  = errors.New("unknown payment tab")
)

// Simulator drives the checkout payment modal: Closed -> Open(tab) ->
// Processing -> Closed on success. Once Processing there is no cancel path;
// the gateway's completion signal is the only way out.
type Simulator struct {
	mu        sync.Mutex
	state     State
	tab       Tab
	gateway   Gateway
	completed bool
}

func NewSimulator(gateway Gateway) *Simulator {
	return &Simulator{gateway: gateway, tab: TabCard}
}

// Open moves Closed -> Open with the default tab. Cart and billing gating is
// the caller's responsibility (see checkout.Flow).
func (s *Simulator) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateProcessing:
		return ErrProcessing
	case StateOpen:
		return ErrAlreadyOpen
	}
	s.state = StateOpen
	s.tab = TabCard
	s.completed = false
	return nil
}

// SelectTab switches the visible payment-method form. Only legal while Open.
func (s *Simulator) SelectTab(tab Tab) error {
	if tab != TabCard && tab != TabUPI && tab != TabQR {
		return ErrInvalidTab
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateOpen {
		if s.state == StateProcessing {
			return ErrProcessing
		}
		return ErrNotOpen
	}
	s.tab = tab
	return nil
}

// SubmitPayment moves Open -> Processing and asks the gateway for completion.
// onSuccess fires exactly once, when the gateway reports done.
func (s *Simulator) SubmitPayment(amount float64, onSuccess func()) error {
	s.mu.Lock()
	if s.state != StateOpen {
		state := s.state
		s.mu.Unlock()
		if state == StateProcessing {
			return ErrProcessing
		}
		return ErrNotOpen
	}
	s.state = StateProcessing
	s.mu.Unlock()

	s.gateway.Authorize(amount, func() {
		s.complete(onSuccess)
	})
	return nil
}

func (s *Simulator) complete(onSuccess func()) {
	s.mu.Lock()
	if s.state != StateProcessing || s.completed {
		s.mu.Unlock()
		return
	}
	s.completed = true
	s.state = StateClosed
	s.mu.Unlock()

	if onSuccess != nil {
		onSuccess()
	}
}

// Cancel closes the modal. Refused once payment submission has begun.
func (s *Simulator) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateProcessing {
		return ErrProcessing
	}
	s.state = StateClosed
	return nil
}

// State returns the current lifecycle position.
func (s *Simulator) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ActiveTab returns the selected payment-method tab.
func (s *Simulator) ActiveTab() Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab
}

// IsProcessing reports whether a submitted payment is in flight.
func (s *Simulator) IsProcessing() bool {
	return s.State() == StateProcessing
}
