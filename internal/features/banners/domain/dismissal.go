package domain

import "sync/atomic"

// Visibility is the state of the DismissalController.
type Visibility int32

const (
	Visible Visibility = iota
	Dismissed
)

func (v Visibility) String() string {
	if v == Dismissed {
		return "dismissed"
	}
	return "visible"
}

// MarshalText implements encoding.TextMarshaler.
func (v Visibility) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// DismissalController is the Visible -> Dismissed state machine. Dismissed is absorbing.
type DismissalController struct {
	state atomic.Int32
}

// Dismiss moves to Dismissed and reports whether this call made the transition.
func (d *DismissalController) Dismiss() bool {
	return d.state.CompareAndSwap(int32(Visible), int32(Dismissed))
}

// State returns the current state.
func (d *DismissalController) State() Visibility {
	return Visibility(d.state.Load())
}

// Dismissed reports whether the banner is hidden for good.
func (d *DismissalController) Dismissed() bool {
	return d.State() == Dismissed
}
