package rpc

import "sync/atomic"

// connState is the WebSocket connection's only two substantive states
// (spec §9 Design Notes: re-architect away from phantom-typed
// open/closed markers toward an explicit small state machine).
type connState int32

const (
	stateDisconnected connState = iota
	stateConnected
)

// stateMachine guards transitions between the two legal states with a
// single atomic word; both Connect and Disconnect are idempotent.
type stateMachine struct {
	state int32
}

func (s *stateMachine) current() connState {
	return connState(atomic.LoadInt32(&s.state))
}

// transitionToConnected moves to connected and reports whether this
// call performed the transition (false if already connected).
func (s *stateMachine) transitionToConnected() bool {
	return atomic.CompareAndSwapInt32(&s.state, int32(stateDisconnected), int32(stateConnected))
}

// transitionToDisconnected moves to disconnected and reports whether
// this call performed the transition (false if already disconnected).
func (s *stateMachine) transitionToDisconnected() bool {
	return atomic.CompareAndSwapInt32(&s.state, int32(stateConnected), int32(stateDisconnected))
}
