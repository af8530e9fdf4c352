package domain

// State is the step a return session is at.
type State string

// Session states, in wizard order.
const (
	StateCollectingCustomer State = "collecting_customer"
	StateCollectingBox      State = "collecting_box"
	StateReviewing          State = "reviewing"
	StateFinalized          State = "finalized"
)

var transitions = map[State][]State{
	StateCollectingCustomer: {StateCollectingBox},
	StateCollectingBox:      {StateReviewing, StateCollectingCustomer},
	StateReviewing:          {StateFinalized, StateCollectingBox},
	StateFinalized:          {StateCollectingCustomer},
}

// CanTransitionTo reports whether a session in s may move to next.
func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Previous returns the state Back leads to, if any.
func (s State) Previous() (State, bool) {
	switch s {
	case StateCollectingBox:
		return StateCollectingCustomer, true
	case StateReviewing:
		return StateCollectingBox, true
	default:
		return "", false
	}
}

func (s State) String() string {
	return string(s)
}
