// Package webhook provides the Trustap webhook event envelope, strict
// per-event payload validation, and the transaction lifecycle state model.
//
// The state and transition tables are declarative reference data for callers
// building their own transaction tracking; the SDK does not itself enforce
// transitions or persist state.
package webhook

// State is one lifecycle state of a transaction. The zero value means
// "no state" and is returned for unrecognized event codes.
type State string

// Online transaction states.
const (
	StateCreated              State = "created"
	StateJoined               State = "joined"
	StatePaid                 State = "paid"
	StateTracked              State = "tracked"
	StateDelivered            State = "delivered"
	StateComplained           State = "complained"
	StateComplaintPeriodEnded State = "complaint_period_ended"
	StateFundsReleased        State = "funds_released"
	StateCancelled            State = "cancelled"
	StateRefunded             State = "refunded"
)

// Face-to-face transaction states.
const (
	F2FStateCreated           State = "created"
	F2FStateJoined            State = "joined"
	F2FStateDepositPaid       State = "deposit_paid"
	F2FStateDepositAccepted   State = "deposit_accepted"
	F2FStateDepositRejected   State = "deposit_rejected"
	F2FStateHandoverConfirmed State = "handover_confirmed"
	F2FStateFundsReleased     State = "funds_released"
	F2FStateCancelled         State = "cancelled"
)

// Transitions is a directed adjacency list: current state → allowed next
// states.
type Transitions map[State][]State

// OnlineTransitions covers the online transaction lifecycle.
var OnlineTransitions = Transitions{
	StateCreated:              {StateJoined, StateCancelled},
	StateJoined:               {StatePaid, StateCancelled},
	StatePaid:                 {StateTracked, StateRefunded},
	StateTracked:              {StateDelivered, StateRefunded},
	StateDelivered:            {StateComplained, StateComplaintPeriodEnded},
	StateComplained:           {StateRefunded, StateComplaintPeriodEnded},
	StateComplaintPeriodEnded: {StateFundsReleased},
	StateFundsReleased:        {},
	StateCancelled:            {},
	StateRefunded:             {},
}

// F2FTransitions covers the face-to-face transaction lifecycle.
var F2FTransitions = Transitions{
	F2FStateCreated:           {F2FStateJoined, F2FStateCancelled},
	F2FStateJoined:            {F2FStateDepositPaid, F2FStateCancelled},
	F2FStateDepositPaid:       {F2FStateDepositAccepted, F2FStateDepositRejected, F2FStateCancelled},
	F2FStateDepositRejected:   {F2FStateDepositPaid, F2FStateCancelled},
	F2FStateDepositAccepted:   {F2FStateHandoverConfirmed, F2FStateCancelled},
	F2FStateHandoverConfirmed: {F2FStateFundsReleased},
	F2FStateFundsReleased:     {},
	F2FStateCancelled:         {},
}

// IsValidTransition reports whether from → to is allowed by the table.
func IsValidTransition(table Transitions, from, to State) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

var onlineStateByCode = map[string]State{
	"basic_tx.created":                StateCreated,
	"basic_tx.joined":                 StateJoined,
	"basic_tx.paid":                   StatePaid,
	"basic_tx.tracked":                StateTracked,
	"basic_tx.delivered":              StateDelivered,
	"basic_tx.complained":             StateComplained,
	"basic_tx.complaint_period_ended": StateComplaintPeriodEnded,
	"basic_tx.funds_released":         StateFundsReleased,
	"basic_tx.cancelled":              StateCancelled,
	"basic_tx.refunded":               StateRefunded,
}

var f2fStateByCode = map[string]State{
	"p2p_tx.created":            F2FStateCreated,
	"p2p_tx.joined":             F2FStateJoined,
	"p2p_tx.deposit_paid":       F2FStateDepositPaid,
	"p2p_tx.deposit_accepted":   F2FStateDepositAccepted,
	"p2p_tx.deposit_rejected":   F2FStateDepositRejected,
	"p2p_tx.handover_confirmed": F2FStateHandoverConfirmed,
	"p2p_tx.funds_released":     F2FStateFundsReleased,
	"p2p_tx.cancelled":          F2FStateCancelled,
}

// MapOnlineState maps a webhook event code to the online transaction state
// it results in. Unknown codes return the zero State, never an error.
func MapOnlineState(code string) State {
	return onlineStateByCode[code]
}

// MapF2FState maps a webhook event code to the face-to-face transaction
// state it results in. Unknown codes return the zero State, never an error.
func MapF2FState(code string) State {
	return f2fStateByCode[code]
}

// KnownCodes returns every recognized event code, in no particular order.
func KnownCodes() []string {
	codes := make([]string, 0, len(onlineStateByCode)+len(f2fStateByCode))
	for code := range onlineStateByCode {
		codes = append(codes, code)
	}
	for code := range f2fStateByCode {
		codes = append(codes, code)
	}
	return codes
}
