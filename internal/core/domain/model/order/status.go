package order

import "strings"

// Status represents a canonical lifecycle label of an order.
//
// The lifecycle moves forward through:
//
//	pending ──> choose_captain ──> processing ──> out_for_delivery ──> delivered
//	    └──────────(deferred)──────────┘
//
// cancelled and problem are reachable from any non-terminal state and are
// terminal. Raw statuses stored or received from legacy systems are mapped
// into this set by Normalize; the canonical status of an order is always
// derived from its raw status and never stored independently.
type Status string

const (
	// Pending is the initial status of a freshly created order.
	Pending Status = "pending"
	// ChooseCaptain marks an order waiting for captain selection or,
	// once a captain id is populated, awaiting captain confirmation.
	ChooseCaptain Status = "choose_captain"
	// Processing marks an order being prepared by the restaurant.
	// It carries a sub-state machine, see Substage.
	Processing Status = "processing"
	// OutForDelivery marks an order picked up and on its way to the customer.
	OutForDelivery Status = "out_for_delivery"
	// Delivered is the successful terminal status.
	Delivered Status = "delivered"
	// Cancelled is the terminal status of a cancelled order.
	Cancelled Status = "cancelled"
	// Problem is the terminal status of an order flagged with an issue.
	Problem Status = "problem"
)

// Substage is a fine-grained marker used only while an order is in Processing.
// Only the last substage transitions out of Processing.
type Substage string

const (
	// SubstageWaitingApproval means the restaurant has not yet approved the order.
	SubstageWaitingApproval Substage = "waiting_approval"
	// SubstagePreparing means the restaurant is preparing the order.
	SubstagePreparing Substage = "preparing"
	// SubstageCaptainReceived means the captain has picked the order up from
	// the restaurant.
	SubstageCaptainReceived Substage = "captain_received"
	// SubstageNone is the absence of a substage marker.
	SubstageNone Substage = ""
)

// statusAliases maps legacy raw statuses onto canonical lifecycle labels.
// Call sites must delegate to Normalize rather than re-implement this table.
var statusAliases = map[string]Status{
	"issue":                         Problem,
	"accepted":                      ChooseCaptain,
	"waiting_restaurant_acceptance": ChooseCaptain,
	"preparing":                     Processing,
	"pick_up_ready":                 Processing,
}

// canonicalStatuses is the closed set of lifecycle labels.
var canonicalStatuses = map[Status]struct{}{
	Pending:        {},
	ChooseCaptain:  {},
	Processing:     {},
	OutForDelivery: {},
	Delivered:      {},
	Cancelled:      {},
	Problem:        {},
}

// Normalize maps an arbitrary raw status string onto a canonical Status.
//
// The input is lowercased and trimmed, then looked up in the legacy alias
// table. Empty input and any value that remains outside the canonical set
// normalize to Pending: an unrecognized status must never crash the system,
// it is a permissive default, not an error. Callers that care about operator
// visibility log unknown inputs themselves.
//
// Normalize is pure, deterministic, total and idempotent:
// Normalize(string(Normalize(s))) == Normalize(s) for every s.
func Normalize(raw string) Status {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return Pending
	}

	if canonical, ok := statusAliases[s]; ok {
		return canonical
	}

	status := Status(s)
	if !status.IsCanonical() {
		return Pending
	}

	return status
}

// IsCanonical reports whether the status belongs to the canonical lifecycle set.
func (s Status) IsCanonical() bool {
	_, ok := canonicalStatuses[s]
	return ok
}

// IsTerminal reports whether the status admits no further transitions.
// Terminal statuses are Delivered, Cancelled and Problem.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Problem
}

// String returns the lifecycle label. Implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// String returns the substage marker. Implements fmt.Stringer.
func (s Substage) String() string {
	return string(s)
}
