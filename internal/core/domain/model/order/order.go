package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrInvalidTransition is returned when a lifecycle operation is requested
	// from a terminal or otherwise illegal state. It is a logical error: the
	// caller must re-fetch current state rather than retry the same operation.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Economics holds the monetary and distance figures of an order.
// All values must be non-negative.
type Economics struct {
	DistanceMeters       int
	DeliveryFee          float64
	TotalPriceCustomer   float64
	TotalPriceRestaurant float64
}

// Validate checks that no economics figure is negative.
func (e Economics) Validate() error {
	if e.DistanceMeters < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceMeters",
			fmt.Errorf("%d is negative", e.DistanceMeters))
	}
	if e.DeliveryFee < 0 || e.TotalPriceCustomer < 0 || e.TotalPriceRestaurant < 0 {
		return errs.NewValueIsInvalidError("order pricing")
	}
	return nil
}

// Order represents a customer order in the system. It is the aggregate root
// that owns the order lifecycle from creation through captain assignment to
// delivery.
//
// Order follows these invariants:
//   - Must have valid customer and restaurant references
//   - The canonical status is always derived from the raw status via Normalize
//     and never diverges from it
//   - A substage is only meaningful while the order is processing
//   - Economics figures are non-negative
//   - Status transitions follow the lifecycle table enforced by Advance,
//     Cancel, MarkProblem and ChangeStatus
//   - Orders are never deleted: cancellation is a status, not a removal
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID and restaurantID are weak references held by id only
	customerID   kernel.UUID
	restaurantID kernel.UUID

	// captainID is the assigned captain's ID (nil until a captain is assigned)
	captainID *kernel.UUID

	// rawStatus is the status as stored or received; may carry legacy values
	rawStatus string

	// substage is the fine-grained processing marker
	substage Substage

	// isDeferred makes a pending order skip captain selection on Advance
	isDeferred bool

	// isScheduled/scheduledTime flag the order for delayed dispatch;
	// an independent axis from the lifecycle status
	isScheduled   bool
	scheduledTime *time.Time

	// economics holds distance and pricing figures
	economics Economics

	// createdAt is the immutable creation timestamp
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new pending Order with validation. This is the only way
// to create a fresh order, ensuring all business invariants hold from the
// start.
//
// The order starts in the pending status with no captain, no substage and the
// current time as its creation timestamp.
func NewOrder(id kernel.UUID, customerID kernel.UUID, restaurantID kernel.UUID, economics Economics) (*Order, error) {
	o := &Order{
		rawStatus:     string(Pending),
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setEconomics(economics),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts the full persisted state, including legacy raw
// statuses; the canonical status is re-derived on access, so inconsistent
// stored values cannot leak out of the aggregate.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	captainID *kernel.UUID,
	rawStatus string,
	substage Substage,
	isDeferred bool,
	isScheduled bool,
	scheduledTime *time.Time,
	economics Economics,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		captainID:     captainID,
		rawStatus:     rawStatus,
		substage:      substage,
		isDeferred:    isDeferred,
		isScheduled:   isScheduled,
		scheduledTime: scheduledTime,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setEconomics(economics),
	); err != nil {
		return nil, err
	}

	if captainID != nil {
		if err := captainID.Validate(); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the referenced customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the referenced restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Captain returns the assigned captain's ID, or nil if no captain is assigned.
func (o *Order) Captain() *kernel.UUID {
	return o.captainID
}

// RawStatus returns the status string as stored or received.
func (o *Order) RawStatus() string {
	return o.rawStatus
}

// CurrentStatus returns the canonical lifecycle status, always recomputed
// from the raw status. This derivation is the single source of truth for
// where the order stands in the lifecycle.
func (o *Order) CurrentStatus() Status {
	return Normalize(o.rawStatus)
}

// Substage returns the processing substage. For orders outside Processing it
// returns SubstageNone; for processing orders with no stored marker it
// defaults to SubstageWaitingApproval, mirroring how legacy records without a
// stage name are interpreted.
func (o *Order) Substage() Substage {
	if o.CurrentStatus() != Processing {
		return SubstageNone
	}
	if o.substage == SubstageNone {
		return SubstageWaitingApproval
	}
	return o.substage
}

// IsDeferred reports whether the order skips captain selection on Advance.
func (o *Order) IsDeferred() bool {
	return o.isDeferred
}

// IsScheduled reports whether the order is flagged for delayed dispatch.
func (o *Order) IsScheduled() bool {
	return o.isScheduled
}

// ScheduledTime returns the future dispatch time, or nil when not scheduled.
func (o *Order) ScheduledTime() *time.Time {
	return o.scheduledTime
}

// Economics returns the order's distance and pricing figures.
func (o *Order) Economics() Economics {
	return o.economics
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// MarkDeferred flags the order to skip captain selection when advanced
// out of pending.
func (o *Order) MarkDeferred() {
	o.isDeferred = true
}

// Schedule flags the order for delayed dispatch at the given time.
func (o *Order) Schedule(at time.Time) {
	o.isScheduled = true
	t := at
	o.scheduledTime = &t
}

// ReleaseSchedule clears the delayed-dispatch flag, returning the order to
// the active flow. The lifecycle status is not touched.
func (o *Order) ReleaseSchedule() {
	o.isScheduled = false
	o.scheduledTime = nil
}

// Advance moves the order one step forward along the lifecycle.
//
// Transition table:
//
//	pending          -> choose_captain (or processing/waiting_approval when deferred)
//	choose_captain   -> processing/waiting_approval
//	processing       -> next substage, then out_for_delivery after captain_received
//	out_for_delivery -> delivered
//
// Advancing a terminal order fails with ErrInvalidTransition.
func (o *Order) Advance() error {
	switch o.CurrentStatus() {
	case Pending:
		if o.isDeferred {
			o.enterProcessing()
			return nil
		}
		o.setStatus(ChooseCaptain)
	case ChooseCaptain:
		o.enterProcessing()
	case Processing:
		o.advanceSubstage()
	case OutForDelivery:
		o.setStatus(Delivered)
	default:
		return ErrInvalidTransition
	}

	return nil
}

// Cancel marks the order as cancelled. Legal from every non-terminal state.
//
// The caller is responsible for incrementing the customer's cancelled counter
// alongside this transition; the two writes belong to the same business
// operation.
func (o *Order) Cancel() error {
	if o.CurrentStatus().IsTerminal() {
		return ErrInvalidTransition
	}

	o.setStatus(Cancelled)
	return nil
}

// MarkProblem marks the order as having a problem. Legal from every
// non-terminal state.
func (o *Order) MarkProblem() error {
	if o.CurrentStatus().IsTerminal() {
		return ErrInvalidTransition
	}

	o.setStatus(Problem)
	return nil
}

// ChangeStatus is the administrative override used to force the order into a
// specific canonical status. Values outside the canonical set are rejected;
// overriding a terminal order fails with ErrInvalidTransition. Entering
// Processing with no existing substage initializes waiting_approval.
func (o *Order) ChangeStatus(status Status) error {
	if !status.IsCanonical() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a canonical status", status))
	}

	if o.CurrentStatus().IsTerminal() {
		return ErrInvalidTransition
	}

	if status == Processing {
		if o.substage == SubstageNone {
			o.substage = SubstageWaitingApproval
		}
		o.rawStatus = string(Processing)
		return nil
	}

	o.setStatus(status)
	return nil
}

// AssignCaptain binds a captain to the order and moves it into the
// awaiting-confirmation state. The canonical label is the same
// choose_captain used before assignment; the populated captain id is the
// distinguishing signal. Concurrent assignments follow last-write-wins.
func (o *Order) AssignCaptain(captainID kernel.UUID) error {
	if err := captainID.Validate(); err != nil {
		return err
	}

	o.captainID = &captainID
	o.setStatus(ChooseCaptain)
	return nil
}

// enterProcessing moves the order into Processing at the first substage.
func (o *Order) enterProcessing() {
	o.rawStatus = string(Processing)
	o.substage = SubstageWaitingApproval
}

// advanceSubstage steps through the processing sub-state machine and exits
// to out_for_delivery after the final substage.
func (o *Order) advanceSubstage() {
	switch o.Substage() {
	case SubstagePreparing:
		o.substage = SubstageCaptainReceived
	case SubstageCaptainReceived:
		o.setStatus(OutForDelivery)
	default:
		// waiting_approval, including legacy records with no stored marker
		o.substage = SubstagePreparing
	}
}

// setStatus writes a canonical status into the raw status and clears the
// substage, which is only meaningful while processing.
func (o *Order) setStatus(status Status) {
	o.rawStatus = string(status)
	o.substage = SubstageNone
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the customer reference.
func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

// setRestaurantID validates and sets the restaurant reference.
func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	o.restaurantID = id
	return nil
}

// setEconomics validates and sets the distance and pricing figures.
func (o *Order) setEconomics(economics Economics) error {
	if err := economics.Validate(); err != nil {
		return err
	}
	o.economics = economics
	return nil
}
