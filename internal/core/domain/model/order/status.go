package order

import (
	"fmt"
	"strings"

	"delivery-api/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	CREATED ──> CONFIRMED <──> SHIPPED ──> DELIVERED
//	   │            │             │
//	   └────────────┴─────────────┴──────> CANCELED
//
// Forward order is not enforced between the non-terminal states: any target other than
// CREATED is accepted until the order reaches DELIVERED or CANCELED.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status of every new order.
	Created

	// Confirmed indicates the order was accepted for fulfilment.
	Confirmed

	// Shipped indicates the order left the warehouse.
	Shipped

	// Delivered is a terminal status.
	Delivered

	// Canceled is a terminal status.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Created:   "CREATED",
		Confirmed: "CONFIRMED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Canceled:  "CANCELED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "CREATED",
		Confirmed: "CONFIRMED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Canceled:  "CANCELED",
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Created, Confirmed, Shipped, Delivered, Canceled}
}

// ParseStatus converts the textual form ("SHIPPED", case-insensitive, surrounding
// spaces ignored) into a Status.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the five lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case name used by storage, cache keys and the HTTP API.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// AdvanceTo returns target if the transition from s is allowed.
//
// Guards are evaluated in this order:
//   - target must be a valid status (ErrValueIsInvalid)
//   - s must not be terminal (ErrStateIsInvalid)
//   - target must not be Created (ErrValueIsInvalid)
func (s Status) AdvanceTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, errs.NewStateIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot change status of a %s order", s.String()),
		)
	}

	if target == Created {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot revert %s order to %s", s.String(), Created.String()),
		)
	}

	return target, nil
}

// Cancel returns Canceled unless s is Delivered.
func (s Status) Cancel() (Status, error) {
	if s == Delivered {
		return Unknown, errs.NewStateIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot cancel a %s order", s.String()),
		)
	}
	return Canceled, nil
}
