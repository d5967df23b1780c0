package order

import (
	"fmt"
	"strings"

	"pos/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// Declared progression:
//
//	Pending ──> Preparing ──> Ready ──> Delivered
//
// Delivered is final. Whether the progression is enforced on updates is
// decided by a TransitionPolicy, see Status.TransitionTo.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new order.
	Pending

	// Preparing means the kitchen is working on the order.
	Preparing

	// Ready means the order is waiting to be served.
	Ready

	// Delivered means the order reached the table. No outgoing edge.
	Delivered
)

// getStatusStrings returns the wire label of every status, Unknown included.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
	}
}

// Statuses returns the four recognized statuses in progression order.
func Statuses() []Status {
	return []Status{Pending, Preparing, Ready, Delivered}
}

// ParseStatus maps a wire label to its Status.
//
// Returns:
//   - ValueIsRequiredError when label is empty
//   - ValueIsInvalidError when label is not one of pending, preparing, ready, delivered
//
// Labels are matched exactly; "Ready" is not "ready".
func ParseStatus(label string) (Status, error) {
	if label == "" {
		return Unknown, errs.NewValueIsRequiredError("status")
	}

	for _, s := range Statuses() {
		if s.String() == label {
			return s, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of: %s", label, strings.Join(statusLabels(), ", ")),
	)
}

// Validate checks if the Status value is one of the four recognized statuses.
func (s Status) Validate() error {
	if s < Pending || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire label of the status, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next returns the status that follows s in the progression.
// The second result is false for Delivered and for invalid statuses.
func (s Status) Next() (Status, bool) {
	switch s {
	case Pending:
		return Preparing, true
	case Preparing:
		return Ready, true
	case Ready:
		return Delivered, true
	default:
		return Unknown, false
	}
}

// IsFinal reports whether no forward edge leaves s.
func (s Status) IsFinal() bool {
	return s == Delivered
}

// TransitionPolicy decides which status changes an update may perform.
type TransitionPolicy int

const (
	// AnyRecognizedStatus accepts any of the four statuses regardless of the
	// current one, including moving backwards or staying put.
	AnyRecognizedStatus TransitionPolicy = iota

	// ForwardOnly accepts only the single forward edge from the current status.
	ForwardOnly
)

func (p TransitionPolicy) String() string {
	if p == ForwardOnly {
		return "forward-only"
	}
	return "any-recognized-status"
}

// TransitionTo validates moving from s to next under policy and returns next.
//
// Returns:
//   - (next, nil) when the change is allowed
//   - (Unknown, ValueIsInvalidError) when next is not a recognized status, or
//     when policy is ForwardOnly and next is not the successor of s
func (s Status) TransitionTo(next Status, policy TransitionPolicy) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if policy == ForwardOnly {
		successor, ok := s.Next()
		if !ok || successor != next {
			return Unknown, errs.NewValueIsInvalidErrorWithCause(
				"status",
				fmt.Errorf("cannot move from %s to %s", s, next),
			)
		}
	}

	return next, nil
}

func statusLabels() []string {
	labels := make([]string, 0, 4)
	for _, s := range Statuses() {
		labels = append(labels, s.String())
	}
	return labels
}
