// Package order contains the order aggregate of the POS service.
//
// # Lifecycle
//
//	Pending ──> Preparing ──> Ready ──> Delivered
//
// An order is created Pending by NewOrder with an identifier handed out by
// the store. ChangeStatus is the only mutation; it is checked against a
// TransitionPolicy chosen at startup. AnyRecognizedStatus accepts any of the
// four labels in any order. ForwardOnly enforces the progression above.
//
// # Line items
//
// LineItem carries the product name and price the client captured when the
// product went into the cart. The catalog is never consulted again.
//
// # Events
//
// Stores raise an Event per committed mutation (created, status changed,
// deleted). Events carry a snapshot of the order and, for status changes,
// the previous status.
package order
