// Package order implements the purchase order aggregate and its lifecycle
// state machine.
//
// An Order moves from Pending through Consolidated to Dispatched as the
// coordinator groups it into outbound shipments. The aggregate also carries
// the bounded-retries rule for delivery date edits: three successful changes
// are allowed, and the request after the limit is exhausted auto-cancels the
// order and discards the requested date.
//
// Item is the value object for order lines; per-unit weight and volume may be
// zero when the source document did not carry them, and the stored value is
// never rewritten by planning defaults.
package order
