// Package errs provides the error taxonomy shared across the logistics
// portal: lookup failures and the two validation failures the domain
// constructors report.
//
// Each error kind pairs a sentinel (e.g. ErrObjectNotFound, matched with
// errors.Is for HTTP status mapping) with a struct type carrying the
// parameter name, an optional cause, and Unwrap back to the sentinel:
//   - ObjectNotFoundError: a purchase order or shipment lookup found nothing
//   - ValueIsRequiredError: a required field or dependency was missing
//   - ValueIsInvalidError: a supplied value failed a domain rule
//
// Constructors come in plain and WithCause variants; messages are collapsed
// to a single line so they stay greppable in logs.
package errs
