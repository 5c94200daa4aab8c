// Package errs defines the error vocabulary shared by the order domain, the
// use cases and the adapters.
//
// Every typed error unwraps to one sentinel (ErrObjectNotFound,
// ErrValueIsRequired, ErrPreconditionFailed and so on), so callers classify
// with errors.Is and the HTTP adapter maps a sentinel to a status code
// without knowing which layer produced it. ErrAlreadyReviewed and
// ErrOrderNotDeliverable are bare sentinels for the review gate.
package errs
