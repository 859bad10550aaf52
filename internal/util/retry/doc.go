// Package retry provides exponential backoff retry logic for operations that
// depend on eventually consistent cloud state.
//
// [WithExponentialBackoff] retries an operation with configurable attempts,
// initial delay, maximum delay, and multiplier. Errors can be excluded from
// retrying either by wrapping them with [Fatal] or by installing a predicate
// with [WithRetryIf]. When every attempt fails the returned error is an
// [*ExhaustedError] carrying the attempt count and the last error.
package retry
