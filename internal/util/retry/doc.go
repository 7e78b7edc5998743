// Package retry provides bounded retries for control-plane operations.
//
// The default behaviour is a fixed interval between attempts; exponential
// backoff is available through options. Errors wrapped with Fatal are
// never retried.
package retry
