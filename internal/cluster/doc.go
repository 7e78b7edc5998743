// Package cluster wraps the Kubernetes API operations needed for teardown:
// counting, bulk deletion, forced per-object deletion with finalizer
// clearing, namespace removal and control-plane readiness probing.
package cluster
