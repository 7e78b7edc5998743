package teardown

import (
	"context"
	"fmt"
	"strings"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
)

// Matcher is a compiled set of namespace name rules. A rule matches every
// namespace whose name starts with the pattern.
type Matcher struct {
	prefixes []string
}

// NewMatcher compiles the configured patterns.
func NewMatcher(patterns []string) Matcher {
	return Matcher{prefixes: append([]string(nil), patterns...)}
}

// Empty reports whether the matcher has no rules.
func (m Matcher) Empty() bool {
	return len(m.prefixes) == 0
}

// Matches reports whether the namespace name matches any rule.
func (m Matcher) Matches(name string) bool {
	for _, prefix := range m.prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Filter returns the names matching any rule, preserving order.
func (m Matcher) Filter(names []string) []string {
	var matched []string
	for _, name := range names {
		if m.Matches(name) {
			matched = append(matched, name)
		}
	}
	return matched
}

// NamespaceOutcome records the terminal namespace scrub.
type NamespaceOutcome struct {
	Matched   []string `json:"matched,omitempty"`
	Deleted   []string `json:"deleted,omitempty"`
	Remaining []string `json:"remaining,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

// Clean reports whether no matching namespace is left and no deletion
// failed.
func (o NamespaceOutcome) Clean() bool {
	return len(o.Remaining) == 0 && len(o.Errors) == 0
}

// ScrubNamespaces deletes every namespace matching the configured patterns
// and waits for termination to finish. It must run after all phases:
// namespace termination cascades whatever the phases left behind, and a
// still-active controller would repopulate the namespace and hang it in
// Terminating indefinitely.
func ScrubNamespaces(ctx *Context) NamespaceOutcome {
	var out NamespaceOutcome

	matcher := NewMatcher(ctx.Config.NamespacePatterns)
	if matcher.Empty() {
		return out
	}

	names, err := ctx.Cluster.ListNamespaces(ctx)
	if err != nil {
		out.Errors = append(out.Errors, fmt.Sprintf("list namespaces: %v", err))
		return out
	}

	out.Matched = matcher.Filter(names)
	if len(out.Matched) == 0 {
		ctx.Observer.Printf("No namespaces match the configured patterns")
		return out
	}

	for _, name := range out.Matched {
		ctx.Observer.Event(Event{
			Type:    EventNamespaceDeleting,
			Message: fmt.Sprintf("deleting namespace %q", name),
		})
		if err := ctx.Cluster.DeleteNamespace(ctx, name); err != nil {
			out.Errors = append(out.Errors, fmt.Sprintf("delete namespace %q: %v", name, err))
			continue
		}
		out.Deleted = append(out.Deleted, name)
	}

	out.Remaining = awaitNamespacesGone(ctx, matcher, ctx.Timeouts.Namespace, out.Matched)
	for _, name := range out.Remaining {
		ctx.Observer.Event(Event{
			Type:    EventNamespaceStuck,
			Message: fmt.Sprintf("namespace %q still terminating after %v", name, ctx.Timeouts.Namespace),
		})
	}
	return out
}

// awaitNamespacesGone polls until no namespace matches the rules or the
// timeout expires, returning whatever still matches.
func awaitNamespacesGone(ctx *Context, matcher Matcher, timeout time.Duration, initial []string) []string {
	remaining := append([]string(nil), initial...)
	_ = wait.PollUntilContextTimeout(ctx, countPollInterval, timeout, true, func(c context.Context) (bool, error) {
		names, err := ctx.Cluster.ListNamespaces(c)
		if err != nil {
			return false, nil
		}
		remaining = matcher.Filter(names)
		return len(remaining) == 0, nil
	})
	return remaining
}
