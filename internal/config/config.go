package config

import (
	"fmt"

	"k8s.io/apimachinery/pkg/runtime/schema"
)

// ResourceKind identifies one API resource targeted by the teardown.
// Group, Version and Resource are spelled out in the plan because most
// targeted kinds are CRDs that cannot be discovered from a static mapping.
// An empty Namespace marks the kind as cluster-scoped.
type ResourceKind struct {
	Kind      string `yaml:"kind"`
	Group     string `yaml:"group"`
	Version   string `yaml:"version"`
	Resource  string `yaml:"resource"`
	Namespace string `yaml:"namespace"`
}

// GVR returns the schema identifier for dynamic client calls.
func (k ResourceKind) GVR() schema.GroupVersionResource {
	return schema.GroupVersionResource{
		Group:    k.Group,
		Version:  k.Version,
		Resource: k.Resource,
	}
}

// Namespaced reports whether the kind is scoped to a namespace.
func (k ResourceKind) Namespaced() bool {
	return k.Namespace != ""
}

func (k ResourceKind) String() string {
	if k.Namespaced() {
		return fmt.Sprintf("%s (%s)", k.Kind, k.Namespace)
	}
	return k.Kind
}

// Phase is one ordered step of the teardown. All kinds in a phase must
// reach zero count before the next phase starts deleting.
type Phase struct {
	Name  string         `yaml:"name"`
	Kinds []ResourceKind `yaml:"kinds"`
}

// Config is the full teardown plan.
type Config struct {
	Phases            []Phase  `yaml:"phases"`
	NamespacePatterns []string `yaml:"namespacePatterns"`
}

// Kinds returns every kind from every phase in declared order.
func (c *Config) Kinds() []ResourceKind {
	var kinds []ResourceKind
	for _, p := range c.Phases {
		kinds = append(kinds, p.Kinds...)
	}
	return kinds
}

// Validate checks the plan for structural problems.
func (c *Config) Validate() error {
	if len(c.Phases) == 0 {
		return fmt.Errorf("plan must declare at least one phase")
	}

	for i, phase := range c.Phases {
		if phase.Name == "" {
			return fmt.Errorf("phase %d: name is required", i+1)
		}
		if len(phase.Kinds) == 0 {
			return fmt.Errorf("phase %q: at least one kind is required", phase.Name)
		}
		for _, kind := range phase.Kinds {
			if kind.Kind == "" {
				return fmt.Errorf("phase %q: kind name is required", phase.Name)
			}
			if kind.Resource == "" {
				return fmt.Errorf("phase %q: resource is required for kind %s", phase.Name, kind.Kind)
			}
			if kind.Version == "" {
				return fmt.Errorf("phase %q: version is required for kind %s", phase.Name, kind.Kind)
			}
		}
	}

	for _, pattern := range c.NamespacePatterns {
		if pattern == "" {
			return fmt.Errorf("namespace patterns must not be empty strings")
		}
	}

	return nil
}

// Default returns the built-in plan for the managed platform's claim graph.
// Claims go first: deleting them stops the controller that would otherwise
// recreate everything downstream. Composite resources follow, then workflow
// and job leftovers. Namespaces are always scrubbed last by the orchestrator.
func Default() *Config {
	return &Config{
		Phases: []Phase{
			{
				Name: "claims",
				Kinds: []ResourceKind{
					{Kind: "ApplicationClaim", Group: "platform.example.org", Version: "v1alpha1", Resource: "applicationclaims", Namespace: "default"},
					{Kind: "AppContainerClaim", Group: "platform.example.org", Version: "v1alpha1", Resource: "appcontainerclaims", Namespace: "default"},
				},
			},
			{
				Name: "environment-claims",
				Kinds: []ResourceKind{
					{Kind: "VclusterEnvironmentClaim", Group: "platform.example.org", Version: "v1alpha1", Resource: "vclusterenvironmentclaims", Namespace: "default"},
				},
			},
			{
				Name: "composites",
				Kinds: []ResourceKind{
					{Kind: "XVclusterEnvironmentClaim", Group: "platform.example.org", Version: "v1alpha1", Resource: "xvclusterenvironmentclaims"},
				},
			},
			{
				Name: "workflows",
				Kinds: []ResourceKind{
					{Kind: "Workflow", Group: "argoproj.io", Version: "v1alpha1", Resource: "workflows", Namespace: "argo"},
				},
			},
			{
				Name: "jobs",
				Kinds: []ResourceKind{
					{Kind: "Job", Group: "batch", Version: "v1", Resource: "jobs", Namespace: "default"},
				},
			},
		},
		NamespacePatterns: []string{"test-service", "demo-parking"},
	}
}
