package cluster

import (
	"context"

	"github.com/kubesweep/kubesweep/internal/config"
)

// MockClient is a mock implementation of ResourceClient. Each operation
// delegates to the corresponding Func field when set; unset operations
// report an empty, healthy cluster.
type MockClient struct {
	CountFunc            func(ctx context.Context, kind config.ResourceKind) (int, error)
	ListFunc             func(ctx context.Context, kind config.ResourceKind) ([]string, error)
	DeleteCollectionFunc func(ctx context.Context, kind config.ResourceKind) error
	ForceDeleteFunc      func(ctx context.Context, kind config.ResourceKind, name string) error
	ListNamespacesFunc   func(ctx context.Context) ([]string, error)
	DeleteNamespaceFunc  func(ctx context.Context, name string) error
	ReadyFunc            func(ctx context.Context) error
	PodCountFunc         func(ctx context.Context) (int, error)
	NodeCountFunc        func(ctx context.Context) (int, error)
}

func (m *MockClient) Count(ctx context.Context, kind config.ResourceKind) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, kind)
	}
	return 0, nil
}

func (m *MockClient) List(ctx context.Context, kind config.ResourceKind) ([]string, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, kind)
	}
	return nil, nil
}

func (m *MockClient) DeleteCollection(ctx context.Context, kind config.ResourceKind) error {
	if m.DeleteCollectionFunc != nil {
		return m.DeleteCollectionFunc(ctx, kind)
	}
	return nil
}

func (m *MockClient) ForceDelete(ctx context.Context, kind config.ResourceKind, name string) error {
	if m.ForceDeleteFunc != nil {
		return m.ForceDeleteFunc(ctx, kind, name)
	}
	return nil
}

func (m *MockClient) ListNamespaces(ctx context.Context) ([]string, error) {
	if m.ListNamespacesFunc != nil {
		return m.ListNamespacesFunc(ctx)
	}
	return nil, nil
}

func (m *MockClient) DeleteNamespace(ctx context.Context, name string) error {
	if m.DeleteNamespaceFunc != nil {
		return m.DeleteNamespaceFunc(ctx, name)
	}
	return nil
}

func (m *MockClient) Ready(ctx context.Context) error {
	if m.ReadyFunc != nil {
		return m.ReadyFunc(ctx)
	}
	return nil
}

func (m *MockClient) PodCount(ctx context.Context) (int, error) {
	if m.PodCountFunc != nil {
		return m.PodCountFunc(ctx)
	}
	return 0, nil
}

func (m *MockClient) NodeCount(ctx context.Context) (int, error) {
	if m.NodeCountFunc != nil {
		return m.NodeCountFunc(ctx)
	}
	return 0, nil
}
