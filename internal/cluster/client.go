package cluster

import (
	"context"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/kubesweep/kubesweep/internal/config"
)

// ResourceClient is the cluster API surface the orchestrator consumes.
// Deleting an already-absent object is success for every method.
type ResourceClient interface {
	// Count returns the number of live objects of the kind.
	Count(ctx context.Context, kind config.ResourceKind) (int, error)

	// List returns the names of live objects of the kind.
	List(ctx context.Context, kind config.ResourceKind) ([]string, error)

	// DeleteCollection issues a bulk delete for all objects of the kind.
	DeleteCollection(ctx context.Context, kind config.ResourceKind) error

	// ForceDelete clears the object's finalizers and deletes it with zero
	// grace. Last-resort path for objects that survive bulk deletion.
	ForceDelete(ctx context.Context, kind config.ResourceKind, name string) error

	// ListNamespaces returns the names of all namespaces.
	ListNamespaces(ctx context.Context) ([]string, error)

	// DeleteNamespace deletes a namespace, cascading its contents.
	DeleteNamespace(ctx context.Context, name string) error

	// Ready probes control-plane readiness.
	Ready(ctx context.Context) error

	// PodCount returns the cluster-wide pod total.
	PodCount(ctx context.Context) (int, error)

	// NodeCount returns the node total.
	NodeCount(ctx context.Context) (int, error)
}

// Client implements ResourceClient against a live API server using a typed
// clientset for core resources and a dynamic client for plan kinds.
type Client struct {
	clientset kubernetes.Interface
	dynamic   dynamic.Interface
	health    rest.Interface
}

// clearFinalizersPatch removes every finalizer in one merge patch.
var clearFinalizersPatch = []byte(`{"metadata":{"finalizers":null}}`)

// NewClient creates a new cluster client from a kubeconfig file. An empty
// path falls back to in-cluster configuration.
func NewClient(kubeconfigPath string) (*Client, error) {
	restConfig, err := clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build kubeconfig: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}

	dynamicClient, err := dynamic.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic client: %w", err)
	}

	return &Client{
		clientset: clientset,
		dynamic:   dynamicClient,
		health:    clientset.Discovery().RESTClient(),
	}, nil
}

// resourceInterface scopes the dynamic client to the kind's namespace when
// the kind is namespaced.
func (c *Client) resourceInterface(kind config.ResourceKind) dynamic.ResourceInterface {
	if kind.Namespaced() {
		return c.dynamic.Resource(kind.GVR()).Namespace(kind.Namespace)
	}
	return c.dynamic.Resource(kind.GVR())
}

// Count returns the number of live objects of the kind. A missing CRD
// counts as zero: a kind whose API no longer exists cannot recreate.
func (c *Client) Count(ctx context.Context, kind config.ResourceKind) (int, error) {
	list, err := c.resourceInterface(kind).List(ctx, metav1.ListOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to list %s: %w", kind.Kind, err)
	}
	return len(list.Items), nil
}

// List returns the names of live objects of the kind.
func (c *Client) List(ctx context.Context, kind config.ResourceKind) ([]string, error) {
	list, err := c.resourceInterface(kind).List(ctx, metav1.ListOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", kind.Kind, err)
	}

	names := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		names = append(names, item.GetName())
	}
	return names, nil
}

// DeleteCollection issues a bulk delete for all objects of the kind.
func (c *Client) DeleteCollection(ctx context.Context, kind config.ResourceKind) error {
	err := c.resourceInterface(kind).DeleteCollection(ctx, metav1.DeleteOptions{}, metav1.ListOptions{})
	if err != nil && !apierrors.IsNotFound(err) {
		return fmt.Errorf("failed to delete %s collection: %w", kind.Kind, err)
	}
	return nil
}

// ForceDelete clears finalizers and deletes the object with zero grace.
// A pending finalizer is the usual reason an object survives bulk delete;
// clearing it bypasses the owning controller's cleanup contract, which is
// only safe once that controller has itself been torn down.
func (c *Client) ForceDelete(ctx context.Context, kind config.ResourceKind, name string) error {
	ri := c.resourceInterface(kind)

	_, err := ri.Patch(ctx, name, types.MergePatchType, clearFinalizersPatch, metav1.PatchOptions{})
	if err != nil && !apierrors.IsNotFound(err) {
		return fmt.Errorf("failed to clear finalizers on %s %q: %w", kind.Kind, name, err)
	}

	grace := int64(0)
	err = ri.Delete(ctx, name, metav1.DeleteOptions{GracePeriodSeconds: &grace})
	if err != nil && !apierrors.IsNotFound(err) {
		return fmt.Errorf("failed to force delete %s %q: %w", kind.Kind, name, err)
	}
	return nil
}

// ListNamespaces returns the names of all namespaces.
func (c *Client) ListNamespaces(ctx context.Context) ([]string, error) {
	list, err := c.clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}

	names := make([]string, 0, len(list.Items))
	for _, ns := range list.Items {
		names = append(names, ns.Name)
	}
	return names, nil
}

// DeleteNamespace deletes a namespace. Termination cascades the remaining
// contents and completes asynchronously.
func (c *Client) DeleteNamespace(ctx context.Context, name string) error {
	err := c.clientset.CoreV1().Namespaces().Delete(ctx, name, metav1.DeleteOptions{})
	if err != nil && !apierrors.IsNotFound(err) {
		return fmt.Errorf("failed to delete namespace %q: %w", name, err)
	}
	return nil
}

// Ready probes the API server readiness endpoint.
func (c *Client) Ready(ctx context.Context) error {
	body, err := c.health.Get().AbsPath("/readyz").DoRaw(ctx)
	if err != nil {
		return fmt.Errorf("control plane not ready: %w", err)
	}
	if string(body) != "ok" {
		return fmt.Errorf("control plane not ready: %s", string(body))
	}
	return nil
}

// PodCount returns the cluster-wide pod total.
func (c *Client) PodCount(ctx context.Context) (int, error) {
	list, err := c.clientset.CoreV1().Pods(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to list pods: %w", err)
	}
	return len(list.Items), nil
}

// NodeCount returns the node total.
func (c *Client) NodeCount(ctx context.Context) (int, error) {
	list, err := c.clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to list nodes: %w", err)
	}
	return len(list.Items), nil
}
