package cluster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	dynamicfake "k8s.io/client-go/dynamic/fake"
	k8sfake "k8s.io/client-go/kubernetes/fake"

	"github.com/kubesweep/kubesweep/internal/config"
)

var claimKind = config.ResourceKind{
	Kind:      "ApplicationClaim",
	Group:     "platform.example.org",
	Version:   "v1alpha1",
	Resource:  "applicationclaims",
	Namespace: "default",
}

var claimGVR = schema.GroupVersionResource{
	Group:    "platform.example.org",
	Version:  "v1alpha1",
	Resource: "applicationclaims",
}

func claim(name string, finalizers ...string) *unstructured.Unstructured {
	u := &unstructured.Unstructured{}
	u.SetAPIVersion("platform.example.org/v1alpha1")
	u.SetKind("ApplicationClaim")
	u.SetName(name)
	u.SetNamespace("default")
	if len(finalizers) > 0 {
		u.SetFinalizers(finalizers)
	}
	return u
}

func newTestClient(objects ...runtime.Object) *Client {
	dyn := dynamicfake.NewSimpleDynamicClientWithCustomListKinds(
		runtime.NewScheme(),
		map[schema.GroupVersionResource]string{claimGVR: "ApplicationClaimList"},
		objects...,
	)
	return &Client{
		clientset: k8sfake.NewClientset(),
		dynamic:   dyn,
	}
}

func TestClientImplementsResourceClient(_ *testing.T) {
	var _ ResourceClient = (*Client)(nil)
	var _ ResourceClient = (*MockClient)(nil)
}

func TestCount(t *testing.T) {
	client := newTestClient(claim("a"), claim("b"))

	n, err := client.Count(context.Background(), claimKind)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCount_Empty(t *testing.T) {
	client := newTestClient()

	n, err := client.Count(context.Background(), claimKind)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestList(t *testing.T) {
	client := newTestClient(claim("a"), claim("b"))

	names, err := client.List(context.Background(), claimKind)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, names)
}

func TestDeleteCollection(t *testing.T) {
	client := newTestClient(claim("a"), claim("b"))

	require.NoError(t, client.DeleteCollection(context.Background(), claimKind))

	n, err := client.Count(context.Background(), claimKind)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestForceDelete(t *testing.T) {
	client := newTestClient(claim("stuck", "platform.example.org/protect"))

	require.NoError(t, client.ForceDelete(context.Background(), claimKind, "stuck"))

	_, err := client.dynamic.Resource(claimGVR).Namespace("default").
		Get(context.Background(), "stuck", metav1.GetOptions{})
	assert.True(t, apierrors.IsNotFound(err))
}

func TestForceDelete_PatchesBeforeDeleting(t *testing.T) {
	dyn := dynamicfake.NewSimpleDynamicClientWithCustomListKinds(
		runtime.NewScheme(),
		map[schema.GroupVersionResource]string{claimGVR: "ApplicationClaimList"},
		claim("stuck", "platform.example.org/protect"),
	)
	client := &Client{clientset: k8sfake.NewClientset(), dynamic: dyn}

	require.NoError(t, client.ForceDelete(context.Background(), claimKind, "stuck"))

	var verbs []string
	for _, action := range dyn.Actions() {
		verbs = append(verbs, action.GetVerb())
	}
	assert.Equal(t, []string{"patch", "delete"}, verbs)
}

func TestForceDelete_AbsentObjectIsSuccess(t *testing.T) {
	client := newTestClient()

	assert.NoError(t, client.ForceDelete(context.Background(), claimKind, "gone"))
}

func TestDeleteNamespace_AbsentIsSuccess(t *testing.T) {
	client := newTestClient()

	assert.NoError(t, client.DeleteNamespace(context.Background(), "gone"))
}

func TestListNamespaces(t *testing.T) {
	client := newTestClient()
	client.clientset = k8sfake.NewClientset(
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "default"}},
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "test-service-a"}},
	)

	names, err := client.ListNamespaces(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"default", "test-service-a"}, names)
}

func TestDeleteNamespace(t *testing.T) {
	client := newTestClient()
	client.clientset = k8sfake.NewClientset(
		&corev1.Namespace{ObjectMeta: metav1.ObjectMeta{Name: "test-service-a"}},
	)

	require.NoError(t, client.DeleteNamespace(context.Background(), "test-service-a"))

	names, err := client.ListNamespaces(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestPodAndNodeCount(t *testing.T) {
	client := newTestClient()
	client.clientset = k8sfake.NewClientset(
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "p1", Namespace: "default"}},
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "p2", Namespace: "argo"}},
		&corev1.Node{ObjectMeta: metav1.ObjectMeta{Name: "n1"}},
	)

	pods, err := client.PodCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, pods)

	nodes, err := client.NodeCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, nodes)
}

func TestMockClientDefaults(t *testing.T) {
	m := &MockClient{}
	ctx := context.Background()

	n, err := m.Count(ctx, claimKind)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, m.Ready(ctx))
	require.NoError(t, m.DeleteCollection(ctx, claimKind))
	require.NoError(t, m.ForceDelete(ctx, claimKind, "x"))
	require.NoError(t, m.DeleteNamespace(ctx, "x"))

	names, err := m.ListNamespaces(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}
