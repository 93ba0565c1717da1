package kubeconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	first := New()
	first.CurrentContext = "a"
	first.Clusters = []*ClusterConfig{{Name: "a", Cluster: Cluster{Server: "https://a"}}}

	second := New()
	second.CurrentContext = "b"
	second.Clusters = []*ClusterConfig{{Name: "b", Cluster: Cluster{Server: "https://b"}}}
	second.Users = []*UserConfig{{Name: "b", User: AuthInfo{Token: "t"}}}

	got, err := Merge(first, nil, second)
	require.NoError(t, err)

	assert.Equal(t, "a", got.CurrentContext)
	require.Len(t, got.Clusters, 1)
	assert.Equal(t, "a", got.Clusters[0].Name)
	require.Len(t, got.Users, 1)
	assert.Equal(t, "b", got.Users[0].Name)
	assert.Empty(t, got.Contexts)
}

func TestMergeNothing(t *testing.T) {
	_, err := Merge()
	assert.EqualError(t, err, "no config to merge")
}
