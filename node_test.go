package keypath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeBoundaryContiguity(t *testing.T) {
	// the scan is greedy and contiguous from the start; the trailing
	// children[2] after the foo.bar break is field path, not address
	p := MustNew("children[0].children[1].foo.bar.children[2]")

	assert.Equal(t, []int{0, 1}, p.NodeIndexes())
	assert.Equal(t, "children[0].children[1]", p.LastNodePath().String())
	assert.Equal(t, "children[0]", p.FirstNodePath().String())
	assert.Equal(t, "foo.bar.children[2]", p.AfterNodePath().String())
}

func TestNodeLeadingIndex(t *testing.T) {
	p := MustNew("[2].children[0].title")

	assert.Equal(t, []int{2, 0}, p.NodeIndexes())
	assert.Equal(t, "[2].children[0]", p.LastNodePath().String())
	assert.Equal(t, "[2]", p.FirstNodePath().String())
	assert.Equal(t, "title", p.AfterNodePath().String())
}

func TestNodeNoAddress(t *testing.T) {
	p := MustNew("foo.bar")

	assert.Empty(t, p.NodeIndexes())
	assert.Zero(t, p.LastNodePath().Len())
	assert.Zero(t, p.FirstNodePath().Len())
	assert.Equal(t, "foo.bar", p.AfterNodePath().String())
}

func TestNodePropertyWithoutIndex(t *testing.T) {
	// a child-container property not immediately followed by an index
	// stops the scan
	p := MustNew("children.foo")
	assert.Empty(t, p.NodeIndexes())
	assert.Equal(t, "children.foo", p.AfterNodePath().String())
}

func TestNodeCustomContainers(t *testing.T) {
	p := MustNew("items[3].items[1].label", WithChildContainers("items"))

	assert.Equal(t, []int{3, 1}, p.NodeIndexes())
	assert.Equal(t, "items[3].items[1]", p.LastNodePath().String())
	assert.Equal(t, "label", p.AfterNodePath().String())

	// with the default set, items is an ordinary property
	q := MustNew("items[3].items[1].label")
	assert.Empty(t, q.NodeIndexes())
}

func TestStepBack(t *testing.T) {
	p := MustNew("children[0].children[1].children[2].foo")

	back, err := p.StepBack(1)
	require.NoError(t, err)
	assert.Equal(t, "children[0].children[1]", back.String())

	back, err = p.StepBack(0)
	require.NoError(t, err)
	assert.Equal(t, "children[0].children[1].children[2]", back.String())

	// clamped at the root
	back, err = p.StepBack(10)
	require.NoError(t, err)
	assert.Zero(t, back.Len())

	_, err = p.StepBack(-1)
	require.ErrorIs(t, err, ErrRange)
}

func TestNodePaths(t *testing.T) {
	p := MustNew("children[0].children[1].foo")

	var got []string
	for np := range p.NodePaths() {
		got = append(got, np.String())
	}
	assert.Equal(t, []string{"", "children[0]", "children[0].children[1]"}, got)

	// the sequence is restartable
	n := 0
	for range p.NodePaths() {
		n++
	}
	assert.Equal(t, 3, n)

	// the root is yielded even for an empty path
	empty := MustNew("")
	var roots []string
	for np := range empty.NodePaths() {
		roots = append(roots, np.String())
	}
	assert.Equal(t, []string{""}, roots)
}
