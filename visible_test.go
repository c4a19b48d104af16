package chartkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVisibilityToggle(t *testing.T) {
	vis := NewVisibility()

	require.True(t, vis.Toggle(1))
	require.True(t, vis.Disabled(1))
	require.False(t, vis.Disabled(0))

	// toggling twice restores the original state
	require.False(t, vis.Toggle(1))
	require.False(t, vis.Disabled(1))
}

func TestVisibilityVisible(t *testing.T) {
	var (
		vis  = NewVisibility()
		sets = []Dataset{
			{Label: "a"},
			{Label: "b"},
			{Label: "c"},
		}
	)
	require.Len(t, vis.Visible(sets), 3)

	vis.Toggle(1)
	visible := vis.Visible(sets)
	require.Len(t, visible, 2)
	// relative order is preserved
	require.Equal(t, "a", visible[0].Label)
	require.Equal(t, "c", visible[1].Label)
	require.Equal(t, []int{0, 2}, vis.VisibleIndices(3))
}

func TestVisibilityShowHideAll(t *testing.T) {
	vis := NewVisibility()
	vis.HideAll(3)
	require.Empty(t, vis.Visible([]Dataset{{}, {}, {}}))

	vis.ShowAll()
	require.Len(t, vis.Visible([]Dataset{{}, {}, {}}), 3)
}
