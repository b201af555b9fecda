package generics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("size zero returns everything", func(t *testing.T) {
		page := BuildPage(items, 0, 0)
		require.Equal(t, 1, page.Page)
		require.Equal(t, 5, page.TotalResults)
		require.Equal(t, 1, page.TotalPages)
		require.Equal(t, items, page.Content)
	})

	t.Run("middle page", func(t *testing.T) {
		page := BuildPage(items, 2, 2)
		require.Equal(t, []int{3, 4}, page.Content)
		require.Equal(t, 3, page.TotalPages)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		page := BuildPage(items, 9, 2)
		require.Empty(t, page.Content)
		require.Equal(t, 5, page.TotalResults)
	})
}

func TestStringToInt(t *testing.T) {
	require.Equal(t, 42, StringToInt("42"))
	require.Equal(t, 0, StringToInt(""))
	require.Equal(t, 0, StringToInt("abc"))
}
