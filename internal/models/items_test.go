package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewType_Valid(t *testing.T) {
	t.Parallel()

	known := []ViewType{
		ViewAll, ViewOne, ViewMultiple, ViewRecentlyRead,
		ViewBookmarks, ViewDiscover, ViewNewsletters,
	}
	for _, v := range known {
		require.True(t, v.Valid(), "view %q", v)
	}

	require.False(t, ViewType("").Valid())
	require.False(t, ViewType("ALL").Valid(), "режимы регистрозависимы")
	require.False(t, ViewType("magic").Valid())
}

func TestSortOrder_Valid(t *testing.T) {
	t.Parallel()

	known := []SortOrder{
		SortLatest, SortOldest,
		SortReadabilityAsc, SortReadabilityDesc,
		SortContentLengthAsc, SortContentLengthDesc,
	}
	for _, s := range known {
		require.True(t, s.Valid(), "sort %q", s)
	}

	require.False(t, SortOrder("").Valid())
	require.False(t, SortOrder("Random").Valid())
}

func TestSortOrder_Descending(t *testing.T) {
	t.Parallel()

	require.False(t, SortOldest.Descending())
	require.True(t, SortLatest.Descending())
	// Немоделируемые варианты разрешаются в порядок по умолчанию.
	require.True(t, SortReadabilityAsc.Descending())
	require.True(t, SortContentLengthDesc.Descending())
}

func TestPlan_ContentSearch(t *testing.T) {
	t.Parallel()

	require.False(t, PlanFree.ContentSearch())
	require.True(t, PlanPro.ContentSearch())
	require.False(t, Plan("").ContentSearch())
	require.False(t, Plan("enterprise").ContentSearch(), "неизвестный тариф трактуется ограничительно")
}
