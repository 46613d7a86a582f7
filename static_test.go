package gopaging

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func Test_NewStaticPage(t *testing.T) {
	subset := []string{"k", "l", "m"}

	p, err := NewStaticPage(subset, 4, 3, 7, 20)
	require.NoError(t, err)

	require.Equal(t, subset, p.Items())
	require.Equal(t, 4, p.Metadata().GetCurrentPage())
	require.Equal(t, 7, p.Metadata().GetTotalPages())
	require.Equal(t, 9, p.Metadata().GetSkip())
	require.Equal(t, 10, p.Metadata().GetFromItem())
	require.Equal(t, 12, p.Metadata().GetToItem())
}

func Test_NewStaticPage_DoesNotTrim(t *testing.T) {
	subset := lo.Range(8)

	p, err := NewStaticPage(subset, 1, 3, 7, 20)
	require.NoError(t, err)

	require.Equal(t, 8, p.Len())
	require.Equal(t, subset, p.Items())
}

func Test_NewStaticPage_ConfigurationError(t *testing.T) {
	_, err := NewStaticPage([]int{1}, 1, 1, 0, 1)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func Test_WrapPage_RoundTrip(t *testing.T) {
	items := lo.Range(45)

	for page := 0; page <= 6; page++ {
		original, err := NewMaterializedPage(items, page, 10, 3)
		require.NoError(t, err)

		wrapped, err := WrapPage(original.Items(), original.Metadata())
		require.NoError(t, err)

		require.Equal(t, original.Metadata(), wrapped.Metadata())
		require.Equal(t, original.Items(), wrapped.Items())
	}
}

func Test_WrapPage_ZeroMetadata(t *testing.T) {
	_, err := WrapPage([]int{1}, Metadata{})
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}
