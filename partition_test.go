package gopaging

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func Test_Partition(t *testing.T) {
	tests := []struct {
		name     string
		items    []int
		pageSize int
		lens     []int
	}{
		{"uneven tail", lo.Range(45), 10, []int{10, 10, 10, 10, 5}},
		{"exact multiple", lo.Range(40), 10, []int{10, 10, 10, 10}},
		{"single chunk", lo.Range(3), 10, []int{3}},
		{"size one", lo.Range(3), 1, []int{1, 1, 1}},
		{"empty", nil, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, err := Partition(tt.items, tt.pageSize)
			require.NoError(t, err)

			var lens []int
			for _, chunk := range chunks {
				lens = append(lens, len(chunk))
			}
			require.Equal(t, tt.lens, lens)
			if len(tt.items) > 0 {
				require.Equal(t, tt.items, lo.Flatten(chunks))
			}
		})
	}
}

func Test_Partition_CopiesChunks(t *testing.T) {
	items := lo.Range(6)

	chunks, err := Partition(items, 4)
	require.NoError(t, err)

	chunks[0][0] = 42
	require.Equal(t, 0, items[0])
}

func Test_Partition_InvalidSize(t *testing.T) {
	_, err := Partition([]int{1}, 0)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	require.ErrorContains(t, err, "pageSize")
}

func Test_Split(t *testing.T) {
	tests := []struct {
		name   string
		items  []int
		groups int
		want   [][]int
	}{
		{"round robin", lo.Range(7), 3, [][]int{{0, 3, 6}, {1, 4}, {2, 5}}},
		{"more groups than items", lo.Range(2), 5, [][]int{{0}, {1}}},
		{"one group", lo.Range(3), 1, [][]int{{0, 1, 2}}},
		{"empty", nil, 3, [][]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.items, tt.groups)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_Split_InvalidGroups(t *testing.T) {
	_, err := Split([]int{1}, -1)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	require.ErrorContains(t, err, "groups")
}
