package gopaging

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_Metadata_Raw(t *testing.T) {
	m, err := NewMetadata(2, 10, 3, 45)
	require.NoError(t, err)

	want := RawMetadata{
		CurrentPage:      2,
		TotalPages:       5,
		TotalItemCount:   45,
		Skip:             10,
		ItemsPerPage:     10,
		MaxWindowSize:    3,
		Pages:            []int{1, 2, 3},
		HasPrevious:      true,
		PreviousPage:     1,
		HasNext:          true,
		NextPage:         3,
		HasMultiplePages: true,
		FromItem:         11,
		ToItem:           20,
	}
	if diff := cmp.Diff(want, m.Raw()); diff != "" {
		t.Errorf("raw metadata mismatch (-want +got):\n%s", diff)
	}
}

func Test_Metadata_JSON_RoundTrip(t *testing.T) {
	for _, total := range []int{0, 1, 45, 100} {
		for page := -1; page <= 12; page++ {
			m, err := NewMetadata(page, 10, 4, total)
			require.NoError(t, err)

			data, err := json.Marshal(m)
			require.NoError(t, err)

			var decoded Metadata
			require.NoError(t, json.Unmarshal(data, &decoded))
			require.Equal(t, m, decoded)
		}
	}
}

func Test_RawMetadata_Decode_RecomputesDerivedFields(t *testing.T) {
	raw := RawMetadata{
		CurrentPage:    9,
		TotalPages:     1000,
		TotalItemCount: 45,
		Skip:           -7,
		ItemsPerPage:   10,
		MaxWindowSize:  7,
		Pages:          []int{42},
		FromItem:       -1,
	}

	m, err := raw.Decode()
	require.NoError(t, err)

	require.Equal(t, 5, m.GetCurrentPage())
	require.Equal(t, 5, m.GetTotalPages())
	require.Equal(t, 40, m.GetSkip())
	require.Equal(t, []int{1, 2, 3, 4, 5}, m.GetPages())
	require.Equal(t, 41, m.GetFromItem())
}

func Test_RawMetadata_Decode_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		raw   RawMetadata
		param string
		value int
	}{
		{"zero items per page", RawMetadata{CurrentPage: 1, ItemsPerPage: 0, MaxWindowSize: 7, TotalItemCount: 3}, "itemsPerPage", 0},
		{"negative window", RawMetadata{CurrentPage: 1, ItemsPerPage: 5, MaxWindowSize: -2, TotalItemCount: 3}, "maxWindowSize", -2},
		{"negative total", RawMetadata{CurrentPage: 1, ItemsPerPage: 5, MaxWindowSize: 7, TotalItemCount: -1}, "totalItemCount", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.raw.Decode()
			require.ErrorIs(t, err, ErrInvalidConfiguration)

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			require.Equal(t, tt.param, cfgErr.Param)
			require.Equal(t, tt.value, cfgErr.Value)
		})
	}
}

func Test_Metadata_UnmarshalJSON_Malformed(t *testing.T) {
	var m Metadata
	require.Error(t, json.Unmarshal([]byte(`{"itemsPerPage":"ten"}`), &m))
}
