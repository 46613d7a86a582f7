package gopaging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NewWindow(t *testing.T) {
	tests := []struct {
		name      string
		skip      int
		take      int
		wantSkip  int
		wantTake  int
		wantEmpty bool
	}{
		{"positive values kept", 20, 10, 20, 10, false},
		{"negative skip clamped", -5, 10, 0, 10, false},
		{"negative take clamped", 0, -1, 0, 0, true},
		{"zero take is empty", 30, 0, 30, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow(tt.skip, tt.take)
			require.Equal(t, tt.wantSkip, w.GetSkip())
			require.Equal(t, tt.wantTake, w.GetTake())
			require.Equal(t, tt.wantEmpty, w.IsEmpty())
		})
	}
}

func Test_Window_ToSQL(t *testing.T) {
	require.Equal(t, "LIMIT 10", NewWindow(0, 10).ToSQL())
	require.Equal(t, "LIMIT 10 OFFSET 40", NewWindow(40, 10).ToSQL())
}

func Test_Window_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		skip      int
		take      int
		n         int
		wantStart int
		wantEnd   int
	}{
		{"inside", 10, 10, 45, 10, 20},
		{"tail shorter than take", 40, 10, 45, 40, 45},
		{"skip past end", 50, 10, 45, 45, 45},
		{"empty sequence", 0, 10, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := NewWindow(tt.skip, tt.take).Bounds(tt.n)
			require.Equal(t, tt.wantStart, start)
			require.Equal(t, tt.wantEnd, end)
		})
	}
}
