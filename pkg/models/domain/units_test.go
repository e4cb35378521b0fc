package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		from string
		to   string
		want float64
	}{
		{"identity", 42, "lbm", "lbm", 42},
		{"kg to lbm", 1, "kg", "lbm", 1 / 0.45359237},
		{"lbm to kg", 1, "lbm", "kg", 0.45359237},
		{"s to min", 120, "s", "min", 2},
		{"h to min", 2, "h", "min", 120},
		{"m to nmi", 1852, "m", "nmi", 1},
		{"km to nmi", 1.852, "km", "nmi", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.v, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	t.Run("unknown unit", func(t *testing.T) {
		_, err := Convert(1, "slug", "lbm")
		assert.Error(t, err)
	})

	t.Run("cross dimension", func(t *testing.T) {
		_, err := Convert(1, "kg", "min")
		assert.Error(t, err)
	})
}

func TestConvertSlice(t *testing.T) {
	got, err := ConvertSlice([]float64{60, 120, 180}, "s", "min")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)

	same, err := ConvertSlice([]float64{1, 2}, "min", "min")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, same)
}
