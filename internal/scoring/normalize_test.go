package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []float64
	}{
		{
			name:   "empty input",
			values: []float64{},
			want:   []float64{},
		},
		{
			name:   "zero spread yields all zeros",
			values: []float64{5, 5, 5},
			want:   []float64{0, 0, 0},
		},
		{
			name:   "linear rescale",
			values: []float64{1, 2, 3},
			want:   []float64{0, 0.5, 1},
		},
		{
			name:   "single value yields zero",
			values: []float64{42},
			want:   []float64{0},
		},
		{
			name:   "negative values",
			values: []float64{-10, 0, 10},
			want:   []float64{0, 0.5, 1},
		},
		{
			name:   "unsorted input keeps order",
			values: []float64{3, 1, 2},
			want:   []float64{1, 0, 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.values)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeBounds(t *testing.T) {
	values := []float64{-123.4, 0, 99, 5000, 0.001}
	got := Normalize(values)

	if len(got) != len(values) {
		t.Fatalf("Normalize() length = %d, want %d", len(got), len(values))
	}
	for i, v := range got {
		if v < 0 || v > 1 {
			t.Errorf("Normalize()[%d] = %f, out of [0,1]", i, v)
		}
	}
}

func TestNormalizeOutlierCompression(t *testing.T) {
	// 선형 스케일: 아웃라이어가 나머지를 0 근처로 압축한다
	got := Normalize([]float64{1, 2, 1000})

	assert.Equal(t, 0.0, got[0])
	assert.Less(t, got[1], 0.01)
	assert.Equal(t, 1.0, got[2])
}
