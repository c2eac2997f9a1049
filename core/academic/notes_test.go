package academic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedAverage(t *testing.T) {
	tests := []struct {
		name  string
		notes []Note
		want  float64
	}{
		{name: "empty set is 0, not NaN", notes: nil, want: 0},
		{
			name:  "zero total coefficient is 0",
			notes: []Note{{Valeur: 12, Coefficient: 0}},
			want:  0,
		},
		{
			name:  "single note",
			notes: []Note{{Valeur: 15, Coefficient: 2}},
			want:  15,
		},
		{
			name: "weights applied",
			notes: []Note{
				{Valeur: 10, Coefficient: 1},
				{Valeur: 16, Coefficient: 3},
			},
			want: 14.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedAverage(tt.notes)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAveragesByCours(t *testing.T) {
	notes := []Note{
		{CoursID: 1, Valeur: 10, Coefficient: 1},
		{CoursID: 1, Valeur: 14, Coefficient: 1},
		{CoursID: 2, Valeur: 8, Coefficient: 2},
	}
	avgs := AveragesByCours(notes)
	assert.Equal(t, 2, len(avgs))
	assert.Equal(t, 12.0, avgs[1])
	assert.Equal(t, 8.0, avgs[2])
}
