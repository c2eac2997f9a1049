package academic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("08:30")
	assert.NoError(t, err)
	assert.Equal(t, 8*60+30, got)

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("8h30")
	assert.Error(t, err)
}

func TestCheckSlotConflicts(t *testing.T) {
	existing := []EmploiTemps{
		{ID: 1, Code: "INF-L1", ClasseID: 3, Jour: "Lundi", HeureDeb: "08:00", HeureFin: "10:00"},
		{ID: 2, Code: "MAT-L1", ClasseID: 3, Jour: "Mardi", HeureDeb: "08:00", HeureFin: "10:00"},
	}

	tests := []struct {
		name string
		slot NewEmploiTemps
		want int // conflict count
	}{
		{
			name: "free range on same day",
			slot: NewEmploiTemps{ClasseID: 3, Jour: "Lundi", HeureDeb: "10:00", HeureFin: "12:00"},
			want: 0,
		},
		{
			name: "overlapping same class same day",
			slot: NewEmploiTemps{ClasseID: 3, Jour: "Lundi", HeureDeb: "09:00", HeureFin: "11:00"},
			want: 1,
		},
		{
			name: "same range other class",
			slot: NewEmploiTemps{ClasseID: 4, Jour: "Lundi", HeureDeb: "08:00", HeureFin: "10:00"},
			want: 0,
		},
		{
			name: "same range other day",
			slot: NewEmploiTemps{ClasseID: 3, Jour: "Jeudi", HeureDeb: "08:00", HeureFin: "10:00"},
			want: 0,
		},
		{
			name: "inverted range",
			slot: NewEmploiTemps{ClasseID: 3, Jour: "Lundi", HeureDeb: "12:00", HeureFin: "10:00"},
			want: 1,
		},
		{
			name: "unschedulable day",
			slot: NewEmploiTemps{ClasseID: 3, Jour: "Dimanche", HeureDeb: "08:00", HeureFin: "10:00"},
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckSlotConflicts(tt.slot, existing)
			assert.Equal(t, tt.want, len(got))
		})
	}
}

func TestSlotsForDayDoesNotMutate(t *testing.T) {
	slots := []EmploiTemps{
		{ID: 1, Jour: "Lundi"},
		{ID: 2, Jour: "Mardi"},
		{ID: 3, Jour: "Lundi"},
	}
	got := SlotsForDay(slots, "Lundi")
	assert.Equal(t, 2, len(got))
	assert.Equal(t, 3, len(slots))
	assert.Equal(t, "Mardi", slots[1].Jour)
}

func TestToday(t *testing.T) {
	monday := time.Date(2021, 3, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "Lundi", Today(monday))
	sunday := time.Date(2021, 3, 7, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "", Today(sunday))
}
