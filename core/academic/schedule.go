package academic

import (
	"errors"
	"fmt"
	"time"
)

var (
	errBadTime      = errors.New("invalid HH:MM time")
	errBadTimeOrder = errors.New("start time must be before end time")
)

// ParseTimeOfDay turns an "HH:MM" string into minutes since midnight.
func ParseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, errBadTime
	}
	return t.Hour()*60 + t.Minute(), nil
}

// SlotConflict describes one violated scheduling rule for a slot.
type SlotConflict struct {
	Rule string
	With *EmploiTemps // set when the rule involves another slot
}

func (c SlotConflict) String() string {
	if c.With != nil {
		return fmt.Sprintf("%s (slot %s, %s %s-%s)", c.Rule, c.With.Code, c.With.Jour, c.With.HeureDeb, c.With.HeureFin)
	}
	return c.Rule
}

// CheckSlotConflicts validates a new slot against scheduling rules and the
// already-known slots of the same class: the day must be schedulable, the
// range well-ordered, and no existing slot of the class may overlap it on
// the same day. An empty result means the slot is placeable.
func CheckSlotConflicts(slot NewEmploiTemps, existing []EmploiTemps) []SlotConflict {
	var conflicts []SlotConflict

	if !IsValidDay(slot.Jour) {
		conflicts = append(conflicts, SlotConflict{Rule: fmt.Sprintf("%q is not a schedulable day", slot.Jour)})
	}

	start, err := ParseTimeOfDay(slot.HeureDeb)
	if err != nil {
		conflicts = append(conflicts, SlotConflict{Rule: "invalid start time " + slot.HeureDeb})
	}
	end, err := ParseTimeOfDay(slot.HeureFin)
	if err != nil {
		conflicts = append(conflicts, SlotConflict{Rule: "invalid end time " + slot.HeureFin})
	}
	if len(conflicts) > 0 {
		return conflicts
	}

	if start >= end {
		return append(conflicts, SlotConflict{Rule: errBadTimeOrder.Error()})
	}

	for i := range existing {
		other := &existing[i]
		if other.ClasseID != slot.ClasseID || other.Jour != slot.Jour {
			continue
		}
		oStart, err := ParseTimeOfDay(other.HeureDeb)
		if err != nil {
			continue // unparseable server data cannot be conflicted with
		}
		oEnd, err := ParseTimeOfDay(other.HeureFin)
		if err != nil {
			continue
		}
		if start < oEnd && oStart < end {
			conflicts = append(conflicts, SlotConflict{Rule: "overlaps an existing slot of this class", With: other})
		}
	}
	return conflicts
}

// SlotsForDay filters the slots falling on the given day, keeping input order.
// The source slice is never modified.
func SlotsForDay(slots []EmploiTemps, day string) []EmploiTemps {
	out := make([]EmploiTemps, 0)
	for _, s := range slots {
		if s.Jour == day {
			out = append(out, s)
		}
	}
	return out
}

// Today maps the current weekday onto the schedulable day names;
// empty on Sunday.
func Today(now time.Time) string {
	switch now.Weekday() {
	case time.Monday:
		return "Lundi"
	case time.Tuesday:
		return "Mardi"
	case time.Wednesday:
		return "Mercredi"
	case time.Thursday:
		return "Jeudi"
	case time.Friday:
		return "Vendredi"
	case time.Saturday:
		return "Samedi"
	}
	return ""
}
