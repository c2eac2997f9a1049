package academic

import (
	"github.com/go-playground/validator/v10"

	"github.com/gourbalissakh/scolaris/core"
)

var (
	validDayTag  = "valid_day"
	validDayText = "must be a schedulable week day"

	timeOrderTag  = "time_order"
	timeOrderText = "start time must be before end time"
)

// register custom validators
func init() {
	_ = core.Validate.RegisterValidation(validDayTag, dayValidation)
	core.RegisterCustomTranslation(validDayTag, validDayText)
	core.RegisterCustomTranslation(timeOrderTag, timeOrderText)

	core.Validate.RegisterStructValidation(newEmploiStructValidation, NewEmploiTemps{})
}

// Custom Validators

func dayValidation(fl validator.FieldLevel) bool {
	return IsValidDay(fl.Field().String())
}

// newEmploiStructValidation does NewEmploiTemps' struct level validation
func newEmploiStructValidation(sl validator.StructLevel) {
	if slot, ok := sl.Current().Interface().(NewEmploiTemps); ok {
		if !IsValidDay(slot.Jour) {
			sl.ReportError(slot.Jour, "jour", "Jour", validDayTag, "")
		}
		start, err1 := ParseTimeOfDay(slot.HeureDeb)
		end, err2 := ParseTimeOfDay(slot.HeureFin)
		if err1 == nil && err2 == nil && start >= end {
			sl.ReportError(slot.HeureDeb, "heure_debut", "HeureDeb", timeOrderTag, "")
		}
	}
}
