package core

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags & texts
	matriculeTag   = "matricule"
	matriculeText  = "must be of form XXX-NNNN-NNNN"
	matriculeRegex = regexp.MustCompile(`^[A-Z]{3}-\d{4}-\d{4}$`)

	phoneTag   = "phone_sn"
	phoneText  = "must be a local 7-prefixed number of 9 digits"
	phoneRegex = regexp.MustCompile(`^7[05678]\d{7}$`)

	timeTag   = "time_hhmm"
	timeText  = "must be a 24-hour time of form HH:MM"
	timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

	noteRangeTag  = "note_range"
	noteRangeText = "must be between 0 and 20"

	requiredTag  = "required"
	requiredText = "this field is required"
)

// Instantiate the validator for use.
func init() {
	Validate = validator.New()

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = Validate.RegisterValidation(matriculeTag, matriculeValidation)
	RegisterCustomTranslation(matriculeTag, matriculeText)

	_ = Validate.RegisterValidation(phoneTag, phoneValidation)
	RegisterCustomTranslation(phoneTag, phoneText)

	_ = Validate.RegisterValidation(timeTag, timeValidation)
	RegisterCustomTranslation(timeTag, timeText)

	_ = Validate.RegisterValidation(noteRangeTag, noteRangeValidation)
	RegisterCustomTranslation(noteRangeTag, noteRangeText)

	RegisterCustomTranslation(requiredTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = Validate.RegisterTranslation(
		tag, Translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// TranslateValidationErrors flattens validator.ValidationErrors into FieldErrors.
func TranslateValidationErrors(err error) []FieldError {
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	flds := make([]FieldError, 0, len(vErrs))
	for _, vErr := range vErrs {
		flds = append(flds, FieldError{Field: vErr.Field(), Error: vErr.Translate(Translator)})
	}
	return flds
}

// Custom Global Validators

func matriculeValidation(fl validator.FieldLevel) bool {
	return IsValidMatricule(fl.Field().String())
}

func phoneValidation(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

func timeValidation(fl validator.FieldLevel) bool {
	return IsValidTime(fl.Field().String())
}

func noteRangeValidation(fl validator.FieldLevel) bool {
	return IsValidNote(fl.Field().Float())
}

// Pure predicates; handy for pre-submit checks outside struct validation.

// IsValidMatricule checks the institutional identifier format XXX-NNNN-NNNN.
func IsValidMatricule(s string) bool { return matriculeRegex.MatchString(s) }

// IsValidPhone checks the local mobile format: 7-prefix then 7 more digits.
func IsValidPhone(s string) bool { return phoneRegex.MatchString(s) }

// IsValidTime checks a 24-hour HH:MM string.
func IsValidTime(s string) bool { return timeRegex.MatchString(s) }

// IsValidNote checks the grading scale bounds.
func IsValidNote(v float64) bool { return v >= 0 && v <= 20 }

// IsValidDate checks that s parses as a YYYY-MM-DD date.
func IsValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
