// Package validation checks request payloads and renders readable messages.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// custom validation tags & texts
	alphaNumUnderTag   = "alphanum_"
	alphaNumUnderText  = "{0} may only contain letters, digits and underscores"
	alphaNumUnderRegex = regexp.MustCompile(`^\w+$`)

	docTypeTag   = "doctype"
	docTypeText  = "{0} must be 1 to 50 letters, digits or underscores"
	docTypeRegex = regexp.MustCompile(`^[A-Za-z0-9_]{1,50}$`)
)

// Errors maps a JSON field name to a message. Nil means the value is valid.
type Errors map[string]string

type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(alphaNumUnderTag, func(fl validator.FieldLevel) bool {
		return alphaNumUnderRegex.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation(docTypeTag, func(fl validator.FieldLevel) bool {
		return docTypeRegex.MatchString(fl.Field().String())
	})

	registerTranslation(validate, translator, alphaNumUnderTag, alphaNumUnderText)
	registerTranslation(validate, translator, docTypeTag, docTypeText)

	return &Validator{validate: validate, translator: translator}
}

func registerTranslation(validate *validator.Validate, translator ut.Translator, tag, text string) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, false) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field(), fe.Param())
			return s
		},
	)
}

// Struct validates v and returns the translated failures.
func (v *Validator) Struct(s any) Errors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"_": err.Error()}
	}
	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Translate(v.translator)
	}
	return out
}

// Var validates a single value against tag, e.g. "doctype".
func (v *Validator) Var(field any, tag string) error {
	return v.validate.Var(field, tag)
}
