package service

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	apperrors "quickdesk-backend/internal/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const (
	emailDomainTag = "email_domain"
	maxBytesTag    = "maxbytes"
)

// Validator validates request structs and renders per-field English messages
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewValidator creates a validator with English translations and the
// signup-specific rules registered
func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, trans)

	_ = validate.RegisterTranslation(emailDomainTag, trans, func(t ut.Translator) error {
		return t.Add(emailDomainTag, "{0} must be an address at {1}", true)
	}, func(t ut.Translator, fe validator.FieldError) string {
		msg, _ := t.T(emailDomainTag, fe.Field(), fe.Param())
		return msg
	})
	validate.RegisterStructValidation(signupStructLevel, SignupRequest{})

	// bcrypt rejects passwords over 72 bytes, whatever their character count
	_ = validate.RegisterValidation(maxBytesTag, maxBytes)
	_ = validate.RegisterTranslation(maxBytesTag, trans, func(t ut.Translator) error {
		return t.Add(maxBytesTag, "{0} must be at most {1} bytes long", true)
	}, func(t ut.Translator, fe validator.FieldError) string {
		msg, _ := t.T(maxBytesTag, fe.Field(), fe.Param())
		return msg
	})

	return &Validator{validate: validate, trans: trans}
}

// Struct validates s and converts failures into a ValidationError with one
// message per field
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = fe.Translate(v.trans)
		}
	}
	return apperrors.NewFieldValidationError(fields)
}

// signupStructLevel requires the email to belong to the declared domain
func signupStructLevel(sl validator.StructLevel) {
	req := sl.Current().Interface().(SignupRequest)
	if req.Email == "" || req.Domain == "" {
		return
	}
	if !strings.HasSuffix(req.Email, "@"+req.Domain) {
		sl.ReportError(req.Email, "email", "Email", emailDomainTag, req.Domain)
	}
}

// maxBytes checks the UTF-8 byte length of a string field against the tag param
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// requireEmail validates a bare email parameter
func requireEmail(email string) error {
	if email == "" {
		return apperrors.NewFieldValidationError(map[string]string{"email": "email is required"})
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
