package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GearRepair_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	_ = v.RegisterValidation("material_key", validateMaterialKey)
	_ = v.RegisterValidation("material_form", validateMaterialForm)
	_ = v.RegisterValidation("repair_type", validateRepairType)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(func() {
		if validate == nil {
			InitValidator()
		}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a map keyed by field
// name, without leaking internal struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "material_key":
			errs[field] = "Invalid material key, expected <material> or <material>#<GRADE>"
		case "material_form":
			errs[field] = "Invalid material form, expected item or fragment"
		case "repair_type":
			errs[field] = "Invalid repair type, expected QUICK or ANVIL"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be greater than or equal to %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "ltefield":
			errs[field] = fmt.Sprintf("Must not exceed %s", strings.ToLower(e.Param()))
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateMaterialKey(fl validator.FieldLevel) bool {
	key := strings.TrimSpace(fl.Field().String())
	if key == "" {
		return true
	}
	_, err := domain.ParseShorthand(strings.ToLower(key))
	return err == nil
}

func validateMaterialForm(fl validator.FieldLevel) bool {
	_, ok := domain.MaterialForm(strings.ToLower(fl.Field().String())).Value()
	return ok
}

// Empty repair types are allowed and mean QUICK
func validateRepairType(fl validator.FieldLevel) bool {
	_, err := domain.ParseRepairContextType(fl.Field().String())
	return err == nil
}
