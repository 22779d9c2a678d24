package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Placeholder values from .env.example that should never reach a deployment
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate range-checks a loaded configuration
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s (value: %v)", fe.Namespace(), fieldRule(fe), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func fieldRule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

// Warnings returns non-fatal problems with a configuration, such as
// example secrets or disabled repair contexts.
func Warnings(cfg *Config) []string {
	var warnings []string

	if cfg.DBPassword == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if cfg.APIKey == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if cfg.RepairFactorQuick == 0 {
		warnings = append(warnings, "REPAIR_FACTOR_QUICK is 0 - quick repairs are disabled")
	}
	if cfg.RepairFactorAnvil == 0 {
		warnings = append(warnings, "REPAIR_FACTOR_ANVIL is 0 - anvil repairs are disabled")
	}

	return warnings
}
