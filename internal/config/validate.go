package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

var validate = validator.New()

// ValidateURL accepts absolute URLs only.
func ValidateURL(raw string) error {
	if err := validate.Var(raw, "required,url"); err != nil {
		return errors.ErrInvalidURL.WithError(err).WithContext("url", raw)
	}
	return nil
}

// ValidateConfig checks the invariants a persisted config must hold.
func ValidateConfig(cfg models.GlobalConfig) error {
	if err := cfg.Specification.Validate(); err != nil {
		return err
	}
	if err := cfg.Format.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(cfg); err != nil {
		return errors.ErrInvalidURL.WithError(err).WithContext("url", cfg.UpdateURL)
	}
	return nil
}
