package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Config carries the delivery settings. Values conventionally come from
// the environment (a .env file in development); flags override them.
type Config struct {
	PhoneNumber      string `env:"PHONE_NUMBER" help:"Destination phone number (10 digits)" validate:"required,len=10,numeric"`
	GmailAddress     string `env:"GMAIL_ADDRESS" help:"Gmail address used as the SMTP relay" validate:"required,email"`
	GmailAppPassword string `env:"GMAIL_APP_PASSWORD" help:"App password for the relay account" validate:"required"`
	FeedURL          string `env:"WOTD_FEED_URL" help:"Word-of-the-day feed URL"`
	Gateway          string `env:"SMS_GATEWAY" help:"Carrier email-to-SMS gateway domain (default txt.att.net)"`
	SMTPHost         string `env:"SMTP_HOST" help:"SMTP relay host (default smtp.gmail.com)"`
	SMTPPort         int    `env:"SMTP_PORT" help:"SMTP relay port (default 465)"`
}

// Normalize prepares raw environment values for validation. Phone
// numbers arrive in whatever shape people write them ("(555) 123-4567",
// "555.123.4567"); only the digits matter to the gateway.
func (c *Config) Normalize() {
	c.PhoneNumber = digitsOnly(c.PhoneNumber)
}

// Validate checks that the delivery settings are complete. Failures
// name the offending environment variables.
func (c *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return nil
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	// Report fields by their environment variable names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("env")
	})

	return validate, trans, nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
