package main_test

import (
	"testing"

	main "github.com/fwojciec/wotd/cmd/wotd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("strips formatting from the phone number", func(t *testing.T) {
		t.Parallel()

		for input, want := range map[string]string{
			"(555) 123-4567": "5551234567",
			"555.123.4567":   "5551234567",
			"555 123 4567":   "5551234567",
			"5551234567":     "5551234567",
		} {
			cfg := &main.Config{PhoneNumber: input}
			cfg.Normalize()
			assert.Equal(t, want, cfg.PhoneNumber, "input %q", input)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *main.Config {
		return &main.Config{
			PhoneNumber:      "5551234567",
			GmailAddress:     "relay@gmail.com",
			GmailAppPassword: "app-password",
		}
	}

	t.Run("accepts a complete configuration", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, valid().Validate())
	})

	t.Run("names every missing variable", func(t *testing.T) {
		t.Parallel()

		err := (&main.Config{}).Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "PHONE_NUMBER")
		assert.Contains(t, err.Error(), "GMAIL_ADDRESS")
		assert.Contains(t, err.Error(), "GMAIL_APP_PASSWORD")
	})

	t.Run("rejects a phone number that is not 10 digits", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.PhoneNumber = "555123456"

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "PHONE_NUMBER")
		assert.Contains(t, err.Error(), "10")
	})

	t.Run("rejects a relay address that is not an email", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.GmailAddress = "not-an-email"

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "GMAIL_ADDRESS")
	})
}
