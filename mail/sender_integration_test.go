//go:build integration

package mail_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/wotd/mail"
	"github.com/stretchr/testify/require"
)

// Sends a real text message through the Gmail relay and the AT&T
// gateway. Needs the same credentials as the production binary.
func TestSender_Integration_DeliversSMS(t *testing.T) {
	t.Parallel()

	username := os.Getenv("GMAIL_ADDRESS")
	password := os.Getenv("GMAIL_APP_PASSWORD")
	phone := os.Getenv("PHONE_NUMBER")
	if username == "" || password == "" || phone == "" {
		t.Skip("GMAIL_ADDRESS, GMAIL_APP_PASSWORD, or PHONE_NUMBER not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sender, err := mail.NewSender(username, password)
	require.NoError(t, err)

	err = sender.Send(ctx, "wotd integration test message", phone)
	require.NoError(t, err)
}
