package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wotd"
	"github.com/fwojciec/wotd/deliver"
	"github.com/fwojciec/wotd/gofeed"
	"github.com/fwojciec/wotd/goquery"
	"github.com/fwojciec/wotd/mail"
	wotdslog "github.com/fwojciec/wotd/slog"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// Credentials conventionally live in a .env file during
	// development; production environments set them directly.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wotd"),
		kong.Description("Texts the word of the day to your phone"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wotd --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.Config.Normalize()

	// Wire the pipeline stages
	var feedOpts []gofeed.Option
	if cli.FeedURL != "" {
		feedOpts = append(feedOpts, gofeed.WithURL(cli.FeedURL))
	}

	pipeline := &deliver.Pipeline{
		Feed:      gofeed.NewSource(feedOpts...),
		Extractor: goquery.NewExtractor(),
		Limits: wotd.Limits{
			DefinitionCap: cli.DefinitionCap,
			MessageCap:    cli.MessageCap,
		},
	}

	// Wire command-specific dependencies
	if kongCtx.Command() == "send" {
		if err := cli.Config.Validate(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set PHONE_NUMBER, GMAIL_ADDRESS, and GMAIL_APP_PASSWORD (a .env file works)")
			return err
		}

		var senderOpts []mail.Option
		if cli.Gateway != "" {
			senderOpts = append(senderOpts, mail.WithGateway(cli.Gateway))
		}
		if cli.SMTPHost != "" {
			senderOpts = append(senderOpts, mail.WithHost(cli.SMTPHost))
		}
		if cli.SMTPPort != 0 {
			senderOpts = append(senderOpts, mail.WithPort(cli.SMTPPort))
		}

		sender, err := mail.NewSender(cli.GmailAddress, cli.GmailAppPassword, senderOpts...)
		if err != nil {
			return fmt.Errorf("failed to create sender: %w", err)
		}

		deps.Phone = cli.PhoneNumber
		pipeline.Sender = sender
	}

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		pipeline.Feed = wotdslog.NewLoggingFeedSource(pipeline.Feed, logger)
		pipeline.Extractor = wotdslog.NewLoggingExtractor(pipeline.Extractor, logger)
		if pipeline.Sender != nil {
			pipeline.Sender = wotdslog.NewLoggingSender(pipeline.Sender, logger)
		}
	}

	deps.Pipeline = pipeline

	return kongCtx.Run(deps)
}
