package main

import (
	"context"
	"io"

	"github.com/fwojciec/wotd/deliver"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Phone is the normalized destination number. Set for send only.
	Phone string

	// Pipeline runs fetch, extract, and format; send wires a Sender
	// into it as well.
	Pipeline *deliver.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config

	Debug         bool `short:"d" help:"Log pipeline operations to stderr"`
	DefinitionCap int  `help:"Byte cap on the header and definition (default 120)"`
	MessageCap    int  `help:"Byte cap on the whole message (default 300)"`

	Send    SendCmd    `cmd:"" help:"Fetch today's word and text it to the configured phone"`
	Preview PreviewCmd `cmd:"" help:"Print the message that would be sent"`
}

// SendCmd is the "send" subcommand.
type SendCmd struct{}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct{}
