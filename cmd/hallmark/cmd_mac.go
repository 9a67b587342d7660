package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/codahale/hallmark"
)

type macCmd struct {
	Message string `arg:"" optional:"" default:"-" help:"The path to the message ('-' for stdin)."`

	Key string `type:"existingfile" help:"The path to the key file. Prompts for a passphrase if absent."`
}

func (cmd *macCmd) Run(_ *kong.Context) error {
	// Read the key.
	key, err := readKey(cmd.Key)
	if err != nil {
		return err
	}

	// Open the message input.
	src, err := openInput(cmd.Message)
	if err != nil {
		return err
	}

	defer func() { _ = src.Close() }()

	// Absorb the message.
	m := hallmark.New(key)
	if _, err := io.Copy(m, src); err != nil {
		return err
	}

	// Print the tag as base58 text.
	tag := m.Finish()
	fmt.Println(tag.String())

	return nil
}
