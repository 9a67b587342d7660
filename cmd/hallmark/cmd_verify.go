package main

import (
	"errors"
	"io"

	"github.com/alecthomas/kong"
	"github.com/codahale/hallmark"
)

// errInvalidTag is returned when a tag, key, and message do not match.
var errInvalidTag = errors.New("invalid tag")

type verifyCmd struct {
	Message string `arg:"" help:"The path to the message ('-' for stdin)."`
	Tag     string `arg:"" help:"The base58 tag to verify."`

	Key string `type:"existingfile" help:"The path to the key file. Prompts for a passphrase if absent."`
}

func (cmd *verifyCmd) Run(_ *kong.Context) error {
	// Decode the tag.
	var tag hallmark.Tag
	if err := tag.UnmarshalText([]byte(cmd.Tag)); err != nil {
		return err
	}

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

	// Recompute the tag over the message.
	m := hallmark.New(key)
	if _, err := io.Copy(m, src); err != nil {
		return err
	}

	// Compare tags in constant time.
	actual := m.Finish()
	if !tag.Equal(&actual) {
		return errInvalidTag
	}

	return nil
}
