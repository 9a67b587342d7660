package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/codahale/hallmark/drbg"
)

type randCmd struct {
	N      int64  `arg:"" help:"The number of bytes to generate."`
	Output string `arg:"" optional:"" default:"-" type:"path" help:"The path to the output ('-' for stdout)."`

	Seed            string `required:"" type:"existingfile" help:"The path to the seed file."`
	Personalization string `help:"An optional personalization string."`
}

func (cmd *randCmd) Run(_ *kong.Context) error {
	// Read the seed.
	seed, err := os.ReadFile(cmd.Seed)
	if err != nil {
		return err
	}

	// Open the output.
	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	// Generate N bytes, deterministic over the seed and personalization string.
	g := drbg.New(seed, nil, []byte(cmd.Personalization))
	_, err = io.CopyN(dst, g, cmd.N)

	return err
}
