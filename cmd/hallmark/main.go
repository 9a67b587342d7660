package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/term"
)

type cli struct {
	Mac    macCmd    `cmd:"" help:"Compute the tag of a message."`
	Verify verifyCmd `cmd:"" help:"Verify the tag of a message."`
	Rand   randCmd   `cmd:"" help:"Generate deterministic bytes from a seed."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// readKey reads the key from the given file, or prompts for a passphrase if no path was
// given.
func readKey(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}

	return askPassphrase("Enter key: ")
}

func askPassphrase(prompt string) ([]byte, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	return term.ReadPassword(int(os.Stdin.Fd()))
}

func openInput(path string) (io.ReadCloser, error) {
	src := os.Stdin

	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}

		src = f
	}

	return src, nil
}

func openOutput(path string) (io.WriteCloser, error) {
	dst := os.Stdout

	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}

		dst = f
	}

	return dst, nil
}
