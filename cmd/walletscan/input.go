package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Klingon-tech/walletscan/pkg/hdwallet"
)

var errEmptyInput = errors.New("expected either a mnemonic or a mnemonic entropy")

// inputKind tells how the positional arguments are read.
type inputKind int

const (
	inputEntropy inputKind = iota
	inputMnemonic
)

// walletInput is the wallet source given on the command line: a single
// argument is hex entropy, several are the words of a mnemonic.
type walletInput struct {
	kind  inputKind
	value string
}

func parseInput(args []string) (walletInput, error) {
	switch len(args) {
	case 0:
		return walletInput{}, errEmptyInput
	case 1:
		return walletInput{kind: inputEntropy, value: args[0]}, nil
	default:
		return walletInput{kind: inputMnemonic, value: strings.Join(args, " ")}, nil
	}
}

// open creates the wallet described by in.
func (in walletInput) open(passphrase string) (*hdwallet.Wallet, error) {
	if in.kind == inputEntropy {
		return hdwallet.WithEntropy(in.value, passphrase)
	}
	return hdwallet.WithMnemonic(in.value, passphrase)
}

// isInvalidInput reports whether err rejects the user's mnemonic or entropy.
func isInvalidInput(err error) bool {
	return errors.Is(err, hdwallet.ErrInvalidMnemonic) || errors.Is(err, hdwallet.ErrInvalidEntropy)
}

// readPassphrase reads a BIP-39 passphrase from the terminal without echo.
// Replaced in tests.
var readPassphrase = func() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("--passphrase-prompt needs an interactive terminal")
	}
	fmt.Fprint(os.Stderr, "Passphrase: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return string(raw), nil
}
