// Package vcdio is the library entry point: it turns a file path or an
// in-memory string into a fully loaded model.VCD, wiring pkgs/token's
// scanner into pkgs/machine's state machine. It follows the usual
// "read, then parse" shape, but returns a typed *vcderrors.VCDError
// instead of exiting the process.
package vcdio

import (
	"os"
	"strings"

	"github.com/brennanmoore/vcdload/pkgs/machine"
	"github.com/brennanmoore/vcdload/pkgs/model"
	"github.com/brennanmoore/vcdload/pkgs/token"
	"github.com/brennanmoore/vcdload/pkgs/vcderrors"
)

// LoadFromPath reads the file at path and parses it as a VCD waveform.
func LoadFromPath(path string) (*model.VCD, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vcderrors.NewFileOpenError(path, err.Error())
	}
	return load(string(data))
}

// LoadFromString parses text as a VCD waveform already held in memory.
func LoadFromString(text string) (*model.VCD, error) {
	return load(text)
}

func load(text string) (*model.VCD, error) {
	tokens, err := token.Scan(strings.NewReader(text))
	if err != nil {
		return nil, vcderrors.NewFileReadError(0)
	}
	return machine.Run(tokens)
}
