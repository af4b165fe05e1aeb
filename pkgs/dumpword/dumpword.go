// Package dumpword classifies a single VCD dump token into an
// (identifier, logical value) pair. Scalar forms (0x/1x/xX/zX) are one
// token; vector forms (bBBB X / rDDD X) need a second token for the
// identifier, so the two shapes are two distinct entry points rather
// than one function that peeks ahead — matching the scalar/vector split
// in original_source/src/dumped_var_parser.rs.
package dumpword

import (
	"strconv"

	"github.com/brennanmoore/vcdload/pkgs/model"
	"github.com/brennanmoore/vcdload/pkgs/vcderrors"
)

// Result is a classified dump word: the variable identifier it targets
// and the logical value it carries.
type Result struct {
	Identifier string
	Value      model.LogicalValue
}

// IsVector reports whether word opens a binary (bBBB) or real (rDDD)
// vector dump, which needs a second token for its identifier.
func IsVector(word string) bool {
	if word == "" {
		return false
	}
	return word[0] == 'b' || word[0] == 'r'
}

// ClassifyScalar decodes a one-token scalar dump: a leading 0/1/x/z
// followed by a non-empty identifier suffix.
func ClassifyScalar(word string, line int) (Result, error) {
	if len(word) < 2 {
		return Result{}, vcderrors.NewInvalidVarDumpError(line)
	}
	value, err := scalarValue(word[0], line)
	if err != nil {
		return Result{}, err
	}
	return Result{Identifier: word[1:], Value: value}, nil
}

func scalarValue(c byte, line int) (model.LogicalValue, error) {
	switch c {
	case '0':
		return model.Value(0), nil
	case '1':
		return model.Value(1), nil
	case 'x':
		return model.X, nil
	case 'z':
		return model.Z, nil
	default:
		return model.LogicalValue{}, vcderrors.NewInvalidVarDumpError(line)
	}
}

// ClassifyVector decodes a two-token vector dump: word is the "bBBB" or
// "rDDD" value token (radix 2 or 10 respectively) and identifier is the
// token that follows it in the stream.
func ClassifyVector(word, identifier string, line int) (Result, error) {
	if len(word) < 2 || identifier == "" {
		return Result{}, vcderrors.NewInvalidVarDumpError(line)
	}

	var radix int
	switch word[0] {
	case 'b':
		radix = 2
	case 'r':
		radix = 10
	default:
		return Result{}, vcderrors.NewInvalidVarDumpError(line)
	}

	n, err := strconv.ParseUint(word[1:], radix, 64)
	if err != nil {
		return Result{}, vcderrors.NewInvalidVarDumpError(line)
	}
	return Result{Identifier: identifier, Value: model.Value(n)}, nil
}
