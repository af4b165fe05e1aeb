// Package token implements the VCD tokenizer: splitting input into
// space-separated words while tracking 1-based line numbers. It performs
// no interpretation of the words it produces.
package token

import (
	"bufio"
	"io"
	"strings"
)

// Token is one word together with the 1-based line it was read from.
type Token struct {
	Word string
	Line int
}

// Scan reads r line by line, splitting each line on the space character
// only, and discarding empty fragments. It returns every token in the
// input in order, or an error if reading r fails partway through.
//
// Splitting is on the space character alone; a tab-separated VCD file
// will not tokenize the way a caller might expect.
func Scan(r io.Reader) ([]Token, error) {
	var tokens []Token
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		for _, word := range strings.Split(scanner.Text(), " ") {
			if word == "" {
				continue
			}
			tokens = append(tokens, Token{Word: word, Line: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// ScanString is Scan over an in-memory string. It discards Scan's error:
// input with a line longer than the 16 MiB scan buffer yields nil.
func ScanString(text string) []Token {
	tokens, _ := Scan(strings.NewReader(text))
	return tokens
}
