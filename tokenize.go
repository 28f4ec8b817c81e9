package wordtracker

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Token is a single word found on a line of a source.
type Token struct {
	Text string
	Line int
}

// Tokenize lowercases line and splits it into runs of ASCII letters.
func Tokenize(line string) []string {
	return strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return r < 'a' || r > 'z'
	})
}

// ScanLines tokenizes every line of r. Lines are numbered from 1.
func ScanLines(r io.Reader) ([]Token, int, error) {
	var tokens []Token
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	line := 0
	for scanner.Scan() {
		line++
		for _, text := range Tokenize(scanner.Text()) {
			tokens = append(tokens, Token{Text: text, Line: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, line, fmt.Errorf("scanning line %d: %w", line+1, err)
	}
	return tokens, line, nil
}

// maxLineLength bounds a single input line.
const maxLineLength = 16 * 1024 * 1024
