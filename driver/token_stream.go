package driver

import "strings"

// endMarker is the end-of-input terminal. The stream hands it out once
// the real tokens run out, and the driver seeds its symbol stack with
// it.
const endMarker = "#"

// tokenStream feeds whitespace-separated terminal texts to the driver.
type tokenStream struct {
	tokens []string
	ptr    int
}

func newTokenStream(input string) *tokenStream {
	return &tokenStream{
		tokens: strings.Fields(input),
	}
}

// current returns the lookahead token, or the end marker when the input
// is exhausted. It never advances the stream.
func (s *tokenStream) current() string {
	if s.ptr < len(s.tokens) {
		return s.tokens[s.ptr]
	}
	return endMarker
}

func (s *tokenStream) advance() {
	if s.ptr < len(s.tokens) {
		s.ptr++
	}
}

// remaining returns the unconsumed tokens joined by single spaces. It
// is empty once the input is exhausted.
func (s *tokenStream) remaining() string {
	return strings.Join(s.tokens[s.ptr:], " ")
}
