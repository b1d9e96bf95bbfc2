package wire

import "strings"

const upperhex = "0123456789ABCDEF"

// shouldEscape reports whether b must be percent-encoded.
// Unreserved characters (RFC 3986) and '/' are kept literal.
func shouldEscape(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return false
	}
	switch b {
	case '-', '_', '.', '~', '/':
		return false
	}
	return true
}

// Quote percent-encodes s so that it survives as a single protocol token.
func Quote(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Unquote decodes %XX sequences in a single token.
// Malformed sequences are copied through verbatim.
func Unquote(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// DecodeLine turns a raw input line into the logical line used for grammar
// matching: the line terminator is removed, every space separated token is
// unquoted on its own and the tokens are joined again with a single space.
//
// A token that decodes to text containing a space cannot be told apart from
// two tokens afterwards. The daemon relies on this behaviour, so it is kept.
func DecodeLine(raw string) string {
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")
	if strings.IndexByte(raw, '%') < 0 {
		return raw
	}

	tokens := strings.Split(raw, " ")
	for i, tok := range tokens {
		tokens[i] = Unquote(tok)
	}
	return strings.Join(tokens, " ")
}

// EncodeLine quotes each token and joins them with a single space.
func EncodeLine(tokens ...string) string {
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = Quote(tok)
	}
	return strings.Join(quoted, " ")
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
