/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package url

import "strings"

// isASCIILetter checks if a byte is an ASCII letter.
func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isASCIIDigit checks if a byte is an ASCII digit.
func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isASCIIAlphanumeric checks if a byte is an ASCII letter or digit.
func isASCIIAlphanumeric(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c)
}

// isASCIIHexDigit checks if a byte is an ASCII hexadecimal digit.
func isASCIIHexDigit(c byte) bool {
	return isASCIIDigit(c) || ('a' <= lowerByte(c) && lowerByte(c) <= 'f')
}

// lowerByte lowercases an ASCII byte, leaving non-letters untouched.
func lowerByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// isSchemeChar checks if a byte may appear after the first character of a scheme.
func isSchemeChar(c byte) bool {
	return isASCIIAlphanumeric(c) || c == '+' || c == '-' || c == '.'
}

// isC0OrSpace checks for the C0 control range plus the space character, which
// are stripped from the leading and trailing edges of the input per the
// Standard's "remove any leading and trailing C0 control or space" step.
func isC0OrSpace(c byte) bool {
	return c <= 0x20
}

// isASCIITabOrNewline identifies bytes that are stripped from anywhere in the
// input (not just the edges) before parsing begins.
func isASCIITabOrNewline(c byte) bool {
	return c == '\t' || c == '\n' || c == '\r'
}

// specialSchemePorts maps every special scheme to its default port. "file"
// has no default port and is intentionally absent from this table.
var specialSchemePorts = map[string]uint16{
	"ftp":    21,
	"gopher": 70,
	"http":   80,
	"https":  443,
	"ws":     80,
	"wss":    443,
}

// isSpecialScheme reports whether scheme is one of the hierarchical,
// host-bearing schemes the Standard calls "special".
func isSpecialScheme(scheme string) bool {
	if scheme == "file" {
		return true
	}
	_, ok := specialSchemePorts[scheme]
	return ok
}

// defaultPortFor returns the default port for scheme and whether one exists.
func defaultPortFor(scheme string) (uint16, bool) {
	p, ok := specialSchemePorts[scheme]
	return p, ok
}

// forbiddenHostCodePoints are the code points that may never appear in a
// special-scheme host, whether in a domain or literally typed into the
// authority.
const forbiddenHostCodePoints = "\x00\t\n\r #/:<>?@[\\]^|"

// forbiddenDomainCodePoints additionally forbids code points that are legal
// in an opaque (non-special) host but never in a domain.
const forbiddenDomainCodePoints = forbiddenHostCodePoints + "%\x7f"

func isForbiddenHostCodePoint(c byte) bool {
	return strings.IndexByte(forbiddenHostCodePoints, c) >= 0
}

func isForbiddenDomainCodePoint(c byte) bool {
	return strings.IndexByte(forbiddenDomainCodePoints, c) >= 0 || c < 0x20 || c == 0x7f
}

// encodeSet identifies which percent-encode table a component uses. The
// default, userinfo, and path-segment sets each extend the one listed before
// them with a handful of extra bytes; the query, fragment, and C0 sets are
// separate tables.
type encodeSet int

const (
	simpleEncodeSet encodeSet = iota
	defaultEncodeSet
	userinfoEncodeSet
	pathSegmentEncodeSet
	queryEncodeSet
	fragmentEncodeSet
	c0EncodeSet
)

// inEncodeSet reports whether byte c must be percent-encoded under set.
func inEncodeSet(c byte, set encodeSet) bool {
	// C0 controls and non-ASCII bytes are encoded under every set.
	if c < 0x20 || c >= 0x7f {
		return true
	}
	switch set {
	case c0EncodeSet:
		return false
	case simpleEncodeSet:
		return strings.IndexByte(" \"#<>?", c) >= 0
	case fragmentEncodeSet:
		return strings.IndexByte(" \"<>`", c) >= 0
	case queryEncodeSet:
		return strings.IndexByte(" \"#<>", c) >= 0
	case defaultEncodeSet:
		return strings.IndexByte(" \"#<>?`{}", c) >= 0
	case userinfoEncodeSet:
		return strings.IndexByte(" \"#<>?`{}/:;=@[\\]^|", c) >= 0
	case pathSegmentEncodeSet:
		return strings.IndexByte(" \"#<>?`{}/%:;=@[\\]^|", c) >= 0
	default:
		return false
	}
}

// isURLCodePoint is a permissive approximation of the Standard's "URL code
// point" set: any non-ASCII rune plus the ASCII unreserved and sub-delim
// characters. Bytes outside this set are still accepted (percent-encoded or
// passed through) but may trigger a syntax-violation callback upstream.
func isURLCodePoint(r rune) bool {
	if r > 0x7f {
		return true
	}
	c := byte(r)
	return isASCIIAlphanumeric(c) || strings.IndexByte("!$&'()*+,-./:;=?@_~", c) >= 0
}
