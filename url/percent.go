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

import (
	"strings"
)

const upperHex = "0123456789ABCDEF"

// percentEncodeByte appends the %XX escape for a single byte to b.
func percentEncodeByte(c byte, b *strings.Builder) {
	b.WriteByte('%')
	b.WriteByte(upperHex[c>>4])
	b.WriteByte(upperHex[c&0xf])
}

// percentEncode escapes every byte of s that belongs to set, writing the
// result to a fresh string. A '%' that already starts a valid %XX triplet
// is copied verbatim rather than re-escaped, which is what makes
// percent-encoding idempotent on already-encoded input.
func percentEncode(s string, set encodeSet) string {
	var b strings.Builder
	b.Grow(len(s))
	percentEncodeInto(s, set, &b)
	return b.String()
}

// percentEncodeInto is percentEncode but appending directly into an existing
// builder, avoiding an intermediate allocation when splicing into the
// serialization buffer.
func percentEncodeInto(s string, set encodeSet, b *strings.Builder) {
	for i := 0; i < len(s); i++ {
		if isPercentTriplet(s, i) {
			b.WriteByte(s[i])
			b.WriteByte(s[i+1])
			b.WriteByte(s[i+2])
			i += 2
			continue
		}
		c := s[i]
		if inEncodeSet(c, set) {
			percentEncodeByte(c, b)
		} else {
			b.WriteByte(c)
		}
	}
}

// isPercentTriplet reports whether s[i] starts a valid %XX escape.
func isPercentTriplet(s string, i int) bool {
	return s[i] == '%' && i+2 < len(s) && isASCIIHexDigit(s[i+1]) && isASCIIHexDigit(s[i+2])
}

func hexVal(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// percentDecode reverses percent-encoding byte-wise. The result is arbitrary
// bytes, not necessarily valid UTF-8, matching the Standard's definition of
// percent-decode as operating on bytes rather than code points.
func percentDecode(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if isPercentTriplet(s, i) {
			out = append(out, hexVal(s[i+1])<<4|hexVal(s[i+2]))
			i += 3
			continue
		}
		out = append(out, s[i])
		i++
	}
	return out
}

// percentDecodeString is percentDecode returning a string, for callers that
// know (or don't care) that the result is valid UTF-8.
func percentDecodeString(s string) string {
	return string(percentDecode(s))
}
