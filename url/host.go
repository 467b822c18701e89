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
	"encoding/binary"
	"net"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// HostKind discriminates the tagged Host variant the Standard describes:
// a host is either absent, a domain, an IPv4 address, or an IPv6 address.
type HostKind int

const (
	HostNone HostKind = iota
	HostDomain
	HostIPv4
	HostIPv6
)

// String names the variant for diagnostics and tests.
func (k HostKind) String() string {
	switch k {
	case HostDomain:
		return "Domain"
	case HostIPv4:
		return "IPv4"
	case HostIPv6:
		return "IPv6"
	default:
		return "None"
	}
}

// Host is the structured discriminant stored on a URL record. The domain
// string itself is never duplicated here: it lives in the record's
// serialization buffer and is recovered through HostStr. IPv4 and IPv6
// carry their numeric value directly, per the data model's "tagged variant"
// design.
type Host struct {
	Kind HostKind
	IPv4 uint32
	IPv6 [16]byte
}

// parsedHost is the result of running the host parser: the canonical text to
// splice into the serialization, plus the structured variant.
type parsedHost struct {
	text string
	host Host
}

// parseHost implements the Standard's host-parsing algorithm: bracketed
// input is IPv6, non-special-scheme input is an opaque percent-encoded
// string, and special-scheme input goes through IDNA with IPv4 inference on
// the result.
func parseHost(input string, isSpecial bool) (parsedHost, error) {
	if input == "" {
		return parsedHost{host: Host{Kind: HostNone}}, nil
	}
	if strings.HasPrefix(input, "[") {
		if !strings.HasSuffix(input, "]") {
			return parsedHost{}, errKindDetails(ErrInvalidIpv6Address, "unterminated IPv6 address", input)
		}
		addr, err := parseIPv6(input[1 : len(input)-1])
		if err != nil {
			return parsedHost{}, err
		}
		return parsedHost{text: "[" + formatIPv6(addr) + "]", host: Host{Kind: HostIPv6, IPv6: addr}}, nil
	}
	if !isSpecial {
		return parseOpaqueHost(input)
	}
	return parseSpecialHost(input)
}

// parseOpaqueHost handles hosts for non-special schemes: no IDNA, no IPv4
// inference, just a forbidden-code-point check and percent-encoding under
// the C0 control set.
func parseOpaqueHost(input string) (parsedHost, error) {
	decoded := input
	for i := 0; i < len(decoded); i++ {
		c := decoded[i]
		if c != '%' && isForbiddenHostCodePoint(c) {
			return parsedHost{}, errKindChar(ErrInvalidDomainCharacter, "forbidden host code point", c)
		}
	}
	encoded := percentEncode(input, c0EncodeSet)
	return parsedHost{text: encoded, host: Host{Kind: HostDomain}}, nil
}

// parseSpecialHost percent-decodes, lowercases, NFC-normalizes, and
// IDNA-processes the input, then attempts IPv4 parsing on the result.
func parseSpecialHost(input string) (parsedHost, error) {
	decoded := percentDecodeString(input)
	normalized := norm.NFC.String(strings.ToLower(decoded))

	ascii, err := idna.ToASCII(normalized)
	if err != nil {
		return parsedHost{}, errKindDetails(ErrIdnaError, "IDNA ToASCII failed", err.Error())
	}
	if ascii == "" {
		return parsedHost{}, errKind(ErrEmptyHost, "empty host for special scheme")
	}
	for i := 0; i < len(ascii); i++ {
		if isForbiddenDomainCodePoint(ascii[i]) {
			return parsedHost{}, errKindChar(ErrInvalidDomainCharacter, "forbidden domain code point", ascii[i])
		}
	}

	if v4, ok, err := parseIPv4(ascii); err != nil {
		return parsedHost{}, err
	} else if ok {
		return parsedHost{text: formatIPv4(v4), host: Host{Kind: HostIPv4, IPv4: v4}}, nil
	}

	return parsedHost{text: ascii, host: Host{Kind: HostDomain}}, nil
}

// looksLikeIPv4 is a cheap pre-check: does the last label (ignoring one
// trailing empty label) consist only of decimal digits, or of "0x"/"0X"
// followed by hex digits, such that IPv4 parsing should even be attempted.
// The Standard calls this "ends in a number".
func looksLikeIPv4(input string) bool {
	if input == "" {
		return false
	}
	labels := strings.Split(input, ".")
	last := labels[len(labels)-1]
	if last == "" {
		last = labels[len(labels)-2]
	}
	if last == "" {
		return false
	}
	if len(last) >= 2 && last[0] == '0' && lowerByte(last[1]) == 'x' {
		for i := 2; i < len(last); i++ {
			if !isASCIIHexDigit(last[i]) {
				return false
			}
		}
		return true
	}
	for i := 0; i < len(last); i++ {
		if !isASCIIDigit(last[i]) {
			return false
		}
	}
	return true
}

// parseIPv4 implements the Standard's lenient IPv4 parser: 1-4 dot-separated
// parts, each decimal, octal (leading "0"), or hex (leading "0x"/"0X"); the
// last part absorbs whatever octets remain.
func parseIPv4(input string) (uint32, bool, error) {
	if !looksLikeIPv4(input) {
		return 0, false, nil
	}
	parts := strings.Split(input, ".")
	if len(parts) == 0 || len(parts) > 4 {
		return 0, false, errKind(ErrOverflow, "too many IPv4 parts")
	}
	// A trailing empty part ("1.2.3.") is trimmed, matching the Standard.
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 || len(parts) > 4 {
		return 0, false, errKindDetails(ErrInvalidIpv4Address, "invalid IPv4 address", input)
	}

	numbers := make([]uint64, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return 0, false, errKindDetails(ErrInvalidIpv4Address, "empty IPv4 part", input)
		}
		n, err := parseIPv4Number(part)
		if err != nil {
			return 0, false, err
		}
		numbers = append(numbers, n)
	}

	for _, n := range numbers[:len(numbers)-1] {
		if n > 0xff {
			return 0, false, errKindDetails(ErrOverflow, "IPv4 part out of range", input)
		}
	}
	last := numbers[len(numbers)-1]
	maxLast := uint64(1) << (8 * uint(5-len(numbers)))
	if last >= maxLast {
		return 0, false, errKindDetails(ErrOverflow, "IPv4 address out of range", input)
	}

	var addr uint32
	for i, n := range numbers[:len(numbers)-1] {
		addr |= uint32(n) << (8 * uint(3-i))
	}
	addr |= uint32(last)

	return addr, true, nil
}

// parseIPv4Number parses a single dot-separated part as decimal, octal, or
// hexadecimal depending on its prefix.
func parseIPv4Number(part string) (uint64, error) {
	base := 10
	digits := part
	switch {
	case len(part) >= 2 && part[0] == '0' && lowerByte(part[1]) == 'x':
		base = 16
		digits = part[2:]
	case len(part) >= 1 && part[0] == '0' && part != "0":
		base = 8
		digits = part[1:]
	}
	if digits == "" {
		if base == 16 {
			return 0, errKindDetails(ErrInvalidIpv4Address, "empty hex IPv4 part", part)
		}
		return 0, nil
	}
	n, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, errKindDetails(ErrInvalidIpv4Address, "invalid IPv4 part", part)
	}
	return n, nil
}

// formatIPv4 renders a packed IPv4 address as dotted-quad text.
func formatIPv4(addr uint32) string {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], addr)
	return net.IP(buf[:]).String()
}

// parseIPv6 validates and parses a bracketed IPv6 literal's interior using
// the standard library's IP parser, then rejects malformed lenient forms
// (such as too many "::" compressions) that net.ParseIP is stricter about
// than we need to re-derive by hand.
func parseIPv6(input string) ([16]byte, error) {
	var zero [16]byte
	if input == "" {
		return zero, errKindDetails(ErrInvalidIpv6Address, "empty IPv6 address", input)
	}
	if strings.Count(input, "::") > 1 {
		return zero, errKindDetails(ErrInvalidIpv6Address, "multiple '::' compressions", input)
	}
	ip := net.ParseIP(input)
	if ip == nil {
		return zero, errKindDetails(ErrInvalidIpv6Address, "malformed IPv6 address", input)
	}
	v6 := ip.To16()
	if v6 == nil || ip.To4() != nil && !strings.Contains(input, ":") {
		return zero, errKindDetails(ErrInvalidIpv6Address, "not an IPv6 address", input)
	}
	var out [16]byte
	copy(out[:], v6)
	return out, nil
}

// formatIPv6 renders the canonical compressed bracket-interior form: eight
// colon-separated hextets with the longest run of two-or-more zero hextets
// replaced by "::". Hand-rolled rather than delegated to net.IP.String,
// which special-cases IPv4-mapped addresses in a way that would silently
// drop the "::ffff:" prefix the Standard expects to round-trip.
func formatIPv6(addr [16]byte) string {
	var hextets [8]uint16
	for i := range hextets {
		hextets[i] = uint16(addr[2*i])<<8 | uint16(addr[2*i+1])
	}

	bestStart, bestLen := -1, 0
	curStart, curLen := -1, 0
	for i, h := range hextets {
		if h == 0 {
			if curStart == -1 {
				curStart = i
			}
			curLen++
			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}
		} else {
			curStart, curLen = -1, 0
		}
	}
	if bestLen < 2 {
		bestStart = -1
	}

	var parts []string
	for i := 0; i < 8; i++ {
		if i == bestStart {
			parts = append(parts, "")
			if bestStart == 0 {
				parts = append(parts, "")
			}
			i += bestLen - 1
			if i == 7 {
				parts = append(parts, "")
			}
			continue
		}
		parts = append(parts, strconv.FormatUint(uint64(hextets[i]), 16))
	}
	return strings.Join(parts, ":")
}
