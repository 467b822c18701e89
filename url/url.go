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

// Package url implements the WHATWG URL Standard: a parser that converts
// byte strings into structured URL records, and accessors/mutators that
// preserve the syntactic invariants of that record.
//
// A URL is parsed once with Parse, ParseWith, or Join, and is never modified
// in place: each Set* method leaves its receiver unchanged and returns a new
// URL with one component replaced and a fresh canonical serialization.
// Equality, ordering, and hashing are all defined in terms of that
// serialization.
package url

import (
	"encoding/json"
	"strings"
)

// URL is an immutable-after-construction parsed URL record: a single
// canonical serialization string plus the byte offsets of each component
// boundary and a structured Host discriminant. Accessors return subslices
// of the serialization; PathSegments additionally allocates the slice it
// returns.
type URL struct {
	serialization string

	schemeEnd   int
	usernameEnd int
	hostStart   int
	hostEnd     int
	host        Host
	hasPort     bool
	port        uint16
	pathStart   int

	hasQuery   bool
	queryStart int

	hasFragment   bool
	fragmentStart int
}

// Parse parses an absolute URL. It returns a *ParseError if input has no
// scheme, or fails any component's grammar.
func Parse(input string) (*URL, error) {
	return ParseWith(input, ParseOptions{})
}

// Join resolves input as a (possibly relative) reference against base.
func Join(base *URL, input string) (*URL, error) {
	return ParseWith(input, ParseOptions{BaseURL: base})
}

// ParseOptions configures ParseWith.
type ParseOptions struct {
	// BaseURL, if non-nil, is used to resolve a relative input.
	BaseURL *URL
	// EncodingOverride names a WHATWG Encoding standard label (resolved via
	// golang.org/x/text/encoding/htmlindex). When set, the query component
	// is transcoded from UTF-8 to that legacy encoding before
	// percent-encoding; every other component stays UTF-8.
	EncodingOverride string
	// OnSyntaxViolation, if non-nil, is invoked synchronously for every
	// non-fatal grammar deviation the parser repairs instead of rejecting.
	OnSyntaxViolation func(message string)
}

// ParseWith parses input with the given options. See ParseOptions for the
// supported fields.
func ParseWith(input string, options ParseOptions) (*URL, error) {
	u, err := runParser(input, options)
	if err != nil {
		return nil, asParseError(err)
	}
	return u, nil
}

// String returns the canonical serialization. It is the wire form: no BOM,
// no trailing newline, no surrounding quotes.
func (u *URL) String() string {
	if u == nil {
		return ""
	}
	return u.serialization
}

// IsSpecial reports whether the URL's scheme is one of the Standard's
// hierarchical, host-bearing "special" schemes.
func (u *URL) IsSpecial() bool {
	return isSpecialScheme(u.Scheme())
}

// NonRelative reports whether the URL's path is opaque (a.k.a.
// "cannot-be-a-base"): a URL whose path does not begin with '/'.
func (u *URL) NonRelative() bool {
	return u.pathStart >= len(u.serialization) || u.serialization[u.pathStart] != '/'
}

// HasHost reports whether the URL has an authority component ("//" follows
// the scheme), including the empty-but-present host of some file: URLs.
func (u *URL) HasHost() bool {
	return strings.HasPrefix(u.serialization[u.schemeEnd:], "//")
}

// Scheme returns the lowercase ASCII scheme, e.g. "https".
func (u *URL) Scheme() string {
	return u.serialization[:u.schemeEnd-1]
}

// hasUserinfo reports whether an '@'-terminated userinfo section precedes
// the host, per the rule that the byte immediately before host_start is '@'
// exactly when a userinfo is present.
func (u *URL) hasUserinfo() bool {
	return u.hostStart > u.schemeEnd+2 && u.serialization[u.hostStart-1] == '@'
}

// Username returns the percent-encoded username, or "" if there is no host
// or no username.
func (u *URL) Username() string {
	if !u.HasHost() || !u.hasUserinfo() {
		return ""
	}
	authorityStart := u.schemeEnd + 2
	if u.serialization[u.usernameEnd] == ':' {
		return u.serialization[authorityStart:u.usernameEnd]
	}
	// usernameEnd points at the '@' itself when there is no password.
	return u.serialization[authorityStart:u.usernameEnd]
}

// Password returns the percent-encoded password and whether one is present.
func (u *URL) Password() (string, bool) {
	if !u.HasHost() || !u.hasUserinfo() {
		return "", false
	}
	if u.serialization[u.usernameEnd] != ':' {
		return "", false
	}
	return u.serialization[u.usernameEnd+1 : u.hostStart-1], true
}

// HostStr returns the host's textual form (ASCII for domains and IPv4, a
// bracketed literal for IPv6), or "" if there is no host.
func (u *URL) HostStr() string {
	if u.host.Kind == HostNone {
		return ""
	}
	return u.serialization[u.hostStart:u.hostEnd]
}

// HostInfo returns the structured Host discriminant.
func (u *URL) HostInfo() Host {
	return u.host
}

// Port returns the explicit port and whether one is present in the
// serialization (a port equal to the scheme's default is never stored).
func (u *URL) Port() (uint16, bool) {
	return u.port, u.hasPort
}

// PortOrKnownDefault returns the explicit port, or the scheme's default
// port if there is one, or false if neither exists.
func (u *URL) PortOrKnownDefault() (uint16, bool) {
	if u.hasPort {
		return u.port, true
	}
	return defaultPortFor(u.Scheme())
}

// Path returns the raw path component, including its leading '/' for
// hierarchical URLs.
func (u *URL) Path() string {
	end := len(u.serialization)
	if u.hasQuery {
		end = u.queryStart
	} else if u.hasFragment {
		end = u.fragmentStart
	}
	return u.serialization[u.pathStart:end]
}

// PathSegments returns the '/'-split segments of a hierarchical path and
// true, or (nil, false) if the URL is non-relative.
func (u *URL) PathSegments() ([]string, bool) {
	if u.NonRelative() {
		return nil, false
	}
	return splitPathSegments(u.Path()), true
}

// Query returns the raw query component (without the leading '?') and
// whether one is present.
func (u *URL) Query() (string, bool) {
	if !u.hasQuery {
		return "", false
	}
	end := len(u.serialization)
	if u.hasFragment {
		end = u.fragmentStart
	}
	return u.serialization[u.queryStart+1 : end], true
}

// Fragment returns the raw fragment component (without the leading '#')
// and whether one is present.
func (u *URL) Fragment() (string, bool) {
	if !u.hasFragment {
		return "", false
	}
	return u.serialization[u.fragmentStart+1:], true
}

// Equal reports whether two URLs have byte-identical serializations.
func (u *URL) Equal(other *URL) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.serialization == other.serialization
}

// Compare orders two URLs by the lexicographic byte ordering of their
// serializations, suitable for use with slices.SortFunc.
func Compare(a, b *URL) int {
	return strings.Compare(a.serialization, b.serialization)
}

// MarshalJSON encodes the URL as its serialization string.
func (u *URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.serialization)
}

// UnmarshalJSON decodes a JSON string into a URL, parsing and validating it
// in the process.
func (u *URL) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

// Clone returns a deep copy of u. Since URL is immutable after construction
// and holds no pointers besides the read-only serialization string, this is
// equivalent to a value copy, but is provided for callers that want an
// explicit, self-documenting copy before passing a URL to a Set* method.
func (u *URL) Clone() *URL {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
