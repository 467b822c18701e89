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
	"strconv"
	"strings"
)

// runParser is the single entry point every exported Parse* function funnels
// through. It drives the scheme-start state, then dispatches to whichever
// branch of the state machine the scheme and base call for.
func runParser(input string, options ParseOptions) (*URL, error) {
	sink := violationSink{fn: options.OnSyntaxViolation}
	input = sanitizeInput(input, sink.report)

	scheme, rest, ok := scanScheme(input)
	if !ok {
		if options.BaseURL == nil {
			return nil, errKind(ErrRelativeURLWithoutBase, "relative URL without a base")
		}
		return parseRelativeReference(input, options.BaseURL, options, sink)
	}
	return parseWithScheme(scheme, rest, options, sink)
}

// scanScheme recognizes a leading "ALPHA (ALPHA|DIGIT|+|-|.)* ':'" prefix.
func scanScheme(s string) (scheme, rest string, ok bool) {
	if len(s) == 0 || !isASCIILetter(s[0]) {
		return "", "", false
	}
	i := 1
	for i < len(s) && isSchemeChar(s[i]) {
		i++
	}
	if i >= len(s) || s[i] != ':' {
		return "", "", false
	}
	return strings.ToLower(s[:i]), s[i+1:], true
}

// parseWithScheme dispatches an absolute (scheme-bearing) input to the
// file, special, or generic-hierarchical/opaque branch of the grammar.
func parseWithScheme(scheme, rest string, options ParseOptions, sink violationSink) (*URL, error) {
	base := options.BaseURL

	if scheme == "file" {
		return parseFileURL(rest, base, options, sink)
	}

	if isSpecialScheme(scheme) {
		if base != nil && base.Scheme() == scheme && !strings.HasPrefix(rest, "//") {
			return parseSpecialRelativeOrAuthority(scheme, rest, base, options, sink)
		}
		afterSlashes := consumeSpecialSlashes(rest, sink)
		return parseAuthorityAndTail(scheme, afterSlashes, options, sink, true)
	}

	if strings.HasPrefix(rest, "//") {
		return parseAuthorityAndTail(scheme, rest[2:], options, sink, false)
	}
	if strings.HasPrefix(rest, "/") {
		return assembleNoAuthority(scheme, rest, options, sink)
	}
	return assembleOpaque(scheme, rest, options, sink)
}

// consumeSpecialSlashes skips the (possibly malformed) slashes that follow a
// special scheme's colon; special schemes always have an authority, so any
// number of '/' or '\' bytes here (including zero) is tolerated. Only the
// first two are actually consumed -- a third or later slash is left for the
// authority scan, where it immediately terminates an empty host, so
// "http:///path" is rejected with ErrEmptyHost.
func consumeSpecialSlashes(rest string, sink violationSink) string {
	actual := 0
	for actual < len(rest) && (rest[actual] == '/' || rest[actual] == '\\') {
		actual++
	}
	if actual != 2 {
		sink.report("special scheme not followed by exactly two slashes")
	}
	consumed := actual
	if consumed > 2 {
		consumed = 2
	}
	return rest[consumed:]
}

// parseSpecialRelativeOrAuthority implements the Standard's quirk where a
// special-scheme input whose scheme equals its base's scheme is parsed as a
// relative reference against that base rather than a fresh authority, unless
// it supplies a full "//" authority of its own.
func parseSpecialRelativeOrAuthority(scheme, rest string, base *URL, options ParseOptions, sink violationSink) (*URL, error) {
	slashes := 0
	for slashes < len(rest) && (rest[slashes] == '/' || rest[slashes] == '\\') {
		slashes++
	}
	if slashes >= 2 {
		sink.report("relative special URL supplies its own authority")
		return parseAuthorityAndTail(scheme, rest[slashes:], options, sink, true)
	}
	if slashes == 1 {
		sink.report("relative special URL path starts with one slash")
		return assembleWithInheritedHost(scheme, base, rest, options, sink, false)
	}
	return assembleWithInheritedHost(scheme, base, rest, options, sink, true)
}

// splitAtFirstOf splits s at the first byte from cutset, returning the head
// and the tail starting at (and including) the cut byte, or (s, "") if none
// of cutset occurs.
func splitAtFirstOf(s, cutset string) (head, tail string) {
	i := strings.IndexAny(s, cutset)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

// splitTail breaks the portion of input after the path into its path,
// query, and fragment pieces.
func splitTail(s string) (path, query string, hasQuery bool, fragment string, hasFragment bool) {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		fragment = s[i+1:]
		hasFragment = true
		s = s[:i]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		query = s[i+1:]
		hasQuery = true
		s = s[:i]
	}
	return s, query, hasQuery, fragment, hasFragment
}

// parseAuthorityAndTail parses "user:pass@host:port/path?query#fragment"
// (any prefix may be absent) into a fresh URL whose authority is the one
// just parsed -- used for every case where the input supplies its own host.
func parseAuthorityAndTail(scheme, s string, options ParseOptions, sink violationSink, isSpecial bool) (*URL, error) {
	authorityPart, tail := splitAtFirstOf(s, "/\\?#")
	userinfo, hostport := splitUserinfo(authorityPart)
	hostText, portText := splitHostPort(hostport)

	ph, err := parseHost(hostText, isSpecial)
	if err != nil {
		return nil, err
	}
	if isSpecial && hostText == "" {
		return nil, errKind(ErrEmptyHost, "empty host for special scheme")
	}

	port, hasPort, err := parsePortString(portText, scheme)
	if err != nil {
		return nil, err
	}

	username, password, hasPassword := splitUserinfoParts(userinfo)

	pathRaw, queryRaw, hasQuery, fragmentRaw, hasFragment := splitTail(tail)
	segments := normalizeSegments(splitRawPathSegments(pathRaw, isSpecial, sink), false)

	return assemble(assembleInput{
		scheme:       scheme,
		hasAuthority: true,
		username:     username,
		password:     password,
		hasPassword:  hasPassword,
		host:         ph,
		port:         port,
		hasPort:      hasPort,
		pathSegments: segments,
		hasQuery:     hasQuery,
		query:        queryRaw,
		hasFragment:  hasFragment,
		fragment:     fragmentRaw,
	}, options, sink)
}

// assembleNoAuthority handles "scheme:/path..." for non-special schemes: a
// hierarchical path with no authority at all.
func assembleNoAuthority(scheme, rest string, options ParseOptions, sink violationSink) (*URL, error) {
	pathRaw, queryRaw, hasQuery, fragmentRaw, hasFragment := splitTail(rest)
	segments := normalizeSegments(splitRawPathSegments(pathRaw, false, sink), false)
	return assemble(assembleInput{
		scheme:       scheme,
		hasAuthority: false,
		host:         parsedHost{host: Host{Kind: HostNone}},
		pathSegments: segments,
		hasQuery:     hasQuery,
		query:        queryRaw,
		hasFragment:  hasFragment,
		fragment:     fragmentRaw,
	}, options, sink)
}

// assembleOpaque handles "scheme:opaque-path?query#fragment" for
// non-special schemes whose remainder doesn't start with '/': the resulting
// URL is non-relative ("cannot-be-a-base").
func assembleOpaque(scheme, rest string, options ParseOptions, sink violationSink) (*URL, error) {
	pathRaw, queryRaw, hasQuery, fragmentRaw, hasFragment := splitTail(rest)
	var out strings.Builder
	out.WriteString(scheme)
	out.WriteByte(':')
	u := &URL{}
	u.schemeEnd = out.Len()
	u.usernameEnd = out.Len()
	u.hostStart = out.Len()
	u.hostEnd = out.Len()
	u.host = Host{Kind: HostNone}
	u.pathStart = out.Len()
	percentEncodeInto(pathRaw, simpleEncodeSet, &out)
	if hasQuery {
		u.hasQuery = true
		u.queryStart = out.Len()
		out.WriteByte('?')
		writeQuery(&out, queryRaw, options)
	}
	if hasFragment {
		u.hasFragment = true
		u.fragmentStart = out.Len()
		out.WriteByte('#')
		percentEncodeInto(fragmentRaw, fragmentEncodeSet, &out)
	}
	u.serialization = out.String()
	return u, nil
}

// assembleWithInheritedHost builds a URL that keeps base's authority but
// gets a fresh (absolute, replace) or merged (relative) path, used by the
// special-relative-or-authority quirk.
func assembleWithInheritedHost(scheme string, base *URL, rest string, options ParseOptions, sink violationSink, merge bool) (*URL, error) {
	isSpecial := isSpecialScheme(scheme)
	pathRaw, queryRaw, hasQuery, fragmentRaw, hasFragment := splitTail(rest)
	newSegs := splitRawPathSegments(pathRaw, isSpecial, sink)

	var segments []string
	if merge {
		baseSegs, _ := base.PathSegments()
		combined := append(shortenPath(append([]string(nil), baseSegs...), scheme == "file"), newSegs...)
		segments = normalizeSegments(combined, scheme == "file")
	} else {
		segments = normalizeSegments(newSegs, scheme == "file")
	}

	return assemble(assembleInput{
		scheme:       scheme,
		hasAuthority: true,
		username:     base.Username(),
		password:     mustPassword(base),
		hasPassword:  hasPasswordSet(base),
		host:         parsedHost{text: base.HostStr(), host: base.host},
		port:         base.port,
		hasPort:      base.hasPort,
		pathSegments: segments,
		hasQuery:     hasQuery,
		query:        queryRaw,
		hasFragment:  hasFragment,
		fragment:     fragmentRaw,
	}, options, sink)
}

func mustPassword(u *URL) string {
	p, _ := u.Password()
	return p
}

func hasPasswordSet(u *URL) bool {
	_, ok := u.Password()
	return ok
}

// splitUserinfo separates "user:pass@" from "host:port" in an authority
// string, using the last '@' as the Standard requires.
func splitUserinfo(authority string) (userinfo, hostport string) {
	i := strings.LastIndexByte(authority, '@')
	if i < 0 {
		return "", authority
	}
	return authority[:i], authority[i+1:]
}

// splitUserinfoParts splits "user:pass" (or "user") on the first ':'.
func splitUserinfoParts(userinfo string) (username, password string, hasPassword bool) {
	if userinfo == "" {
		return "", "", false
	}
	if i := strings.IndexByte(userinfo, ':'); i >= 0 {
		return userinfo[:i], userinfo[i+1:], true
	}
	return userinfo, "", false
}

// splitHostPort separates "host:port" respecting a bracketed IPv6 literal,
// whose embedded colons must not be mistaken for the port separator.
func splitHostPort(hostport string) (host, port string) {
	if strings.HasPrefix(hostport, "[") {
		end := strings.IndexByte(hostport, ']')
		if end < 0 {
			return hostport, ""
		}
		host = hostport[:end+1]
		if end+1 < len(hostport) && hostport[end+1] == ':' {
			port = hostport[end+2:]
		}
		return host, port
	}
	if i := strings.LastIndexByte(hostport, ':'); i >= 0 {
		return hostport[:i], hostport[i+1:]
	}
	return hostport, ""
}

// parsePortString validates and parses a decimal port, dropping it when it
// equals the scheme's default per the Standard's "port is None if default".
func parsePortString(s, scheme string) (uint16, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	for i := 0; i < len(s); i++ {
		if !isASCIIDigit(s[i]) {
			return 0, false, errKindChar(ErrInvalidPort, "invalid port character", s[i])
		}
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n > 65535 {
		return 0, false, errKindDetails(ErrInvalidPort, "port out of range", s)
	}
	port := uint16(n)
	if def, ok := defaultPortFor(scheme); ok && def == port {
		return 0, false, nil
	}
	return port, true, nil
}

// splitRawPathSegments splits raw path text on '/' (and, leniently, '\' for
// special schemes) into its constituent segments. Segments are left
// unencoded here: dot-segment and windows-drive-letter detection in
// normalizeSegments both need to see the raw text, since either check would
// misfire once ':' or '|' has been percent-encoded away.
func splitRawPathSegments(raw string, isSpecial bool, sink violationSink) []string {
	raw = strings.TrimPrefix(raw, "/")
	if isSpecial && strings.IndexByte(raw, '\\') >= 0 {
		sink.report("backslash encountered in special URL path")
	}
	sep := func(c byte) bool { return c == '/' || (isSpecial && c == '\\') }

	var segs []string
	start := 0
	for i := 0; i < len(raw); i++ {
		if sep(raw[i]) {
			segs = append(segs, raw[start:i])
			start = i + 1
		}
	}
	segs = append(segs, raw[start:])
	return segs
}

// normalizeSegments collapses "." and ".." segments per RFC 3986 Section
// 5.2.4 as adapted to a segment list, preserving a trailing slash by
// appending an empty final segment when the last input segment was itself
// "." or "..". Every other segment is percent-encoded here, after the
// dot-segment and (for file: URLs) drive-letter checks have had a chance to
// see its raw form. percentEncode's idempotency means segments that arrive
// already encoded (e.g. from a base URL's existing path) pass through
// unchanged. For file: URLs, a drive letter is normalized only when it would
// become the first segment of the result.
func normalizeSegments(raw []string, isFile bool) []string {
	var out []string
	for i, seg := range raw {
		last := i == len(raw)-1
		switch {
		case isDoubleDotSegment(seg):
			out = shortenPath(out, isFile)
			if last {
				out = append(out, "")
			}
		case isSingleDotSegment(seg):
			if last {
				out = append(out, "")
			}
		case isFile && len(out) == 0 && isWindowsDriveLetter(seg):
			out = append(out, normalizeDriveLetter(seg))
		default:
			out = append(out, percentEncode(seg, pathSegmentEncodeSet))
		}
	}
	return out
}

// writeQuery percent-encodes the query component, applying the legacy
// encoding override (if any) before percent-encoding.
func writeQuery(out *strings.Builder, raw string, options ParseOptions) {
	encoded := raw
	if options.EncodingOverride != "" {
		if transcoded, err := applyEncodingOverride(raw, options.EncodingOverride); err == nil {
			encoded = transcoded
		}
	}
	percentEncodeInto(encoded, queryEncodeSet, out)
}
