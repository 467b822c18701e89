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

// toAssembleInput captures u's current components as an assembleInput, the
// common starting point the hierarchical setters mutate a single field of
// before re-assembling a fresh serialization: rather than splice bytes in
// place, such a setter rebuilds the whole record from validated parts.
// SetScheme, SetQuery, SetFragment, and SetPath on an opaque path splice the
// serialization directly instead.
func (u *URL) toAssembleInput() assembleInput {
	password, hasPassword := u.Password()
	query, hasQuery := u.Query()
	fragment, hasFragment := u.Fragment()
	segments, _ := u.PathSegments()

	return assembleInput{
		scheme:       u.Scheme(),
		hasAuthority: u.HasHost(),
		username:     u.Username(),
		password:     password,
		hasPassword:  hasPassword,
		host:         parsedHost{text: u.HostStr(), host: u.host},
		port:         u.port,
		hasPort:      u.hasPort,
		pathSegments: segments,
		hasQuery:     hasQuery,
		query:        query,
		hasFragment:  hasFragment,
		fragment:     fragment,
	}
}

// SetScheme re-parses scheme and, on success, returns a copy of u with its
// scheme replaced. Changing between a special and a non-special scheme on a
// URL that carries an authority or opaque path is rejected, matching the
// Standard's "scheme state" restriction.
func (u *URL) SetScheme(scheme string) (*URL, error) {
	newScheme, _, ok := scanScheme(scheme + ":")
	if !ok {
		return nil, errKindDetails(ErrOther, "invalid scheme", scheme)
	}
	if isSpecialScheme(newScheme) != isSpecialScheme(u.Scheme()) {
		return nil, errKindDetails(ErrOther, "cannot change between special and non-special scheme", scheme)
	}
	if newScheme == "file" || u.Scheme() == "file" {
		return nil, errKindDetails(ErrOther, "cannot change to or from the file scheme", scheme)
	}

	shift := len(newScheme) - len(u.Scheme())
	c := u.Clone()
	c.serialization = newScheme + u.serialization[u.schemeEnd-1:]
	c.schemeEnd += shift
	c.usernameEnd += shift
	c.hostStart += shift
	c.hostEnd += shift
	c.pathStart += shift
	if c.hasQuery {
		c.queryStart += shift
	}
	if c.hasFragment {
		c.fragmentStart += shift
	}
	return c, nil
}

// SetUsername returns a copy of u with its username replaced by the
// percent-encoded form of username. It fails for a URL with no host or an
// opaque path, both of which have no userinfo slot to fill.
func (u *URL) SetUsername(username string) (*URL, error) {
	if !u.HasHost() || u.HostStr() == "" || u.NonRelative() {
		return nil, errKind(ErrSetHostOnCannotBeABaseURL, "cannot set username on a URL with no host")
	}
	in := u.toAssembleInput()
	in.username = percentEncode(username, userinfoEncodeSet)
	return assemble(in, ParseOptions{}, violationSink{})
}

// SetPassword returns a copy of u with its password replaced by the
// percent-encoded form of password.
func (u *URL) SetPassword(password string) (*URL, error) {
	if !u.HasHost() || u.HostStr() == "" || u.NonRelative() {
		return nil, errKind(ErrSetHostOnCannotBeABaseURL, "cannot set password on a URL with no host")
	}
	in := u.toAssembleInput()
	in.password = percentEncode(password, userinfoEncodeSet)
	in.hasPassword = true
	return assemble(in, ParseOptions{}, violationSink{})
}

// SetHost re-parses host (optionally "host:port") and returns a copy of u
// with its host, and port if one was given, replaced. It is rejected on a
// non-relative (opaque-path) URL, which has no host slot.
func (u *URL) SetHost(host string) (*URL, error) {
	if u.NonRelative() {
		return nil, errKind(ErrSetHostOnCannotBeABaseURL, "cannot set host on a non-relative URL")
	}
	hostText, portText := splitHostPort(host)
	ph, err := parseHost(hostText, u.IsSpecial())
	if err != nil {
		return nil, err
	}
	if u.IsSpecial() && ph.host.Kind == HostNone {
		return nil, errKind(ErrEmptyHost, "empty host for special scheme")
	}

	in := u.toAssembleInput()
	in.hasAuthority = true
	in.host = ph
	if portText != "" {
		port, hasPort, err := parsePortString(portText, u.Scheme())
		if err != nil {
			return nil, err
		}
		in.port, in.hasPort = port, hasPort
	}
	return assemble(in, ParseOptions{}, violationSink{})
}

// SetIPv4Host returns a copy of u with its host replaced by the literal
// IPv4 address addr.
func (u *URL) SetIPv4Host(addr uint32) (*URL, error) {
	if u.NonRelative() {
		return nil, errKind(ErrSetHostOnCannotBeABaseURL, "cannot set host on a non-relative URL")
	}
	in := u.toAssembleInput()
	in.hasAuthority = true
	in.host = parsedHost{text: formatIPv4(addr), host: Host{Kind: HostIPv4, IPv4: addr}}
	return assemble(in, ParseOptions{}, violationSink{})
}

// SetIPv6Host returns a copy of u with its host replaced by the literal,
// bracketed IPv6 address addr.
func (u *URL) SetIPv6Host(addr [16]byte) (*URL, error) {
	if u.NonRelative() {
		return nil, errKind(ErrSetHostOnCannotBeABaseURL, "cannot set host on a non-relative URL")
	}
	in := u.toAssembleInput()
	in.hasAuthority = true
	in.host = parsedHost{text: "[" + formatIPv6(addr) + "]", host: Host{Kind: HostIPv6, IPv6: addr}}
	return assemble(in, ParseOptions{}, violationSink{})
}

// SetPort returns a copy of u with its port replaced. Passing hasPort=false
// clears the port, falling back to the scheme's default if it has one. It
// fails on a file: URL and on a URL with no host.
func (u *URL) SetPort(port uint16, hasPort bool) (*URL, error) {
	if u.Scheme() == "file" {
		return nil, errKind(ErrOther, "cannot set port on a file: URL")
	}
	if !u.HasHost() || u.HostStr() == "" || u.NonRelative() {
		return nil, errKind(ErrSetHostOnCannotBeABaseURL, "cannot set port on a URL with no host")
	}
	in := u.toAssembleInput()
	if def, ok := defaultPortFor(u.Scheme()); hasPort && ok && def == port {
		in.port, in.hasPort = 0, false
	} else {
		in.port, in.hasPort = port, hasPort
	}
	return assemble(in, ParseOptions{}, violationSink{})
}

// SetPath re-parses path and returns a copy of u with its path replaced.
// On a non-relative (opaque-path) URL, path is opaque-parsed in place: a
// leading '/' is escaped as "%2F" so the result can't be mistaken for a
// hierarchical path on a later parse.
func (u *URL) SetPath(path string) (*URL, error) {
	if u.NonRelative() {
		return setOpaquePath(u, path), nil
	}
	segments := normalizeSegments(splitRawPathSegments(path, u.IsSpecial(), violationSink{}), u.Scheme() == "file")
	in := u.toAssembleInput()
	in.pathSegments = segments
	return assemble(in, ParseOptions{}, violationSink{})
}

// setOpaquePath splices a new opaque path into u, the same
// truncate-at-path_start-then-append pattern SetQuery and SetFragment use,
// since rebuilding through assemble would force a hierarchical path onto a
// URL that has none.
func setOpaquePath(u *URL, path string) *URL {
	afterPathEnd := len(u.serialization)
	switch {
	case u.hasQuery:
		afterPathEnd = u.queryStart
	case u.hasFragment:
		afterPathEnd = u.fragmentStart
	}
	afterPath := u.serialization[afterPathEnd:]

	var out strings.Builder
	out.WriteString(u.serialization[:u.pathStart])
	if strings.HasPrefix(path, "/") {
		out.WriteString("%2F")
		path = path[1:]
	}
	percentEncodeInto(path, simpleEncodeSet, &out)

	c := u.Clone()
	shift := out.Len() - afterPathEnd
	if c.hasQuery {
		c.queryStart += shift
	}
	if c.hasFragment {
		c.fragmentStart += shift
	}
	out.WriteString(afterPath)
	c.serialization = out.String()
	return c
}

// PushPathSegment returns a copy of u with segment appended as a new final
// path segment, the building block for a hierarchical-path URL that is
// grown one component at a time.
func (u *URL) PushPathSegment(segment string) (*URL, error) {
	if u.NonRelative() {
		return nil, errKind(ErrSetHostOnCannotBeABaseURL, "cannot push a path segment on a non-relative URL")
	}
	in := u.toAssembleInput()
	in.pathSegments = append(append([]string(nil), in.pathSegments...), percentEncode(segment, pathSegmentEncodeSet))
	return assemble(in, ParseOptions{}, violationSink{})
}

// PopPathSegment returns a copy of u with its final path segment removed.
// It refuses to pop a file: URL's lone windows drive-letter segment, the
// same guard shortenPath applies during path normalization.
func (u *URL) PopPathSegment() (*URL, error) {
	if u.NonRelative() {
		return nil, errKind(ErrSetHostOnCannotBeABaseURL, "cannot pop a path segment on a non-relative URL")
	}
	in := u.toAssembleInput()
	in.pathSegments = shortenPath(in.pathSegments, u.Scheme() == "file")
	return assemble(in, ParseOptions{}, violationSink{})
}

// SetQuery returns a copy of u with its query replaced by the
// percent-encoded form of query, or removed entirely if hasQuery is false.
// Unlike the other setters this splices bytes directly rather than
// rebuilding through assemble, since it also applies to a non-relative
// (opaque-path) URL and assemble has no way to represent an opaque path.
func (u *URL) SetQuery(query string, hasQuery bool) (*URL, error) {
	var out strings.Builder
	queryEnd := len(u.serialization)
	if u.hasFragment {
		queryEnd = u.fragmentStart
	}
	pathEnd := queryEnd
	if u.hasQuery {
		pathEnd = u.queryStart
	}
	out.WriteString(u.serialization[:pathEnd])

	c := u.Clone()
	c.hasQuery = hasQuery
	if hasQuery {
		c.queryStart = out.Len()
		out.WriteByte('?')
		percentEncodeInto(strings.TrimPrefix(query, "?"), queryEncodeSet, &out)
	}
	shift := out.Len() - queryEnd
	if c.hasFragment {
		c.fragmentStart += shift
		out.WriteString(u.serialization[queryEnd:])
	}
	c.serialization = out.String()
	return c, nil
}

// SetFragment returns a copy of u with its fragment replaced by the
// percent-encoded form of fragment, or removed entirely if hasFragment is
// false. Like SetQuery, it splices bytes directly so it also works on a
// non-relative URL.
func (u *URL) SetFragment(fragment string, hasFragment bool) (*URL, error) {
	if !hasFragment {
		c := u.Clone()
		c.hasFragment = false
		if u.hasFragment {
			c.serialization = u.serialization[:u.fragmentStart]
		}
		return c, nil
	}
	return withFragmentOnly(u, strings.TrimPrefix(fragment, "#")), nil
}
