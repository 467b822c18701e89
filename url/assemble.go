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

// assembleInput collects every already-validated component a hierarchical
// URL is built from; assemble is the single place that lays them out into
// the canonical serialization string and records their offsets.
type assembleInput struct {
	scheme string

	hasAuthority bool
	username     string
	password     string
	hasPassword  bool

	host parsedHost
	port uint16

	hasPort bool

	pathSegments []string

	hasQuery bool
	query    string

	hasFragment bool
	fragment    string
}

// assemble writes in.scheme, authority, path, query, and fragment into a
// single serialization buffer, percent-encoding the userinfo, query, and
// fragment under their encode sets (path segments and host text are written
// as given, already encoded) and recording the byte offsets a URL needs for
// its accessors.
func assemble(in assembleInput, options ParseOptions, sink violationSink) (*URL, error) {
	var out strings.Builder
	u := &URL{host: in.host.host, hasPort: in.hasPort, port: in.port}

	out.WriteString(in.scheme)
	out.WriteByte(':')
	u.schemeEnd = out.Len()

	if in.hasAuthority {
		out.WriteString("//")
		writeUserinfo(&out, in)
		u.usernameEnd = userinfoEndOffset(&out, in)
		u.hostStart = out.Len()
		out.WriteString(in.host.text)
		u.hostEnd = out.Len()
		if in.hasPort {
			out.WriteByte(':')
			writePort(&out, in.port)
		}
	} else {
		u.usernameEnd = out.Len()
		u.hostStart = out.Len()
		u.hostEnd = out.Len()
	}

	u.pathStart = out.Len()
	if in.hasAuthority || len(in.pathSegments) > 0 {
		out.WriteString(joinPathSegments(in.pathSegments))
	}

	if in.hasQuery {
		u.hasQuery = true
		u.queryStart = out.Len()
		out.WriteByte('?')
		writeQuery(&out, in.query, options)
	}
	if in.hasFragment {
		u.hasFragment = true
		u.fragmentStart = out.Len()
		out.WriteByte('#')
		percentEncodeInto(in.fragment, fragmentEncodeSet, &out)
	}

	u.serialization = out.String()
	return u, nil
}

// writeUserinfo appends "user[:pass]@" when a non-empty username or password
// was supplied; it writes nothing when both are empty, so an empty
// userinfo never leaves a bare "@" (or ":@") behind.
func writeUserinfo(out *strings.Builder, in assembleInput) {
	if in.username == "" && in.password == "" {
		return
	}
	percentEncodeInto(in.username, userinfoEncodeSet, out)
	if in.hasPassword {
		out.WriteByte(':')
		percentEncodeInto(in.password, userinfoEncodeSet, out)
	}
	out.WriteByte('@')
}

// userinfoEndOffset recovers the offset usernameEnd must record: the
// position of the ':' before a password, or of the '@' itself when there is
// no password, or the current buffer end when there was no userinfo.
func userinfoEndOffset(out *strings.Builder, in assembleInput) int {
	if in.username == "" && in.password == "" {
		return out.Len()
	}
	s := out.String()
	at := strings.LastIndexByte(s, '@')
	if in.hasPassword {
		colon := strings.LastIndexByte(s[:at], ':')
		return colon
	}
	return at
}

func writePort(out *strings.Builder, port uint16) {
	var buf [5]byte
	n := len(buf)
	if port == 0 {
		out.WriteByte('0')
		return
	}
	for port > 0 {
		n--
		buf[n] = byte('0' + port%10)
		port /= 10
	}
	out.Write(buf[n:])
}
