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

// parseFileURL implements the Standard's "file" state: zero, one, or two
// leading slashes after the scheme, a possible windows drive letter in
// authority position, and "localhost" normalizing away to an empty host.
func parseFileURL(rest string, base *URL, options ParseOptions, sink violationSink) (*URL, error) {
	slashes := 0
	for slashes < len(rest) && (rest[slashes] == '/' || rest[slashes] == '\\') {
		slashes++
	}

	switch {
	case slashes == 0:
		if base != nil && base.Scheme() == "file" {
			return fileRelativeToBase(rest, base, options, sink)
		}
		return assembleFile(parsedHost{host: Host{Kind: HostNone}}, rest, options, sink)
	case slashes == 1:
		sink.report("file URL path starts with one slash")
		return assembleFile(parsedHost{host: Host{Kind: HostNone}}, rest[1:], options, sink)
	default:
		// Only the first two slashes belong to the scheme separator; a third
		// (or more) is left for the file host scan below, where it
		// immediately terminates an empty host -- exactly the shape
		// "file:///path" relies on.
		afterSlashes := rest[2:]
		hostPart, tail := splitAtFirstOf(afterSlashes, "/\\?#")
		if isWindowsDriveLetter(hostPart) {
			sink.report("file host looks like a windows drive letter")
			return assembleFile(parsedHost{host: Host{Kind: HostNone}}, afterSlashes, options, sink)
		}
		if hostPart == "" || strings.EqualFold(hostPart, "localhost") {
			return assembleFile(parsedHost{host: Host{Kind: HostNone}}, tail, options, sink)
		}
		ph, err := parseHost(hostPart, true)
		if err != nil {
			return nil, err
		}
		return assembleFile(ph, tail, options, sink)
	}
}

// assembleFile finishes a file: URL given its (possibly empty) host and the
// unparsed path/query/fragment tail.
func assembleFile(host parsedHost, tail string, options ParseOptions, sink violationSink) (*URL, error) {
	pathRaw, queryRaw, hasQuery, fragmentRaw, hasFragment := splitTail(tail)
	segments := normalizeSegments(splitRawPathSegments(pathRaw, true, sink), true)
	return assemble(assembleInput{
		scheme:       "file",
		hasAuthority: true,
		host:         host,
		pathSegments: segments,
		hasQuery:     hasQuery,
		query:        queryRaw,
		hasFragment:  hasFragment,
		fragment:     fragmentRaw,
	}, options, sink)
}

// fileRelativeToBase resolves a slash-less "file:" reference against a
// file: base, special-casing a leading windows drive letter to replace
// rather than merge onto the base path -- the Standard's guard against ".."
// segments escaping out of a drive root.
func fileRelativeToBase(rest string, base *URL, options ParseOptions, sink violationSink) (*URL, error) {
	pathRaw, queryRaw, hasQuery, fragmentRaw, hasFragment := splitTail(rest)
	newSegs := splitRawPathSegments(pathRaw, true, sink)

	var combined []string
	if len(newSegs) > 0 && isWindowsDriveLetter(newSegs[0]) {
		combined = newSegs
	} else {
		baseSegs, _ := base.PathSegments()
		combined = append(shortenPath(append([]string(nil), baseSegs...), true), newSegs...)
	}
	segments := normalizeSegments(combined, true)

	return assemble(assembleInput{
		scheme:       "file",
		hasAuthority: true,
		host:         parsedHost{text: base.HostStr(), host: base.HostInfo()},
		pathSegments: segments,
		hasQuery:     hasQuery,
		query:        queryRaw,
		hasFragment:  hasFragment,
		fragment:     fragmentRaw,
	}, options, sink)
}

// FileURLFromPath converts an absolute filesystem path into a file: URL.
// It accepts both POSIX paths ("/etc/hosts") and Windows paths
// ("C:\Users\x" or "C:/Users/x"); a Windows drive letter is recognized by
// its trailing ':' and normalized to the Standard's "C:" segment form.
func FileURLFromPath(path string) (*URL, error) {
	if path == "" {
		return nil, errKind(ErrFileURLMissingHost, "empty path")
	}

	normalized := strings.ReplaceAll(path, "\\", "/")
	normalized = strings.TrimPrefix(normalized, "/")
	rawSegments := strings.Split(normalized, "/")

	segments := make([]string, 0, len(rawSegments))
	for i, seg := range rawSegments {
		if i == 0 && isWindowsDriveLetter(seg) {
			segments = append(segments, normalizeDriveLetter(seg))
			continue
		}
		segments = append(segments, percentEncode(seg, pathSegmentEncodeSet))
	}

	return assemble(assembleInput{
		scheme:       "file",
		hasAuthority: true,
		host:         parsedHost{host: Host{Kind: HostNone}},
		pathSegments: segments,
	}, ParseOptions{}, violationSink{})
}

// FilePath converts a file: URL back into a filesystem path. It returns
// ErrFileURLMissingHost if the URL names a non-empty, non-localhost host,
// since such a URL has no meaning as a local path.
func (u *URL) FilePath() (string, error) {
	if u.Scheme() != "file" {
		return "", errKind(ErrFileURLMissingHost, "not a file: URL")
	}
	if host := u.HostStr(); host != "" {
		return "", errKindDetails(ErrFileURLMissingHost, "file URL has a non-empty host", host)
	}

	segments, ok := u.PathSegments()
	if !ok || len(segments) == 0 {
		return "", errKind(ErrFileURLMissingHost, "file URL has no path")
	}

	decoded := make([]string, len(segments))
	for i, seg := range segments {
		decoded[i] = percentDecodeString(seg)
	}

	if isNormalizedWindowsDriveLetter(decoded[0]) {
		return strings.Join(decoded, "\\"), nil
	}
	return "/" + strings.Join(decoded, "/"), nil
}
