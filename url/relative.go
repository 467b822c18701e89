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

// parseRelativeReference resolves input, which carries no scheme of its
// own, against base: the Standard's "relative URL string" state, covering
// protocol-relative authorities, absolute and relative paths, and bare
// query/fragment references.
func parseRelativeReference(input string, base *URL, options ParseOptions, sink violationSink) (*URL, error) {
	scheme := base.Scheme()
	isSpecial := base.IsSpecial()

	if base.NonRelative() {
		if strings.HasPrefix(input, "#") {
			return withFragmentOnly(base, input[1:]), nil
		}
		if input == "" {
			return base.Clone(), nil
		}
		return nil, errKind(ErrRelativeURLWithCannotBeABaseBase, "relative reference against a non-relative base")
	}

	if input == "" {
		return base.Clone(), nil
	}

	switch input[0] {
	case '#':
		return withFragmentOnly(base, input[1:]), nil
	case '?':
		rawQuery, rawFragment := splitAtFirstOf(input[1:], "#")
		u, err := withQueryAndFragment(base, rawQuery)
		if err != nil {
			return nil, err
		}
		if rawFragment != "" {
			return withFragmentOnly(u, rawFragment[1:]), nil
		}
		return u, nil
	}

	if strings.HasPrefix(input, "//") {
		return parseAuthorityAndTail(scheme, input[2:], options, sink, isSpecial)
	}

	if strings.HasPrefix(input, "/") || (isSpecial && strings.HasPrefix(input, "\\")) {
		return assembleWithInheritedHost(scheme, base, input, options, sink, false)
	}

	return assembleWithInheritedHost(scheme, base, input, options, sink, true)
}

// withFragmentOnly returns a copy of base with its fragment replaced (or
// added), leaving every other component, including an opaque path,
// untouched -- the only non-empty reference parseRelativeReference resolves
// against a non-relative base.
func withFragmentOnly(base *URL, rawFragment string) *URL {
	var out strings.Builder
	end := len(base.serialization)
	if base.hasFragment {
		end = base.fragmentStart
	}
	out.WriteString(base.serialization[:end])

	u := base.Clone()
	u.hasFragment = true
	u.fragmentStart = out.Len()
	out.WriteByte('#')
	percentEncodeInto(rawFragment, fragmentEncodeSet, &out)
	u.serialization = out.String()
	return u
}

// withQueryAndFragment returns a copy of base with its query replaced and
// its fragment cleared, used for a bare "?query" reference.
func withQueryAndFragment(base *URL, rawQuery string) (*URL, error) {
	var out strings.Builder
	end := len(base.serialization)
	if base.hasQuery {
		end = base.queryStart
	} else if base.hasFragment {
		end = base.fragmentStart
	}
	out.WriteString(base.serialization[:end])

	u := base.Clone()
	u.hasQuery = true
	u.queryStart = out.Len()
	u.hasFragment = false
	u.fragmentStart = 0
	out.WriteByte('?')
	percentEncodeInto(rawQuery, queryEncodeSet, &out)
	u.serialization = out.String()
	return u, nil
}
