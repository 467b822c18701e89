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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package url

import "testing"

func TestPercentEncode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		set  encodeSet
		want string
	}{
		{"space in simple set", "a b", simpleEncodeSet, "a%20b"},
		{"fragment set leaves slash", "a/b", fragmentEncodeSet, "a/b"},
		{"userinfo set escapes colon", "a:b", userinfoEncodeSet, "a%3Ab"},
		{"path segment set escapes percent", "a%b", pathSegmentEncodeSet, "a%25b"},
		{"already-escaped triplet is idempotent", "%2E%2e", pathSegmentEncodeSet, "%2E%2e"},
		{"non-ascii always encoded", "café", simpleEncodeSet, "caf%C3%A9"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := percentEncode(tc.in, tc.set); got != tc.want {
				t.Errorf("percentEncode(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestPercentEncodeDoubleEncodeRegression(t *testing.T) {
	t.Parallel()
	once := percentEncode("100%", pathSegmentEncodeSet)
	twice := percentEncode(once, pathSegmentEncodeSet)
	if once != twice {
		t.Errorf("percent-encoding is not idempotent: once=%q twice=%q", once, twice)
	}
}

func TestPercentDecode(t *testing.T) {
	t.Parallel()
	if got := percentDecodeString("a%20b%2Fc"); got != "a b/c" {
		t.Errorf("percentDecodeString = %q, want %q", got, "a b/c")
	}
	if got := percentDecodeString("no-escapes"); got != "no-escapes" {
		t.Errorf("percentDecodeString = %q, want unchanged", got)
	}
}

func TestIsPercentTriplet(t *testing.T) {
	t.Parallel()
	if !isPercentTriplet("%2e", 0) {
		t.Error("expected %2e to be a valid triplet")
	}
	if isPercentTriplet("%2", 0) {
		t.Error("expected truncated %2 not to be a valid triplet")
	}
	if isPercentTriplet("%zz", 0) {
		t.Error("expected %zz not to be a valid triplet")
	}
}
