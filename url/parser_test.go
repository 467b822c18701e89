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

import (
	"strings"
	"testing"

	"golang.org/x/net/idna"
)

func TestScanScheme(t *testing.T) {
	t.Parallel()
	scheme, rest, ok := scanScheme("HTTPS://example.com/a")
	if !ok {
		t.Fatal("expected a scheme to be recognized")
	}
	if scheme != "https" {
		t.Errorf("scheme = %q, want %q", scheme, "https")
	}
	if rest != "//example.com/a" {
		t.Errorf("rest = %q, want %q", rest, "//example.com/a")
	}

	if _, _, ok := scanScheme("/no/scheme/here"); ok {
		t.Error("expected no scheme to be recognized in a path-only string")
	}
	if _, _, ok := scanScheme("1http://example.com"); ok {
		t.Error("expected a scheme not to start with a digit")
	}
}

func TestEmptyHostForSpecialSchemeWithThreeSlashes(t *testing.T) {
	t.Parallel()
	if _, err := Parse("http:///path"); err == nil {
		t.Fatal("expected error for special scheme with an empty host")
	}
}

func TestSpecialSchemeMatchingBaseNoAuthorityQuirk(t *testing.T) {
	t.Parallel()
	base, err := Parse("http://example.com/a/b")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	// No scheme separator of its own: this is the special-relative-or-
	// authority quirk, resolved against base's existing host.
	got, err := ParseWith("http:c", ParseOptions{BaseURL: base})
	if err != nil {
		t.Fatalf("ParseWith error: %v", err)
	}
	if want := "http://example.com/a/c"; got.String() != want {
		t.Errorf("result = %q, want %q", got.String(), want)
	}
}

func TestSpecialSchemeSameAsBaseWithOwnAuthority(t *testing.T) {
	t.Parallel()
	base, err := Parse("http://example.com/a")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	got, err := ParseWith("http://other.example/p", ParseOptions{BaseURL: base})
	if err != nil {
		t.Fatalf("ParseWith error: %v", err)
	}
	if want := "http://other.example/p"; got.String() != want {
		t.Errorf("result = %q, want %q", got.String(), want)
	}
}

func TestIDNAPunycode(t *testing.T) {
	t.Parallel()
	u, err := Parse("https://éxample.com/")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	host := u.HostStr()
	if !strings.HasPrefix(host, "xn--") {
		t.Errorf("HostStr() = %q, want an ASCII-compatible (xn--) encoding", host)
	}
	unicode, err := idna.ToUnicode(host)
	if err != nil {
		t.Fatalf("idna.ToUnicode(%q) error: %v", host, err)
	}
	if unicode != "éxample.com" {
		t.Errorf("idna.ToUnicode(%q) = %q, want %q", host, unicode, "éxample.com")
	}
}

func TestOpaquePathScheme(t *testing.T) {
	t.Parallel()
	u, err := Parse("urn:oasis:names:specification:docbook:dtd:xml:4.1.2")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !u.NonRelative() {
		t.Error("expected a urn: URL to be non-relative")
	}
	if want := "urn:oasis:names:specification:docbook:dtd:xml:4.1.2"; u.String() != want {
		t.Errorf("result = %q, want %q", u.String(), want)
	}
}

func TestWithDefaultPort(t *testing.T) {
	t.Parallel()
	u, err := Parse("http://example.com/")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if host, port := WithDefaultPort(u, 1234); host != "example.com" || port != 80 {
		t.Errorf("WithDefaultPort = (%q, %d), want (%q, 80)", host, port, "example.com")
	}

	withExplicit, err := Parse("http://example.com:9000/")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, port := WithDefaultPort(withExplicit, 1234); port != 9000 {
		t.Errorf("WithDefaultPort port = %d, want 9000", port)
	}

	nonSpecial, err := Parse("foo://example.com/")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, port := WithDefaultPort(nonSpecial, 1234); port != 1234 {
		t.Errorf("WithDefaultPort fallback port = %d, want 1234", port)
	}
}
