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

func TestParseHostSpecialDomain(t *testing.T) {
	t.Parallel()
	ph, err := parseHost("Example.COM", true)
	if err != nil {
		t.Fatalf("parseHost error: %v", err)
	}
	if ph.host.Kind != HostDomain {
		t.Errorf("Kind = %v, want Domain", ph.host.Kind)
	}
	if ph.text != "example.com" {
		t.Errorf("text = %q, want %q", ph.text, "example.com")
	}
}

func TestParseHostOpaque(t *testing.T) {
	t.Parallel()
	ph, err := parseHost("not-a-spécial-host!", false)
	if err != nil {
		t.Fatalf("parseHost error: %v", err)
	}
	if ph.host.Kind != HostDomain {
		t.Errorf("Kind = %v, want Domain", ph.host.Kind)
	}
	if ph.text != "not-a-sp%C3%A9cial-host!" {
		t.Errorf("text = %q, want %q", ph.text, "not-a-sp%C3%A9cial-host!")
	}
}

func TestParseHostForbiddenCodePoint(t *testing.T) {
	t.Parallel()
	if _, err := parseHost("exa#mple.com", true); err == nil {
		t.Fatal("expected error for forbidden host code point")
	}
}

func TestParseHostEmpty(t *testing.T) {
	t.Parallel()
	ph, err := parseHost("", true)
	if err != nil {
		t.Fatalf("parseHost error: %v", err)
	}
	if ph.host.Kind != HostNone {
		t.Errorf("Kind = %v, want None", ph.host.Kind)
	}
}

func TestParseIPv4Variants(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want uint32
	}{
		{"plain decimal", "1.2.3.4", 0x01020304},
		{"octal parts", "0001.0002.0003.0004", 0x01020304},
		{"hex parts", "0x1.0x2.0x3.0x4", 0x01020304},
		{"three parts last absorbs two octets", "1.2.3", 0x01020003},
		{"two parts last absorbs three octets", "1.2", 0x01000002},
		{"one part whole address", "16909060", 0x01020304},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok, err := parseIPv4(tc.in)
			if err != nil {
				t.Fatalf("parseIPv4(%q) error: %v", tc.in, err)
			}
			if !ok {
				t.Fatalf("parseIPv4(%q) ok = false", tc.in)
			}
			if got != tc.want {
				t.Errorf("parseIPv4(%q) = %#x, want %#x", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseIPv4Overflow(t *testing.T) {
	t.Parallel()
	if _, _, err := parseIPv4("1.2.3.4.5"); err == nil {
		t.Fatal("expected error for too many IPv4 parts")
	}
	if _, _, err := parseIPv4("999.1.1.1"); err == nil {
		t.Fatal("expected error for out-of-range IPv4 part")
	}
}

func TestFormatIPv6Compression(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		addr [16]byte
		want string
	}{
		{"all zero", [16]byte{}, "::"},
		{"loopback", [16]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, "::1"},
		{
			"leading run",
			[16]byte{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
			"1::1",
		},
		{
			"trailing run",
			[16]byte{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			"1::",
		},
		{
			"no compression needed for a single zero hextet",
			[16]byte{0, 1, 0, 0, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0, 7},
			"1:0:2:3:4:5:6:7",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := formatIPv6(tc.addr); got != tc.want {
				t.Errorf("formatIPv6(%v) = %q, want %q", tc.addr, got, tc.want)
			}
		})
	}
}

func TestParseIPv6MultipleCompressionRejected(t *testing.T) {
	t.Parallel()
	if _, err := parseIPv6("1::2::3"); err == nil {
		t.Fatal("expected error for multiple '::' compressions")
	}
}

func TestLooksLikeIPv4(t *testing.T) {
	t.Parallel()
	if !looksLikeIPv4("1.2.3.4") {
		t.Error("expected 1.2.3.4 to look like IPv4")
	}
	if looksLikeIPv4("example.com") {
		t.Error("expected example.com not to look like IPv4")
	}
	if looksLikeIPv4("") {
		t.Error("expected empty string not to look like IPv4")
	}
}
