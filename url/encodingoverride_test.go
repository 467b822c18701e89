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

func TestApplyEncodingOverrideUnknownLabel(t *testing.T) {
	t.Parallel()
	if _, err := applyEncodingOverride("hello", "not-a-real-encoding"); err == nil {
		t.Fatal("expected an error for an unrecognized encoding label")
	}
}

func TestApplyEncodingOverrideShiftJIS(t *testing.T) {
	t.Parallel()
	got, err := applyEncodingOverride("a", "shift_jis")
	if err != nil {
		t.Fatalf("applyEncodingOverride error: %v", err)
	}
	if got != "a" {
		t.Errorf("applyEncodingOverride(%q) = %q, want unchanged for ASCII input", "a", got)
	}
}

func TestParseWithEncodingOverride(t *testing.T) {
	t.Parallel()
	u, err := ParseWith("http://example.com/?q=a", ParseOptions{EncodingOverride: "windows-1252"})
	if err != nil {
		t.Fatalf("ParseWith error: %v", err)
	}
	if got := fst(u.Query()); got != "q=a" {
		t.Errorf("Query() = %q, want %q", got, "q=a")
	}
}
