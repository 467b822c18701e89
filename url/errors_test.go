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
	"bytes"
	"log/slog"
	"testing"
)

func TestKindErrorError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  *kindError
		want string
	}{
		{"message only", &kindError{message: "base message"}, "base message"},
		{"message with character", &kindError{message: "invalid character", char: '<', hasChar: true}, "invalid character '<'"},
		{"message with details", &kindError{message: "invalid sequence", details: "%2G"}, "invalid sequence '%2G'"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAsParseError(t *testing.T) {
	t.Parallel()
	_, err := Parse("http://exa<mple.com/")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("err type = %T, want *ParseError", err)
	}
	if pe.Code == ErrOther {
		t.Errorf("Code = %v, want a specific error code", pe.Code)
	}
}

func TestErrorCodeString(t *testing.T) {
	t.Parallel()
	if got := ErrEmptyHost.String(); got != "EmptyHost" {
		t.Errorf("String() = %q, want %q", got, "EmptyHost")
	}
	if got := ErrorCode(999).String(); got != "Other" {
		t.Errorf("String() for unknown code = %q, want %q", got, "Other")
	}
}

func TestSlogViolationLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	report := SlogViolationLogger(logger)

	_, err := ParseWith("  http://example.com/\t", ParseOptions{OnSyntaxViolation: report})
	if err != nil {
		t.Fatalf("ParseWith error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected a syntax violation to be logged")
	}
}
