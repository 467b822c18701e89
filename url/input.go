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

// sanitizeInput implements the Standard's "remove any leading and trailing
// C0 control or space" and "remove all ASCII tab or newline" steps, firing
// report for each stripped class of byte so callers can observe the
// (non-fatal) syntax violation.
func sanitizeInput(s string, report func(string)) string {
	start, end := 0, len(s)
	for start < end && isC0OrSpace(s[start]) {
		start++
	}
	for end > start && isC0OrSpace(s[end-1]) {
		end--
	}
	if start != 0 || end != len(s) {
		report("leading or trailing C0 control or space")
	}
	s = s[start:end]

	if strings.ContainsAny(s, "\t\n\r") {
		report("ASCII tab or newline in input")
		var b strings.Builder
		b.Grow(len(s))
		for i := 0; i < len(s); i++ {
			if !isASCIITabOrNewline(s[i]) {
				b.WriteByte(s[i])
			}
		}
		s = b.String()
	}
	return s
}

// violationSink wraps the optional observer callback so the parser's
// internal plumbing can call report unconditionally without a nil check at
// every call site.
type violationSink struct {
	fn func(string)
}

func (v violationSink) report(message string) {
	if v.fn != nil {
		v.fn(message)
	}
}

// parserInput provides a cursor over a byte string with peek/advance
// operations. The parsing stages in this package scan their strings
// directly and do not use it.
type parserInput struct {
	s   string
	pos int
}

func newParserInput(s string) *parserInput {
	return &parserInput{s: s}
}

func (p *parserInput) peek() (byte, bool) {
	if p.pos >= len(p.s) {
		return 0, false
	}
	return p.s[p.pos], true
}

func (p *parserInput) next() (byte, bool) {
	c, ok := p.peek()
	if ok {
		p.pos++
	}
	return c, ok
}

func (p *parserInput) rest() string {
	return p.s[p.pos:]
}

func (p *parserInput) eof() bool {
	return p.pos >= len(p.s)
}
