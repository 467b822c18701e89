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

import (
	"golang.org/x/text/encoding/htmlindex"
)

// applyEncodingOverride transcodes raw, a UTF-8 string, into the bytes of
// the legacy encoding named by label (a WHATWG Encoding standard label such
// as "shift_jis" or "windows-1252"), so that the caller's subsequent
// percent-encoding pass escapes the legacy byte sequence rather than UTF-8.
// This is the query component's "encoding override", the one place the
// Standard still lets a non-UTF-8 byte sequence into a URL.
func applyEncodingOverride(raw, label string) (string, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return raw, err
	}
	transcoded, err := enc.NewEncoder().String(raw)
	if err != nil {
		return raw, err
	}
	return transcoded, nil
}
