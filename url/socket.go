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

// WithDefaultPort returns u's host and the port to dial: its explicit port
// if present, the scheme's well-known default if not, or fallback if the
// scheme has neither. It is the bridge between a parsed URL and a net.Dial
// address, which always needs a concrete port.
func WithDefaultPort(u *URL, fallback uint16) (host string, port uint16) {
	host = u.HostStr()
	if p, ok := u.Port(); ok {
		return host, p
	}
	if p, ok := defaultPortFor(u.Scheme()); ok {
		return host, p
	}
	return host, fallback
}
