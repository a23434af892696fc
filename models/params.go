// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Params is a set of string-valued query parameters sent to ajax.php.
type Params map[string]string

// Merge returns a new Params holding every entry of p overlaid by every entry
// of overrides; on key collision overrides win. Neither input is modified and
// nil inputs are treated as empty.
func (p Params) Merge(overrides Params) Params {
	out := make(Params, len(p)+len(overrides))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
