// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import "strings"

// A Class is the size class of a problem instance.
type Class int

const (
	Small Class = iota
	Large
)

func (c Class) String() string {
	switch c {
	case Small:
		return "Small"
	case Large:
		return "Large"
	}
	return "Class(?)"
}

// DisplayName returns the instance name shown in reports: the raw
// identifier without a trailing ".txt".
func DisplayName(instance string) string {
	return strings.TrimSuffix(instance, ".txt")
}

// Classify returns the size class of the instance with the given
// display name. Instance names of the large benchmark sets carry an
// underscore (c101_21); the small ones do not (c101C5).
func Classify(name string) Class {
	if strings.Contains(name, "_") {
		return Large
	}
	return Small
}
