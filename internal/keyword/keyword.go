// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keyword builds the search keyword from command-line arguments.
package keyword

import "strings"

// FromArgs joins the positional arguments, in order, into a single keyword.
// No separator is inserted between tokens, so "san francisco" passed as two
// arguments becomes "sanfrancisco". Zero arguments yield the empty string,
// which is still a valid keyword.
func FromArgs(args []string) string {
	return strings.Join(args, "")
}
