// Copyright 2024 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package cmdline

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// quoteState is the quoting mode the scanner is currently in.
type quoteState int

const (
	unquoted quoteState = iota
	singleQuoted
	doubleQuoted
)

// closingQuote returns the quote character that ends the quoted region of
// this state.
func (q quoteState) closingQuote() rune {
	switch q {
	case singleQuoted:
		return '\''
	case doubleQuoted:
		return '"'
	}
	return 0
}

// Split splits a command string into its individual arguments, in a single
// left-to-right scan.
//
//   - Outside quotes, runs of whitespace separate arguments; leading and
//     trailing whitespace is ignored.
//   - A ' or " opens a quoted region that only the same quote character
//     closes. Inside, whitespace and the other quote character are ordinary
//     content. The quote characters themselves are kept in the argument, so
//     “echo "a b"” splits into “echo” and “"a b"”.
//   - Outside quotes, a backslash directly followed by whitespace embeds that
//     whitespace into the current argument; the backslash is dropped. Any
//     other backslash is ordinary content.
//
// Split never fails: when the command ends inside an unclosed quote, whatever
// has been collected so far, including the opening quote, becomes the final
// argument. An empty (or all-whitespace) command returns an empty, non-nil
// slice.
func Split(command string) []string {
	args := []string{}
	var arg strings.Builder
	state := unquoted

	flush := func() {
		if arg.Len() == 0 {
			return
		}
		args = append(args, arg.String())
		arg.Reset()
	}

	for idx := 0; idx < len(command); {
		r, size := utf8.DecodeRuneInString(command[idx:])
		// invalid UTF-8 is passed through byte by byte, unchanged.
		chunk := command[idx : idx+size]
		idx += size
		if state != unquoted {
			arg.WriteString(chunk)
			if r == state.closingQuote() {
				state = unquoted
			}
			continue
		}
		switch r {
		case '\\':
			next, nextsize := utf8.DecodeRuneInString(command[idx:])
			if nextsize > 0 && unicode.IsSpace(next) {
				arg.WriteString(command[idx : idx+nextsize])
				idx += nextsize
				continue
			}
			arg.WriteString(chunk)
		case '\'':
			state = singleQuoted
			arg.WriteString(chunk)
		case '"':
			state = doubleQuoted
			arg.WriteString(chunk)
		default:
			if unicode.IsSpace(r) {
				flush()
				continue
			}
			arg.WriteString(chunk)
		}
	}
	flush()
	return args
}
