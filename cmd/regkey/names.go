//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

// ScanNames splits a name list into names. Names are separated by
// whitespace, may be quoted with ' or ", and may use backslash escapes
// (\t, \n, \\, \e, three digit octal). A '#' outside a name starts a
// comment running to the end of the line.
func ScanNames(data []byte, atEOF bool) (advance int, token []byte, err error) {
	skip := 0
	for skip < len(data) {
		switch {
		case isSpace(data[skip]):
			skip++
			continue
		case data[skip] == '#':
			eol := skip
			for eol < len(data) && data[eol] != '\n' {
				eol++
			}
			if eol == len(data) && !atEOF {
				// Need the rest of the comment
				advance = skip
				return
			}
			skip = eol
			continue
		}
		break
	}

	data = data[skip:]
	if len(data) == 0 {
		advance = skip
		return
	}

	var name []byte
	var quote byte
	escape := false
	oct := 0
	octDigits := 0

	flushOct := func() {
		if octDigits > 0 {
			name = append(name, byte(oct))
			oct = 0
			octDigits = 0
		}
	}

	for here, c := range data {
		if escape {
			if c >= '0' && c <= '7' {
				oct = oct*8 + int(c-'0')
				octDigits++
				if octDigits == 3 {
					flushOct()
					escape = false
				}
				continue
			}

			if octDigits > 0 {
				// Short octal escape, this byte is not part of it
				flushOct()
				escape = false
			} else {
				switch c {
				case 't':
					c = '\t'
				case 'n':
					c = '\n'
				case 'r':
					c = '\r'
				case 'e':
					c = '\033'
				}
				name = append(name, c)
				escape = false
				continue
			}
		}

		switch {
		case c == '\\':
			escape = true
		case quote == 0 && (c == '"' || c == '\''):
			quote = c
		case quote != 0 && c == quote:
			quote = 0
		case quote == 0 && isSpace(c):
			advance = skip + here
			token = name
			return
		default:
			name = append(name, c)
		}
	}

	if !atEOF {
		// The name may continue past this buffer
		advance = skip
		return
	}

	if escape && octDigits > 0 {
		flushOct()
		escape = false
	}

	if quote == 0 && !escape {
		advance = skip + len(data)
		token = name
		return
	}

	err = fmt.Errorf("incomplete name: '%v' => '%v'", string(data), string(name))

	return
}

// ReadNames reads a name list, expanding $VAR references in each name
func ReadNames(reader io.Reader) (names []string, err error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(ScanNames)
	for scanner.Scan() {
		names = append(names, os.ExpandEnv(scanner.Text()))
	}

	err = scanner.Err()
	if err != nil {
		names = nil
		return
	}

	return
}
