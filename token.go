//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package regkey

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	tokenOpen  = "<"
	tokenClose = ">"
)

var ErrTokenFormat = errors.New("malformed key token")

// TokenLen is the length of the token for a name of nameLen bytes
func TokenLen(nameLen int) int {
	return 2*(nameLen+Overhead) + len(tokenOpen) + len(tokenClose)
}

// FormatToken renders a buffer as <hex>, lowercase, two digits per byte
func FormatToken(buff []byte) (token string) {
	var sb strings.Builder

	sb.Grow(2*len(buff) + len(tokenOpen) + len(tokenClose))
	sb.WriteString(tokenOpen)
	sb.WriteString(hex.EncodeToString(buff))
	sb.WriteString(tokenClose)

	token = sb.String()

	return
}

// ParseToken is the inverse of FormatToken
func ParseToken(token string) (buff []byte, err error) {
	if !strings.HasPrefix(token, tokenOpen) || !strings.HasSuffix(token, tokenClose) || len(token) < 2 {
		err = fmt.Errorf("%w: missing %s%s brackets", ErrTokenFormat, tokenOpen, tokenClose)
		return
	}

	digits := token[len(tokenOpen) : len(token)-len(tokenClose)]
	for n := 0; n < len(digits); n++ {
		c := digits[n]
		if !(c >= '0' && c <= '9') && !(c >= 'a' && c <= 'f') {
			err = fmt.Errorf("%w: %q at offset %d is not a lowercase hex digit", ErrTokenFormat, c, n+len(tokenOpen))
			return
		}
	}

	buff, err = hex.DecodeString(digits)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrTokenFormat, err)
		buff = nil
		return
	}

	return
}
