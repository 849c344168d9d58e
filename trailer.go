//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package regkey

import (
	"fmt"
)

const (
	trailerFill = uint8(114)
	trailerHigh = uint8(9 << 4)

	// bytes of the name consumed by the trailer
	trailerSeed = 5
)

// InvalidNameError reports a name the key format cannot represent
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	if len(e.Name) < trailerSeed {
		return fmt.Sprintf("invalid name %q: need at least %d bytes", e.Name, trailerSeed)
	}

	return fmt.Sprintf("invalid name %q: third and fourth characters make a zero divisor", e.Name)
}

func nibble(hi, lo uint8) uint8 {
	return (hi&0xf)<<4 | (lo & 0xf)
}

// deriveTrailer computes the trailer from the first five bytes of the name.
// Only low nibbles are kept, so byte wraparound is safe everywhere
// except the divisor, which must be computed at full width.
func deriveTrailer(name []byte) (trailer [trailerSize]byte, err error) {
	if len(name) < trailerSeed {
		err = &InvalidNameError{Name: string(name)}
		return
	}

	b0, b1, b2, b3, b4 := name[0], name[1], name[2], name[3], name[4]

	// Rejected whenever the divisor is zero in byte arithmetic; the
	// quotient itself still uses the full width divisor.
	if uint8(b2-b3+1) == 0 {
		err = &InvalidNameError{Name: string(name)}
		return
	}

	div := int(b2) - int(b3) + 1
	q := uint8((int(b0) * int(b1)) / div)
	notB4 := ^b4

	trailer[1] = nibble((b0|b1)^((b2|b3)+b4), b0^b1^b2^b3^b4)
	trailer[2] = nibble(q-b4, q*b4)
	trailer[3] = nibble((b2+b3)*(b0-b1)^notB4, (b2-b3)*(b0+b1)^b4)

	// Stereo Tool's own encoder flips bit 3 of 0xff on a parity test
	// here, then overwrites the result with this constant.
	trailer[4] = trailerFill

	trailer[5] = trailerHigh | ((b0+b1-b2)-(b3+b4))&0xf

	return
}
