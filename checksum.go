//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package regkey

const (
	checksumMultiplier = uint32(0x11121)
	checksumFold       = 26
)

// Checksum is the rolling hash stored in a key's header. It must be
// computed with the checksum field of the buffer zeroed.
func Checksum(buff []byte) (sum uint32) {
	for _, k := range buff {
		sum = uint32(k)*checksumMultiplier + (sum << 3)
		sum += sum >> checksumFold
	}

	return
}
