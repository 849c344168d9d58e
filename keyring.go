//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package regkey

import (
	"math/bits"
)

// Keyring yields the per-position XOR mask of the key obfuscation
type Keyring struct {
	index int
}

func NewKeyring() (kr *Keyring) {
	kr = &Keyring{}

	return
}

// Mask for position n is (-1 - n) - (1 << ((1 << (n & 0x1f)) & 7)),
// truncated to a byte.
func (kr *Keyring) Next() (k byte) {
	shift := (uint32(1) << (uint(kr.index) & 0x1f)) & 7
	k = byte(-1 - kr.index - (1 << shift))
	kr.index += 1

	return
}

func (kr *Keyring) Read(buff []byte) (size int, err error) {
	for n := range buff {
		buff[n] = kr.Next()
	}

	size = len(buff)

	return
}

// Cipher obfuscates a key buffer in place
func Cipher(buff []byte) {
	kr := NewKeyring()
	for n, c := range buff {
		buff[n] = bits.Reverse8(c ^ kr.Next())
	}
}

// Decipher reverses Cipher in place
func Decipher(buff []byte) {
	kr := NewKeyring()
	for n, c := range buff {
		buff[n] = bits.Reverse8(c) ^ kr.Next()
	}
}
