//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package regkey builds Stereo Tool registration keys from a user name
package regkey

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	ErrKeyLength   = errors.New("key too short")
	ErrKeyPrefix   = errors.New("key prefix mismatch")
	ErrKeyLicense  = errors.New("key license mismatch")
	ErrKeyChecksum = errors.New("key checksum mismatch")
	ErrKeyTrailer  = errors.New("key trailer mismatch")
)

// NewKey assembles the plain key for a name: header, name, trailer
// and finally the checksum over all of them.
//
// The name should be 5 to 32 bytes long; only the lower bound is
// enforced here.
func NewKey(name []byte) (key *Key, err error) {
	key = newKey(name)

	key.Trailer, err = deriveTrailer(key.Name)
	if err != nil {
		key = nil
		return
	}

	key.Checksum = Checksum(key.Bytes())

	return
}

// Token obfuscates the key and renders it as text
func (key *Key) Token() (token string) {
	buff := key.Bytes()
	Cipher(buff)
	token = FormatToken(buff)

	return
}

// Encode returns the registration token for a name
func Encode(name []byte) (token string, err error) {
	key, err := NewKey(name)
	if err != nil {
		return
	}

	token = key.Token()

	return
}

// Decode parses a registration token and verifies its content
func Decode(token string) (key *Key, err error) {
	buff, err := ParseToken(token)
	if err != nil {
		return
	}

	if len(buff) < Overhead+trailerSeed {
		err = fmt.Errorf("%w: %d bytes, need at least %d", ErrKeyLength, len(buff), Overhead+trailerSeed)
		return
	}

	Decipher(buff)

	key, err = unpackKey(buff)
	if err != nil {
		return
	}

	err = key.verify(buff)
	if err != nil {
		key = nil
		return
	}

	return
}

func (key *Key) verify(buff []byte) (err error) {
	if key.Prefix != defaultKeyPrefix {
		err = fmt.Errorf("%w: got %#02x, expected %#02x", ErrKeyPrefix, key.Prefix, defaultKeyPrefix)
		return
	}

	if key.License != DefaultLicense {
		err = fmt.Errorf("%w: got %#08x, expected %#08x", ErrKeyLicense, key.License, DefaultLicense)
		return
	}

	plain := append([]byte(nil), buff...)
	putChecksum(plain, 0)
	sum := Checksum(plain)
	if key.Checksum != sum {
		err = fmt.Errorf("%w: got %#08x, expected %#08x", ErrKeyChecksum, key.Checksum, sum)
		return
	}

	trailer, err := deriveTrailer(key.Name)
	if err != nil {
		return
	}

	if !bytes.Equal(key.Trailer[:], trailer[:]) {
		err = fmt.Errorf("%w: got % x, expected % x", ErrKeyTrailer, key.Trailer, trailer)
		return
	}

	return
}
