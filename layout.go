//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package regkey

import (
	"encoding/binary"

	"github.com/go-restruct/restruct"
)

const (
	defaultKeyPrefix = uint8(0x70)

	licenseFeatures = uint32(0x03643050)
	licenseClear    = uint32(0xfffdffff)
	licenseSet      = uint32(0x000109af)

	// DefaultLicense is the feature word every generated key carries
	DefaultLicense = (licenseFeatures & licenseClear) | licenseSet

	trailerSize = 6

	// Overhead is the number of bytes a key adds around the name
	Overhead = headerSize + trailerSize
)

type keyHeader struct {
	Prefix   uint8  // 00: Always 0x70
	License  uint32 // 01: Licensed features
	Checksum uint32 // 05: Rolling hash of the whole key, with this field zero
}

const (
	headerSize     = 9
	checksumOffset = 5
)

// Key is the plain (not yet obfuscated) content of a registration key
type Key struct {
	Prefix   uint8
	License  uint32
	Checksum uint32
	Name     []byte
	Trailer  [trailerSize]byte
}

func newKey(name []byte) (key *Key) {
	key = &Key{
		Prefix:  defaultKeyPrefix,
		License: DefaultLicense,
		Name:    append([]byte(nil), name...),
	}

	return
}

// Len is the size of the key's buffer
func (key *Key) Len() int {
	return headerSize + len(key.Name) + trailerSize
}

// Bytes lays the key out as header, name and trailer
func (key *Key) Bytes() (buff []byte) {
	header := keyHeader{
		Prefix:   key.Prefix,
		License:  key.License,
		Checksum: key.Checksum,
	}

	buff, _ = restruct.Pack(binary.LittleEndian, &header)
	buff = append(buff, key.Name...)
	buff = append(buff, key.Trailer[:]...)

	return
}

// putChecksum stores a checksum in a key buffer
func putChecksum(buff []byte, sum uint32) {
	binary.LittleEndian.PutUint32(buff[checksumOffset:], sum)
}

func unpackKey(buff []byte) (key *Key, err error) {
	var header keyHeader

	err = restruct.Unpack(buff[:headerSize], binary.LittleEndian, &header)
	if err != nil {
		return
	}

	nameLen := len(buff) - headerSize - trailerSize

	key = &Key{
		Prefix:   header.Prefix,
		License:  header.License,
		Checksum: header.Checksum,
		Name:     append([]byte(nil), buff[headerSize:headerSize+nameLen]...),
	}
	copy(key.Trailer[:], buff[headerSize+nameLen:])

	return
}
