//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"errors"
)

const (
	MinNameLength = 5
	MaxNameLength = 32

	// DefaultName is used when no name is given
	DefaultName = "Akira Kurosawa"

	// ReferenceToken is the published key for DefaultName
	ReferenceToken = "<b1a02b799fd78161792df95901090b25d9f9c119d17991e7697284894e>"
)

var (
	ErrNameShort = errors.New("name must be at least 5 chars long")
	ErrNameLong  = errors.New("name is too long")
)

// CheckName enforces the name lengths the key format accepts
func CheckName(name string) (err error) {
	switch {
	case len(name) < MinNameLength:
		err = ErrNameShort
	case len(name) > MaxNameLength:
		err = ErrNameLong
	}

	return
}
