//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"

	"github.com/ezrec/regkey"
)

// CheckToken verifies a registration token and returns its name
func CheckToken(token string) (name string, err error) {
	key, err := regkey.Decode(token)
	if err != nil {
		err = fmt.Errorf("%s: %w", token, err)
		return
	}

	name = string(key.Name)

	err = CheckName(name)
	if err != nil {
		err = fmt.Errorf("%s: %w", token, err)
		name = ""
		return
	}

	return
}
