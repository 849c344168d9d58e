//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"github.com/ezrec/regkey"
)

type keyInfo struct {
	Name  string
	Key   *regkey.Key
	Token string
	Err   error
}

// EncodeAll computes the keys of all names concurrently; the results
// come back in the order of the names.
func EncodeAll(names []string) (infos []keyInfo) {
	doneMap := make([]chan keyInfo, len(names))
	for n := range names {
		doneMap[n] = make(chan keyInfo, 1)
	}

	for n, name := range names {
		go func(n int, name string) {
			info := keyInfo{Name: name}

			info.Err = CheckName(name)
			if info.Err == nil {
				info.Key, info.Err = regkey.NewKey([]byte(name))
			}

			if info.Err == nil {
				info.Token = info.Key.Token()
			}

			doneMap[n] <- info
			close(doneMap[n])
		}(n, name)
	}

	infos = make([]keyInfo, len(names))
	for n := range names {
		infos[n] = <-doneMap[n]
	}

	return
}
