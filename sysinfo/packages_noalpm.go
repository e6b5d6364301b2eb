//go:build !alpm

package sysinfo

import "errors"

var errNoALPM = errors.New("built without libalpm support")

// pacmanLocalCount is unavailable without the alpm build tag; the pacman
// shell pipeline is used instead.
func pacmanLocalCount() (uint64, error) {
	return 0, errNoALPM
}
