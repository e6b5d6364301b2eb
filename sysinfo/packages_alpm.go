//go:build alpm

package sysinfo

import (
	"fmt"

	"github.com/Jguer/go-alpm/v2"
)

const (
	alpmRoot   = "/"
	alpmDBPath = "/var/lib/pacman"
)

// pacmanLocalCount counts the packages in pacman's local database through
// libalpm instead of spawning pacman.
func pacmanLocalCount() (uint64, error) {
	h, err := alpm.Initialize(alpmRoot, alpmDBPath)
	if err != nil {
		return 0, fmt.Errorf("failed to initialize alpm: %w", err)
	}
	defer h.Release()

	localDB, err := h.LocalDB()
	if err != nil {
		return 0, fmt.Errorf("could not get local db: %w", err)
	}
	return uint64(len(localDB.PkgCache().Slice())), nil
}
