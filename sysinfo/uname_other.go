//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package sysinfo

import "errors"

func uname() (string, string, error) {
	return "", "", errors.New("uname is not available on this platform")
}
