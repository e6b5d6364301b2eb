// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// ansiRegex matches ANSI SGR escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

const gib = 1024 * 1024 * 1024

// GiB formats a byte count in gibibytes with two decimals.
//
// Example: GiB(1610612736) returns "1.50GiB"
func GiB(bytes uint64) string {
	return fmt.Sprintf("%.2fGiB", float64(bytes)/gib)
}

// FormatUptime renders a number of seconds as hours, minutes and seconds.
//
// Example: FormatUptime(3725) returns "1h 2m 5s"
func FormatUptime(seconds uint64) string {
	return fmt.Sprintf("%dh %dm %ds", seconds/3600, (seconds%3600)/60, seconds%60)
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// trimSetting strips whitespace and the single quotes gsettings wraps
// string values in.
func trimSetting(s string) string {
	return strings.Trim(strings.TrimSpace(s), "'")
}

// StripANSI removes color escape sequences from s.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleWidth returns the terminal cell width of s, ignoring ANSI escape
// codes and counting wide runes as two cells.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}
