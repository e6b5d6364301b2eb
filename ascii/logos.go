// Package ascii provides ASCII art logos for Linux distributions.
// Logos are color-coded using ANSI escape sequences for terminal display.
package ascii

import (
	"strings"

	"quickfetch/sysinfo"
)

// distroLogos is checked in order against the OS name.
var distroLogos = []struct {
	match string
	logo  func() []string
}{
	{"Zorin", getZorinLogo},
	{"Ubuntu", getUbuntuLogo},
	{"Debian", getDebianLogo},
	{"Fedora", getFedoraLogo},
	{"Arch", getArchLogo},
}

// GetLogo returns the artwork for the distribution named by osName.
//
// Parameters:
//   - osName: The OS name as reported by sysinfo, e.g. "Zorin OS 17.1"
//
// Returns:
//   - A slice of strings, where each string represents one line of ASCII art
//   - false when there is no artwork for this distribution
func GetLogo(osName string) ([]string, bool) {
	for _, d := range distroLogos {
		if strings.Contains(osName, d.match) {
			return d.logo(), true
		}
	}
	return nil, false
}

// getZorinLogo returns the Zorin OS disc in blue.
func getZorinLogo() []string {
	c := sysinfo.ColorBlue
	r := sysinfo.ColorReset

	return []string{
		c + "        ██████████        " + r,
		c + "    ████████████████    " + r,
		c + "  ████████████████████  " + r,
		c + "████████████████████████" + r,
		c + "████████████████████████" + r,
		c + "████████████████████████" + r,
		c + "████████████████████████" + r,
		c + "  ████████████████████  " + r,
		c + "    ████████████████    " + r,
		c + "        ██████████        " + r,
	}
}

func getUbuntuLogo() []string {
	c := sysinfo.ColorRed
	r := sysinfo.ColorReset

	return []string{
		c + "            .-/+oossssoo+/-." + r,
		c + "        `:+ssssssssssssssssss+:`" + r,
		c + "      -+ssssssssssssssssssyyssss+-" + r,
		c + "    .ossssssssssssssssssdMMMNysssso." + r,
		c + "   /ssssssssssshdmmNNmmyNMMMMhssssss/" + r,
		c + "  +ssssssssshmydMMMMMMMNddddyssssssss+" + r,
		c + " /sssssssshNMMMyhhyyyyhmNMMMNhssssssss/" + r,
		c + ".ssssssssdMMMNhsssssssssshNMMMdssssssss." + r,
		c + "+sssshhhyNMMNyssssssssssssyNMMMysssssss+" + r,
		c + "ossyNMMMNyMMhsssssssssssssshmmmhssssssso" + r,
		c + "+sssshhhyNMMNyssssssssssssyNMMMysssssss+" + r,
		c + ".ssssssssdMMMNhsssssssssshNMMMdssssssss." + r,
		c + " /sssssssshNMMMyhhyyyyhdNMMMNhssssssss/" + r,
		c + "  +sssssssssdmydMMMMMMMMddddyssssssss+" + r,
		c + "   /ssssssssssshdmNNNNmyNMMMMhssssss/" + r,
		c + "    .ossssssssssssssssssdMMMNysssso." + r,
		c + "      -+sssssssssssssssssyyyssss+-" + r,
		c + "        `:+ssssssssssssssssss+:`" + r,
		c + "            .-/+oossssoo+/-." + r,
	}
}

func getDebianLogo() []string {
	c := sysinfo.ColorRed
	r := sysinfo.ColorReset

	return []string{
		c + "       _,met$$$$$gg." + r,
		c + "    ,g$$$$$$$$$$$$$$$P." + r,
		c + "  ,g$$P\"     \"\"\"Y$$.\"." + r,
		c + " ,$$P'              `$$$." + r,
		c + "',$$P       ,ggs.     `$$b:" + r,
		c + "`d$$'     ,$P\"'   .    $$$" + r,
		c + " $$P      d$'     ,    $$P" + r,
		c + " $$:      $$.   -    ,d$$'" + r,
		c + " $$;      Y$b._   _,d$P'" + r,
		c + " Y$$.    `.`\"Y$$$$P\"'" + r,
		c + " `$$b      \"-.__" + r,
		c + "  `Y$$" + r,
		c + "   `Y$$." + r,
		c + "     `$$b." + r,
		c + "       `Y$$b." + r,
		c + "          `\"Y$b._" + r,
		c + "              `\"\"\"" + r,
	}
}

func getFedoraLogo() []string {
	c := sysinfo.ColorBlue
	w := sysinfo.ColorWhite
	r := sysinfo.ColorReset

	return []string{
		c + "          /:-------------:\\" + r,
		c + "       :-------------------::" + r,
		c + "     :-----------" + w + "/shhOHbmp" + c + "---:\\" + r,
		c + "   /-----------" + w + "omMMMNNNMMD  " + c + "---:" + r,
		c + "  :-----------" + w + "sMMMMNMNMP." + c + "    ---:" + r,
		c + " :-----------" + w + ":MMMdP" + c + "-------    ---\\" + r,
		c + ",------------" + w + ":MMMd" + c + "--------    ---:" + r,
		c + ":------------" + w + ":MMMd" + c + "-------    .---:" + r,
		c + ":----    " + w + "oNMMMMMMMMMNho" + c + "     .----:" + r,
		c + ":--     .+" + w + "shhhMMMmhhy++" + c + "   .------/" + r,
		c + ":-    -------" + w + ":MMMd" + c + "--------------:" + r,
		c + ":-   --------" + w + "/MMMd" + c + "-------------;" + r,
		c + ":-    ------" + w + "/hMMMy" + c + "------------:" + r,
		c + ":--" + w + " :dMNdhhdNMMNo" + c + "------------;" + r,
		c + ":---" + w + ":sdNMMMMNds:" + c + "------------:" + r,
		c + ":------" + w + ":://:" + c + "-------------::" + r,
		c + ":---------------------://" + r,
	}
}

func getArchLogo() []string {
	c := sysinfo.ColorCyan
	r := sysinfo.ColorReset

	return []string{
		c + "                   -`" + r,
		c + "                  .o+`" + r,
		c + "                 `ooo/" + r,
		c + "                `+oooo:" + r,
		c + "               `+oooooo:" + r,
		c + "               -+oooooo+:" + r,
		c + "             `/:-:++oooo+:" + r,
		c + "            `/++++/+++++++:" + r,
		c + "           `/++++++++++++++:" + r,
		c + "          `/+++ooooooooooooo/`" + r,
		c + "         ./ooosssso++osssssso+`" + r,
		c + "        .oossssso-````/ossssss+`" + r,
		c + "       -osssssso.      :ssssssso." + r,
		c + "      :osssssss/        osssso+++." + r,
		c + "     /ossssssss/        +ssssooo/-" + r,
		c + "   `/ossssso+/:-        -:/+osssso+-" + r,
		c + "  `+sso+:-`                 `.-/+oso:" + r,
		c + " `++:.                           `-/+/" + r,
		c + " .`                                 `/" + r,
	}
}
