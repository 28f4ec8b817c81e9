package main

import (
	"slices"
	"strings"
)

// legacySort maps the single-dash report switches of the first release
// onto --sort values. Those reports always listed files and lines.
var legacySort = map[string]string{
	"-pf": "frequency",
	"-pl": "files",
	"-po": "alpha",
}

var commands = []string{"track", "stats", "clear"}

// NormalizeArgs rewrites legacy arguments into their long flag form and
// selects the track command when no command is named.
//
//	-pf, -pl, -po   --sort=frequency, --sort=files, --sort=alpha
//	-f<path>        --output=<path>
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args)+1)
	for _, arg := range args {
		if v, ok := legacySort[arg]; ok {
			out = append(out, "--sort="+v)
			continue
		}
		if path, ok := strings.CutPrefix(arg, "-f"); ok && path != "" {
			out = append(out, "--output="+path)
			continue
		}
		out = append(out, arg)
	}

	if !slices.ContainsFunc(out, func(arg string) bool { return slices.Contains(commands, arg) }) {
		out = append([]string{"track"}, out...)
	}
	return out
}
