package common

import "strings"

// Canonical spellings of every flag the command line understands. Tokens
// matching one of these (single or double dash, any case) are rewritten to
// the canonical --lowercase form; everything else passes through untouched
// so the parser can reject it.
var knownFlags = []string{
	"help",
	"silent",
	"unmute",
	"configuration",
	"log.level",
	"log.format",
	"log.color",
}

func NormalizeArgs(in []string) []string {
	if len(in) == 0 {
		return in
	}
	result := make([]string, len(in))
	for i, arg := range in {
		result[i] = normalizeArg(arg)
	}
	return result
}

func normalizeArg(arg string) string {
	var body string
	switch {
	case strings.HasPrefix(arg, "--"):
		body = arg[2:]
	case strings.HasPrefix(arg, "-"):
		body = arg[1:]
	default:
		return arg
	}

	name, value, hasValue := strings.Cut(body, "=")
	if name == "?" {
		name = "help"
	}
	for _, candidate := range knownFlags {
		if strings.EqualFold(name, candidate) {
			if hasValue {
				return "--" + candidate + "=" + value
			}
			return "--" + candidate
		}
	}
	return arg
}
