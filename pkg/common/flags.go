package common

import "github.com/alecthomas/kingpin/v2"

// FlagHolder is where configuration objects register their flags. Satisfied
// by *kingpin.Application.
type FlagHolder interface {
	Flag(name, help string) *kingpin.FlagClause
}
