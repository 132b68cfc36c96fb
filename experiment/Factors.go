package experiment

import "strings"

// ExtractFactors returns the factors of an experiment: the names of
// the flags appearing in argv, in the order they appear. A token is a
// flag if it starts with FlagPrefix. Flags in reserved are skipped.
// Repeated flags appear once per occurrence.
func ExtractFactors(argv []string, reserved ...string) []string {
	excluded := make(map[string]bool, len(reserved))
	for _, r := range reserved {
		excluded[FlagPrefix+r] = true
	}

	factors := []string{}
	for _, arg := range argv {
		if strings.HasPrefix(arg, FlagPrefix) && !excluded[arg] {
			factors = append(factors, arg[len(FlagPrefix):])
		}
	}

	return factors
}
