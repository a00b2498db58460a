// Package interpolation expands ${VAR} and ${VAR:default} references in configuration
// strings, such as style URLs that point at a per-environment tile host.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// ErrUndefinedVar is returned for a ${VAR} reference with no value and no default.
var ErrUndefinedVar = errors.New("environment variable not defined")

// envRefPattern captures the variable name, an optional colon and the default value.
var envRefPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:)?([^}]*)\}`)

// ExpandEnvVars replaces every ${VAR} or ${VAR:default} in input. A set variable wins,
// then the default (which may be empty, as in ${VAR:}). A reference with neither is left
// in place and reported.
func ExpandEnvVars(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	var missing []error
	out := envRefPattern.ReplaceAllStringFunc(input, func(ref string) string {
		m := envRefPattern.FindStringSubmatch(ref)
		name, hasDefault, def := m[1], m[2] == ":", m[3]

		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		if hasDefault {
			return def
		}
		missing = append(missing, fmt.Errorf("%w: %s", ErrUndefinedVar, name))
		return ref
	})

	return out, errors.Join(missing...)
}
