// Package flagx lets independent loaders each pick their own flags out of
// the same command line.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// name strips one or two leading dashes, so "-c" and "--c" compare equal.
func name(arg string) string {
	return strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
}

// FilterArgs keeps only the allowed flags (and their values) from args.
// Both "-f value" and "-f=value" forms are recognised; allowed names may be
// given with or without dashes. A following argument is taken as the value
// unless it starts with '-'.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[name(f)] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if key, _, found := strings.Cut(arg, "="); found {
			if _, ok := allowed[name(key)]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[name(arg)]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// Lookup returns the value of the string flag known by any of names, or ""
// when it is absent. The last occurrence wins.
func Lookup(args []string, names ...string) string {
	var value string

	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&value, name(n), "", "")
	}
	_ = fs.Parse(FilterArgs(args, names))

	return value
}

// ConfigPath returns the JSON config file given with -c or -config.
func ConfigPath(args []string) string {
	return Lookup(args, "c", "config")
}

// EnvFilePath returns the dotenv file given with -e or -env-file.
func EnvFilePath(args []string) string {
	return Lookup(args, "e", "env-file")
}
