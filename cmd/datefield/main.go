package main

import (
	"os"
	"regexp"
	"strings"
	_ "time/tzdata"

	"datefield-cli/internal/cli"
)

var reDateArg = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func isDateArg(s string) bool {
	return reDateArg.MatchString(strings.TrimSpace(s))
}

func rewriteDirectParseArgs(argv []string) []string {
	// Convenience: `datefield 2023-02-30` works like `datefield parse 2023-02-30`.
	//
	// Cobra treats the first non-flag token as a subcommand, so argv is rewritten before parsing.
	// Persistent flags may come first (e.g. `datefield --today 2024-06-10 2023-02-30`), so the
	// first positional token is what matters, and value flags must skip their value.
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir":       true,
		"--format":    true,
		"--today":     true,
		"--tz":        true,
		"--locale":    true,
		"--min-year":  true,
		"--log-level": true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	insertParse := func(i int) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, "parse")
		out = append(out, argv[i:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isDateArg(argv[i+1]) {
				return insertParse(i + 1)
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") {
				continue
			}
			if boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++
				continue
			}
			continue
		}

		if isDateArg(a) {
			return insertParse(i)
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectParseArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
