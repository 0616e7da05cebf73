package pipeline

import (
	"fmt"
	"strings"
)

// CommandTemplate is a shell command string from a profile, possibly
// containing stage-level placeholders such as {phonemes} or {sentence}.
// The profile resolver carries these strings opaquely; expansion happens
// here, at the consuming stage boundary.
type CommandTemplate string

// Expand substitutes {name} placeholders with the given values. Unknown
// placeholders are left in place; session ${var} references never appear
// here (they were resolved when the profile was opened).
func (t CommandTemplate) Expand(vars map[string]string) CommandTemplate {
	s := string(t)
	for name, value := range vars {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return CommandTemplate(s)
}

// Split tokenizes the template shell-style: whitespace separates arguments,
// single and double quotes group them, and backslash escapes the next
// character outside single quotes.
func (t CommandTemplate) Split() ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		quote   rune
		escaped bool
		started bool
	)

	for _, r := range string(t) {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case quote == '\'' && r != '\'':
			cur.WriteRune(r)
		case r == '\\' && quote != '\'':
			escaped = true
			started = true
		case quote != 0 && r == quote:
			quote = 0
		case quote == 0 && (r == '\'' || r == '"'):
			quote = r
			started = true
		case quote == 0 && (r == ' ' || r == '\t' || r == '\n'):
			if started {
				args = append(args, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}

	if escaped || quote != 0 {
		return nil, fmt.Errorf("pipeline: unterminated quote in command %q", t)
	}
	if started {
		args = append(args, cur.String())
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("pipeline: empty command")
	}
	return args, nil
}
