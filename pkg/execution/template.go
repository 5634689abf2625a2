package execution

import (
	"strconv"
	"strings"

	"digital.vasic.fluentassertions/pkg/formatting"
)

const contextPrefix = "context:"

// Render expands a message template. Numbered placeholders are
// replaced by the formatted argument, {reason} by the reason clause
// and {context:fallback} by the subject name, or by fallback when
// the name is empty. Unknown or out-of-range placeholders and
// unbalanced braces are kept as written.
func Render(template, subject, reason string, args ...any) string {
	var sb strings.Builder
	sb.Grow(len(template))

	for i := 0; i < len(template); {
		open := strings.IndexByte(template[i:], '{')
		if open < 0 {
			sb.WriteString(template[i:])
			break
		}
		sb.WriteString(template[i : i+open])
		i += open

		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			sb.WriteString(template[i:])
			break
		}

		name := template[i+1 : i+end]
		if value, ok := expand(name, subject, reason, args); ok {
			sb.WriteString(value)
		} else {
			sb.WriteString(template[i : i+end+1])
		}
		i += end + 1
	}

	return sb.String()
}

func expand(name, subject, reason string, args []any) (string, bool) {
	if name == "reason" {
		return reason, true
	}
	if fallback, ok := strings.CutPrefix(name, contextPrefix); ok {
		if subject != "" {
			return subject, true
		}
		return fallback, true
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 0 && n < len(args) {
		return formatting.ToString(args[n]), true
	}
	return "", false
}
