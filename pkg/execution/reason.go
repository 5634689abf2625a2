package execution

import (
	"fmt"
	"strings"
)

const because = "because"

// FormatReason builds the reason clause from a format string and
// its arguments. The result is empty when nothing was given;
// otherwise it starts with a space and "because".
//
//	FormatReason("we want %d", 3)       -> " because we want 3"
//	FormatReason("because it matters")  -> " because it matters"
//	FormatReason()                      -> ""
func FormatReason(args ...any) string {
	if len(args) == 0 {
		return ""
	}

	var reason string
	format, ok := args[0].(string)
	switch {
	case ok && len(args) == 1:
		reason = format
	case ok:
		reason = fmt.Sprintf(format, args[1:]...)
	default:
		reason = fmt.Sprint(args...)
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(reason), because) {
		reason = because + " " + reason
	}
	return " " + reason
}
