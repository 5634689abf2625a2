package execution

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"digital.vasic.fluentassertions/pkg/logging"
)

func readRecords(t *testing.T, path string) []logging.AssertionLog {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out []logging.AssertionLog
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		var rec logging.AssertionLog
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}
