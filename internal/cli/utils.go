package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
)

// parseID reads a positive numeric id from args[idx].
func parseID(args []string, idx int) (int64, error) {
	if len(args) <= idx {
		return 0, fmt.Errorf("missing id argument")
	}
	id, err := strconv.ParseInt(args[idx], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[idx])
	}
	return id, nil
}

// newTable returns a tabwriter for aligned screen listings. Callers must
// Flush it.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
