package cli

import (
	"fmt"
	"io"

	"github.com/sandfs/sandsh/internal/verb"
)

// RunList lists the available verbs.
func RunList(reg *verb.Registry, w io.Writer, tierFilter string) int {
	var filter *verb.Tier
	if tierFilter != "" {
		t, err := verb.ParseTier(tierFilter)
		if err != nil {
			fmt.Fprintf(w, "sandsh list: %v\n", err)
			return 1
		}
		filter = &t
	}

	for _, h := range reg.All() {
		if filter != nil && h.Tier() != *filter {
			continue
		}
		fmt.Fprintf(w, "%-8s %-10s %s\n", h.Verb(), h.Tier(), h.Description())
	}
	return 0
}
