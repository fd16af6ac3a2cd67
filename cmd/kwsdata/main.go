// SPDX-License-Identifier: EPL-2.0

// Command kwsdata inspects keyword spotting datasets.
//
// Usage:
//
//	kwsdata -c dataset.yaml <command> [args]
//
// Commands:
//
//	count    - Number of entries in the configured sources
//	inspect  - Print labels of randomly drawn samples
//	export   - Write one decoded clip as a WAV file
//	cache    - Feature cache tools (info, convert)
//	version  - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/ik5/kwsdata/cmd/kwsdata/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
