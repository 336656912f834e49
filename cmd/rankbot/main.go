// rankbot answers plain-English questions about country statistics.
// The dataset ships embedded in the binary.
package main

import (
	"fmt"
	"os"

	"github.com/corey/rankbot/cmd/rankbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if code := cmd.ExitCode(err); code >= 0 {
			os.Exit(code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
