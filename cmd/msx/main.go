// msx is a command-line converter between duration strings and milliseconds.
package main

import (
	"fmt"
	"os"

	"github.com/msx-go/msx/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
