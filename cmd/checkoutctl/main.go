// Command checkoutctl validates, sends and inspects checkout sessions, and runs
// a local fake of the provider API.
package main

import (
	"os"
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
