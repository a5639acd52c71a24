// Command sig parses RBS-style structural type signatures.
//
//	sig type "Integer | String"
//	sig method "(Integer) -> void"
//	sig sig path/to/file.rbs
//	sig tokenize path/to/file.rbs
package main

import (
	"os"

	"github.com/sigparse/sig/cmd"
)

func main() {
	if err := cmd.Root().Execute(); err != nil {
		os.Exit(1)
	}
}
