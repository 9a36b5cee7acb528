package main

import (
	"fmt"
	"os"

	"github.com/hashmap-kz/treefy/pkg/cmd"
)

func main() {
	if err := cmd.NewCmdTreefy().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
