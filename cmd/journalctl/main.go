package main

import (
	"daily-journal-service/internal/app/delivery/cli"
	"fmt"
	"os"
	_ "time/tzdata"
)

func main() {
	if err := cli.NewRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
