// Command bitmapeditor runs a bitmap command script.
//
// Usage:
//
//	bitmapeditor [-log-level LEVEL] [-log-format text|json] FILE
package main

import (
	"flag"
	"fmt"
	"os"

	editorcmd "github.com/gogpu/bitmap/internal/cmd/bitmapeditor"
)

func main() {
	cfg, err := editorcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fail("Error: %v", err)
	}

	if err := editorcmd.Run(cfg, os.Stdout, os.Stderr); err != nil {
		fail("%v", err)
	}
}

// fail reports a fatal error on stderr and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
