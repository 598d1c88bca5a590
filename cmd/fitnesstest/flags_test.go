package main

import (
	"flag"
)

var (
	flagTargetBinaryPath string
	flagTargetSourcePath string
)

func init() {
	flag.StringVar(&flagTargetBinaryPath, "binary-path", "", "path to ftracker binary, built from -source-path when empty")
	flag.StringVar(&flagTargetSourcePath, "source-path", "../ftracker", "path to ftracker main package source")
}
