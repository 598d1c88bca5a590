package main

import (
	"errors"
)

// errBuildFailed indicates non-zero exit code of go build
var errBuildFailed = errors.New("build failed")
