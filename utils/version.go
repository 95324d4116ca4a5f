package utils

import (
	"fmt"
)

const (
	Version = "0.3"
)

// VersionString is reported by the command line tool.
var VersionString = fmt.Sprintf("Go-BoxGeom %s", Version)
