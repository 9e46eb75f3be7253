package isaw

import _ "embed"

// Version is the release of the isaw module, read from the VERSION file.
//
//go:embed VERSION
var Version string
