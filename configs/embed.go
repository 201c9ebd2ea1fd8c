// Package configs holds the default application properties and message catalog.
// The files are embedded so binaries and tests run without a working directory
// that contains them.
package configs

import _ "embed"

//go:embed application.yml
var ApplicationYAML []byte

//go:embed messages.yml
var MessagesYAML []byte
