// Package assets holds files compiled into the binary.
package assets

import _ "embed"

// ExampleConfig is written by -init-config. It lists every setting with its
// default value.
//
//go:embed suibubbles.example.yaml
var ExampleConfig []byte
