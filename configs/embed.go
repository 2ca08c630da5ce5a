// Package configs provides the embedded configuration template.
//
// The template is embedded at build time with go:embed so it ships in
// every distribution, including plain `go install` builds. It is written
// by `deepsearch config init` to the user config path and documents every
// setting alongside its DEEPSEARCH_* environment override.
//
// To change the template, edit config.example.yaml and rebuild.
package configs

import _ "embed"

// UserConfigTemplate is the annotated starting config written by
// `deepsearch config init`. Commented-out keys fall back to built-in
// defaults or environment variables.
//
//go:embed config.example.yaml
var UserConfigTemplate string
