// Package configs provides embedded configuration templates for facetgen.
//
// Templates are embedded at build time using Go's //go:embed directive so
// they are available in all distributions (source builds and binary
// releases alike).
//
// Configuration hierarchy (see internal/config/config.go Load()):
//  1. Hardcoded defaults (internal/config/config.go NewConfig())
//  2. Project config (.facetgen.yaml)
//  3. Environment variables (FACETGEN_*)
//
// To modify the template, edit the .yaml file in this directory and
// rebuild.
package configs

import _ "embed"

// ProjectConfigTemplate is the template for project-level configuration.
// Created by `facetgen init` at .facetgen.yaml in the project root.
//
//go:embed project-config.example.yaml
var ProjectConfigTemplate string
