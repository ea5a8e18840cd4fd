// Package config provides centralized configuration management for the
// sample dataset generator. It handles loading configuration from
// multiple sources, validation, and path resolution.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of
// precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (YAML)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern SAMPLEGEN_* for
// namespacing:
//
//	SAMPLEGEN_LOGGING_LEVEL=debug
//	SAMPLEGEN_EXPORT_FORMATS=csv,json,xlsx
//	SAMPLEGEN_EXPORT_INDENT=4
//	SAMPLEGEN_PATHS_OUTPUT_DIR=/tmp/datasets
//
// The config file location defaults to samplegen.yml in the working
// directory and can be overridden with SAMPLEGEN_CONFIG.
//
// # Path Management
//
// The Paths type resolves all output locations against the working
// directory:
//
//	paths, err := config.NewPaths(cfg.Paths)
//	outPath := paths.GetDatasetPath("financial_kpis.json")
//
// # Usage
//
// Load configuration at startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
