// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for rustlab.
//
// This package implements the Cobra command hierarchy: the root command,
// module scaffolding (new), quality checking (check), structural validation
// (validate), README rendering (docs), and configuration inspection (config).
package cmd
