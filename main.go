// SPDX-License-Identifier: MPL-2.0

// rustlab is the scaffolding CLI for a tutorial-style Rust learning workspace.
package main

import (
	cmd "rustlab-cli/cmd/rustlab"
)

func main() {
	cmd.Execute()
}
