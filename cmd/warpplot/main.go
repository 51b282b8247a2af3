// SPDX-License-Identifier: MIT

// Command warpplot aligns two sequences with DTW and draws the links.
package main

import "github.com/katalvlaran/warp/cmd/warpplot/commands"

func main() {
	commands.Execute()
}
