// SPDX-License-Identifier: MIT
// Package: cognasim/cmd/cognasim
//
// main.go — cognasim entry point.

package main

import "github.com/katalvlaran/cognasim/internal/cli"

func main() {
	cli.Execute()
}
