// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	_ "github.com/tliron/commonlog/simple"

	"github.com/babyhome/solidity-gas-optimizer/internal/cli"
)

func main() {
	// Optional .env with GASOPT_* overrides.
	_ = godotenv.Load()

	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("❌ Error: %v", err))
		os.Exit(1)
	}
}
