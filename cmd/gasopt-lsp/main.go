// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/babyhome/solidity-gas-optimizer/internal/config"
	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
	"github.com/babyhome/solidity-gas-optimizer/internal/lsp"
)

const lsName = "gasopt"

var handler protocol.Handler

func main() {
	commonlog.Configure(1, nil)
	log := commonlog.GetLogger("gasopt.lsp")

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	cfg, path, err := config.Load(wd)
	if err != nil {
		log.Errorf("invalid configuration %s: %s", path, err)
		os.Exit(1)
	}
	minSeverity, _ := issue.ParseSeverity(cfg.MinSeverity)

	gasHandler, err := lsp.NewGasHandler(cfg.EnabledRules(), minSeverity)
	if err != nil {
		log.Errorf("failed to create handler: %s", err)
		os.Exit(1)
	}

	handler = protocol.Handler{
		Initialize:            gasHandler.Initialize,
		Initialized:           gasHandler.Initialized,
		Shutdown:              gasHandler.Shutdown,
		SetTrace:              gasHandler.SetTrace,
		TextDocumentDidOpen:   gasHandler.TextDocumentDidOpen,
		TextDocumentDidChange: gasHandler.TextDocumentDidChange,
		TextDocumentDidClose:  gasHandler.TextDocumentDidClose,
		TextDocumentHover:     gasHandler.TextDocumentHover,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Info("starting gasopt LSP server")

	// Editors talk to the server over stdio.
	if err := s.RunStdio(); err != nil {
		log.Errorf("gasopt LSP server failed: %s", err)
		os.Exit(1)
	}
}
