// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"mica/internal/lsp"
)

const lsName = "mica" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	micaHandler := lsp.NewMicaHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:            micaHandler.Initialize,
		Initialized:           micaHandler.Initialized,
		Shutdown:              micaHandler.Shutdown,
		SetTrace:              micaHandler.SetTrace,
		TextDocumentDidOpen:   micaHandler.TextDocumentDidOpen,
		TextDocumentDidClose:  micaHandler.TextDocumentDidClose,
		TextDocumentDidChange: micaHandler.TextDocumentDidChange,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Mica LSP server...")

	// Communicate with the editor over standard input/output
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting Mica LSP server:", err)
		os.Exit(1)
	}
}
