package lsp

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"mica/internal/ast"
	"mica/internal/parser"
	"mica/internal/semantic"
)

// MicaHandler implements the LSP server handlers for the Mica language
type MicaHandler struct {
	mu      sync.RWMutex
	content map[string]string
	asts    map[string]*ast.Program
}

// NewMicaHandler creates and returns a new MicaHandler instance
func NewMicaHandler() *MicaHandler {
	return &MicaHandler{
		content: make(map[string]string),
		asts:    make(map[string]*ast.Program),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *MicaHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *MicaHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("Mica LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *MicaHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("Mica LSP Shutdown")
	return nil
}

// SetTrace handles trace level configuration from the client
func (h *MicaHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *MicaHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	diagnostics, err := h.updateAST(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to update AST: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)

	return nil
}

// TextDocumentDidChange handles document edit notifications from the editor
func (h *MicaHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	diagnostics, err := h.updateAST(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to update AST: %w", err)
	}

	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)

	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *MicaHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	rawURI := params.TextDocument.URI

	path, err := uriToPath(rawURI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.asts, path)

	return nil
}

// updateAST re-reads the file behind the URI, parses and checks it, and
// returns the diagnostics to publish. The diagnostics slice is empty (not
// nil) when the file is clean, so stale diagnostics get cleared.
func (h *MicaHandler) updateAST(uri string) ([]protocol.Diagnostic, error) {
	path, err := uriToPath(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", uri, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	source := string(data)

	program, parseErrors, scanErrors := parser.ParseSource(path, source)

	diagnostics := []protocol.Diagnostic{}
	diagnostics = append(diagnostics, ConvertScanErrors(scanErrors)...)
	diagnostics = append(diagnostics, ConvertParseErrors(parseErrors)...)

	// Semantic diagnostics only make sense on a syntactically clean program.
	if len(diagnostics) == 0 && program != nil {
		if _, checkErr := semantic.Check(program); checkErr != nil {
			diagnostics = append(diagnostics, ConvertSemanticError(checkErr)...)
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.content[path] = source
	h.asts[path] = program

	return diagnostics, nil
}

// uriToPath converts a file:// URI into a filesystem path
func uriToPath(uri string) (string, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", err
	}

	if parsed.Scheme != "file" {
		return "", fmt.Errorf("unsupported URI scheme: %s", parsed.Scheme)
	}

	path := parsed.Path
	if runtime.GOOS == "windows" {
		// Strip the leading slash before the drive letter, e.g. /C:/foo
		if strings.HasPrefix(path, "/") && len(path) > 2 && path[2] == ':' {
			path = path[1:]
		}
	}

	return filepath.FromSlash(path), nil
}

// sendDiagnosticNotification publishes diagnostics for a document to the client
func sendDiagnosticNotification(ctx *glsp.Context, uri string, diagnostics []protocol.Diagnostic) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
