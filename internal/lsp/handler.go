package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/babyhome/solidity-gas-optimizer/internal/analyzer"
	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
	"github.com/babyhome/solidity-gas-optimizer/internal/parser"
	"github.com/babyhome/solidity-gas-optimizer/internal/suppress"
)

var log = commonlog.GetLogger("gasopt.lsp")

// GasHandler implements the LSP server handlers publishing gas issues for
// open Solidity documents.
type GasHandler struct {
	ruleNames   []string
	minSeverity issue.Severity

	mu      sync.RWMutex
	content map[string]string
	results map[string]issue.AnalysisResult
}

// NewGasHandler creates a handler running the named rules (the default set
// when empty) and reporting issues at minSeverity or above.
func NewGasHandler(ruleNames []string, minSeverity issue.Severity) (*GasHandler, error) {
	if _, err := analyzer.New(analyzer.WithRules(ruleNames...)); err != nil {
		return nil, err
	}
	if minSeverity == "" {
		minSeverity = issue.Low
	}
	return &GasHandler{
		ruleNames:   ruleNames,
		minSeverity: minSeverity,
		content:     make(map[string]string),
		results:     make(map[string]issue.AnalysisResult),
	}, nil
}

// Initialize advertises full-document sync and hover.
func (h *GasHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			HoverProvider: ptrBool(true),
		},
	}, nil
}

func (h *GasHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("gasopt LSP initialized")
	return nil
}

func (h *GasHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("gasopt LSP shutdown")
	return nil
}

func (h *GasHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen analyzes the opened document and publishes its diagnostics.
func (h *GasHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("opened file: %s", params.TextDocument.URI)
	return h.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

// TextDocumentDidChange re-analyzes the document using the last full-text change.
func (h *GasHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed file: %s", params.TextDocument.URI)

	text, ok := fullText(params.ContentChanges)
	if !ok {
		return fmt.Errorf("no full-text change for %s", params.TextDocument.URI)
	}
	return h.update(ctx, params.TextDocument.URI, text)
}

// TextDocumentDidClose forgets the document and clears its diagnostics.
func (h *GasHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("closed file: %s", params.TextDocument.URI)

	rawURI := params.TextDocument.URI
	path, err := uriToPath(rawURI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	h.mu.Lock()
	delete(h.content, path)
	delete(h.results, path)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, rawURI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentHover shows the suggestion of the issues reported on the
// hovered line.
func (h *GasHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.RLock()
	result, ok := h.results[path]
	h.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	line := int(params.Position.Line) + 1
	var sections []string
	for _, is := range result.Issues {
		if is.Line == line {
			sections = append(sections, hoverText(is))
		}
	}
	if len(sections) == 0 {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: strings.Join(sections, "\n\n---\n\n"),
		},
	}, nil
}

// Result returns the last analysis result for a document path.
func (h *GasHandler) Result(path string) (issue.AnalysisResult, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	r, ok := h.results[path]
	return r, ok
}

func hoverText(is issue.Issue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** %s (%s)\n\n%s", is.Type.Code(), is.Type.Title(), is.Severity, is.Message)
	if is.GasImpact != "" {
		fmt.Fprintf(&b, "\n\n_Gas impact:_ %s", is.GasImpact)
	}
	if is.Suggestion != "" {
		fmt.Fprintf(&b, "\n\n```\n%s\n```", is.Suggestion)
	}
	return b.String()
}

func (h *GasHandler) update(ctx *glsp.Context, rawURI protocol.DocumentUri, content string) error {
	path, err := uriToPath(rawURI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	diagnostics, err := h.analyze(path, content)
	if err != nil {
		return err
	}
	sendDiagnosticNotification(ctx, rawURI, diagnostics)
	return nil
}

// analyze parses and analyzes content. A document that does not parse gets
// its syntax errors and no gas issues.
func (h *GasHandler) analyze(path, content string) ([]protocol.Diagnostic, error) {
	diagnostics := []protocol.Diagnostic{}

	unit, parseErrors, scanErrors := parser.ParseSource(path, content)
	if len(parseErrors) > 0 || len(scanErrors) > 0 {
		diagnostics = append(diagnostics, ConvertScanErrors(scanErrors)...)
		diagnostics = append(diagnostics, ConvertParseErrors(parseErrors)...)

		h.mu.Lock()
		h.content[path] = content
		delete(h.results, path)
		h.mu.Unlock()
		return diagnostics, nil
	}

	a, err := analyzer.New(analyzer.WithRules(h.ruleNames...), analyzer.WithLogger(log))
	if err != nil {
		return nil, err
	}

	result, directiveErrors := suppress.Apply(a.Analyze(unit, path), unit.Comments)
	result = result.Filter(func(is issue.Issue) bool { return is.Severity.AtLeast(h.minSeverity) })

	diagnostics = append(diagnostics, ConvertIssues(result, content)...)
	diagnostics = append(diagnostics, ConvertDirectiveErrors(directiveErrors)...)

	h.mu.Lock()
	h.content[path] = content
	h.results[path] = result
	h.mu.Unlock()

	return diagnostics, nil
}

// fullText returns the text of the last whole-document change.
func fullText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch change := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				return change.Text, true
			}
		}
	}
	return "", false
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// /C:/... -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	log.Debugf("sending %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
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
