package generator

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"strconv"
)

// Option argument names recognized inside an accessor call.
const (
	optDefault = "Default"
	optType    = "Type"
	optOther   = "Other"
)

// Scanner finds accessor call-sites in Go source text.
type Scanner struct {
	accessor string
	fset     *token.FileSet
}

// NewScanner creates a scanner recognizing calls to the named accessor. Both
// a bare identifier (Get) and a selector ending in the name (environ.Get)
// match.
func NewScanner(accessor string) *Scanner {
	if accessor == "" {
		accessor = defaultAccessor
	}
	return &Scanner{
		accessor: accessor,
		fset:     token.NewFileSet(),
	}
}

// Scan parses src and returns every accessor call-site keyed by its primary
// key. It fails on unparseable source, on a call without a string literal
// key, and on any key or alias already recorded by an earlier call-site.
// A comment group trailing a call-site statement (same line or the line
// immediately after) is parsed as its documentation block.
func (s *Scanner) Scan(filename string, src []byte) (map[string]*EnvCall, error) {
	file, err := parser.ParseFile(s.fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}

	w := &walker{
		scanner:   s,
		file:      filename,
		calls:     map[string]*EnvCall{},
		seenKeys:  map[string]bool{},
		seenLines: map[int]bool{},
		endLines:  map[int]string{},
	}
	ast.Inspect(file, w.visit)
	if w.err != nil {
		return nil, w.err
	}

	s.attachDescriptions(file, w.calls, w.endLines)
	return w.calls, nil
}

// walker accumulates call-sites during a single ast.Inspect pass.
type walker struct {
	scanner   *Scanner
	file      string
	calls     map[string]*EnvCall
	seenKeys  map[string]bool // keys and aliases share one namespace
	seenLines map[int]bool    // each source line is consumed at most once
	endLines  map[int]string  // statement end line -> key, for doc lookup
	err       error
}

func (w *walker) visit(n ast.Node) bool {
	if w.err != nil {
		return false
	}
	switch node := n.(type) {
	case *ast.ValueSpec:
		for _, v := range node.Values {
			w.record(v, node)
		}
	case *ast.AssignStmt:
		for _, v := range node.Rhs {
			w.record(v, node)
		}
	case *ast.ExprStmt:
		w.record(node.X, node)
	}
	return true
}

// record registers expr as a call-site if it is a recognized accessor call.
// stmt is the enclosing statement, used to locate the trailing documentation
// block.
func (w *walker) record(expr ast.Expr, stmt ast.Node) {
	call, ok := expr.(*ast.CallExpr)
	if !ok || !w.scanner.isAccessor(call.Fun) {
		return
	}

	line := w.scanner.fset.Position(call.Pos()).Line
	if w.seenLines[line] {
		return
	}

	ec, err := w.scanner.extract(call)
	if err != nil {
		w.err = err
		return
	}

	for _, key := range append([]string{ec.Key}, ec.Aliases...) {
		if w.seenKeys[key] {
			w.err = &DuplicateKeyError{Key: key, File: w.file, Line: line}
			return
		}
	}
	w.seenKeys[ec.Key] = true
	for _, alias := range ec.Aliases {
		w.seenKeys[alias] = true
	}

	ec.Line = line
	w.calls[ec.Key] = ec
	w.seenLines[line] = true
	w.endLines[w.scanner.fset.Position(stmt.End()).Line] = ec.Key
}

// isAccessor reports whether fun is a reference to the configured accessor.
func (s *Scanner) isAccessor(fun ast.Expr) bool {
	return calleeName(fun) == s.accessor
}

func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	default:
		return ""
	}
}

// extract pulls the key, aliases and option literals out of a recognized
// accessor call.
func (s *Scanner) extract(call *ast.CallExpr) (*EnvCall, error) {
	line := s.fset.Position(call.Pos()).Line
	if len(call.Args) == 0 {
		return nil, &MalformedCallError{Line: line, Reason: "missing key argument"}
	}
	key, ok := stringLiteral(call.Args[0])
	if !ok {
		return nil, &MalformedCallError{Line: line, Reason: "key is not a string literal"}
	}

	ec := &EnvCall{Key: key}
	for _, arg := range call.Args[1:] {
		opt, ok := arg.(*ast.CallExpr)
		if !ok {
			continue
		}
		switch calleeName(opt.Fun) {
		case optDefault:
			if len(opt.Args) == 1 {
				ec.DefaultLiteral = s.literalText(opt.Args[0])
			}
		case optType:
			if len(opt.Args) == 1 {
				ec.TypeLiteral = s.exprText(opt.Args[0])
			}
		case optOther:
			aliases, err := s.aliasList(opt.Args, line)
			if err != nil {
				return nil, err
			}
			ec.Aliases = aliases
		}
	}
	return ec, nil
}

// aliasList reads fallback keys from either variadic string literals or a
// single []string composite literal. Anything else is malformed; alias
// expressions are never evaluated beyond plain literals.
func (s *Scanner) aliasList(args []ast.Expr, line int) ([]string, error) {
	if len(args) == 1 {
		if lit, ok := args[0].(*ast.CompositeLit); ok {
			args = lit.Elts
		}
	}
	aliases := make([]string, 0, len(args))
	for _, arg := range args {
		alias, ok := stringLiteral(arg)
		if !ok {
			return nil, &MalformedCallError{Line: line, Reason: "alias is not a string literal"}
		}
		aliases = append(aliases, alias)
	}
	return aliases, nil
}

// literalText returns the unquoted value of a string literal, or the exact
// source text of any other expression.
func (s *Scanner) literalText(expr ast.Expr) string {
	if v, ok := stringLiteral(expr); ok {
		return v
	}
	return s.exprText(expr)
}

// exprText renders an expression back to source text, preserving the
// author's literal formatting.
func (s *Scanner) exprText(expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, s.fset, expr); err != nil {
		return ""
	}
	return buf.String()
}

func stringLiteral(expr ast.Expr) (string, bool) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	v, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return v, true
}

// attachDescriptions associates trailing comment groups with the call-sites
// they document. A group counts as trailing when it starts on the statement's
// last line or on the line immediately after it; the first group wins.
func (s *Scanner) attachDescriptions(file *ast.File, calls map[string]*EnvCall, endLines map[int]string) {
	for _, cg := range file.Comments {
		start := s.fset.Position(cg.Pos()).Line
		key, ok := endLines[start]
		if !ok {
			key, ok = endLines[start-1]
		}
		if !ok {
			continue
		}
		call := calls[key]
		if call == nil || call.Desc != nil {
			continue
		}
		// CommentGroup.Text strips the comment markers and dedents.
		call.Desc = parseDescription(cg.Text())
	}
}
