// Package check applies naming and documentation rules to declarations
// recognized from the token stream. Every finding requires a manual fix, so
// all diagnostics here are error severity.
package check

import (
	"fmt"

	"shaderfmt/internal/config"
	"shaderfmt/internal/diag"
	"shaderfmt/internal/dialect"
	"shaderfmt/internal/token"
)

// Run scans toks for declarations and reports rule violations. Tokens with
// the check-suppression flag are skipped.
func Run(toks []token.Token, rules config.RuleSet, d dialect.Kind, rep diag.Reporter) {
	c := &checker{
		toks:    toks,
		rules:   rules,
		dialect: d,
		rep:     rep,
	}
	for _, decl := range ScanDecls(toks, d) {
		c.check(decl)
	}
}

type checker struct {
	toks    []token.Token
	rules   config.RuleSet
	dialect dialect.Kind
	rep     diag.Reporter
}

func (c *checker) check(decl Decl) {
	name := &c.toks[decl.NameIdx]
	if name.NoCheck {
		return
	}
	switch decl.Kind {
	case DeclStruct:
		c.checkCase(name, name.Text, c.rules.StructCase, "StructCase")
		if c.rules.RequireDocsOnStructs {
			c.checkDocPresence(decl, "RequireDocsOnStructs")
		}
	case DeclFunction:
		c.checkCase(name, name.Text, c.rules.FunctionCase, "FunctionCase")
		if c.rules.RequireDocsOnFunctions {
			c.checkFunctionDocs(decl)
		}
	case DeclField:
		c.checkVariableName(decl)
		if c.rules.RequireDocsOnFields {
			c.checkDocPresence(decl, "RequireDocsOnFields")
		}
	case DeclVariable, DeclParam:
		c.checkVariableName(decl)
	}
}

// checkVariableName validates a variable, field or parameter name in fixed order:
// global prefix first, then the remainder against the type prefix and the
// case style. `g_iValue` strips `g_`, requires the `i` prefix and accepts
// `iValue` as Camel.
func (c *checker) checkVariableName(decl Decl) {
	name := &c.toks[decl.NameIdx]
	rest := name.Text

	if decl.Kind == DeclVariable && decl.Depth == 0 {
		if pfx, ok := c.rules.GlobalVariablePrefix.Get(); ok && pfx != "" {
			if !hasPrefix(rest, pfx) {
				c.errorf(name, diag.NamGlobalPrefix,
					"global variable %q must start with %q (GlobalVariablePrefix)", rest, pfx)
				return
			}
			rest = rest[len(pfx):]
		}
	}

	if pfx, ok := c.typePrefix(decl.Type); ok && pfx != "" {
		if !hasPrefix(rest, pfx) {
			c.errorf(name, diag.NamTypePrefix,
				"%s %q must start with the %s prefix %q", decl.Kind, name.Text, decl.Type, pfx)
			return
		}
	}

	style := c.rules.VariableCase
	ruleName := "VariableCase"
	if decl.Kind == DeclVariable && decl.Depth > 0 && c.rules.LocalVariableCase.IsSet() {
		style = c.rules.LocalVariableCase
		ruleName = "LocalVariableCase"
	}
	c.checkCase(name, rest, style, ruleName)
}

func (c *checker) typePrefix(cat dialect.TypeCategory) (string, bool) {
	switch cat {
	case dialect.TypeBool:
		return c.rules.BoolPrefix.Get()
	case dialect.TypeInt:
		return c.rules.IntPrefix.Get()
	case dialect.TypeFloat:
		return c.rules.FloatPrefix.Get()
	}
	return "", false
}

func (c *checker) checkCase(name *token.Token, text string, style config.Opt[config.CaseStyle], rule string) {
	st, ok := style.Get()
	if !ok {
		return
	}
	if !matchesCase(text, st) {
		c.errorf(name, diag.NamCase, "%q does not match the %s style (%s)", text, st, rule)
	}
}

func (c *checker) checkDocPresence(decl Decl, rule string) {
	if doc := docBefore(c.toks, decl.TypeIdx); doc.Present {
		return
	}
	name := &c.toks[decl.NameIdx]
	c.errorf(name, diag.DocMissing, "%s %q has no documentation comment (%s)", decl.Kind, name.Text, rule)
}

// checkFunctionDocs requires a doc comment with one @param per parameter in
// both directions, and an @return entry exactly when the return type is not
// void.
func (c *checker) checkFunctionDocs(decl Decl) {
	name := &c.toks[decl.NameIdx]
	doc := docBefore(c.toks, decl.TypeIdx)
	if !doc.Present {
		c.errorf(name, diag.DocMissing,
			"function %q has no documentation comment (RequireDocsOnFunctions)", name.Text)
		return
	}

	documented := make(map[string]bool, len(doc.Params))
	for _, p := range doc.Params {
		documented[p] = true
	}
	for _, p := range decl.Params {
		if !documented[p] {
			c.errorf(name, diag.DocParamMissing,
				"function %q: parameter %q has no @param entry", name.Text, p)
		}
	}
	declared := make(map[string]bool, len(decl.Params))
	for _, p := range decl.Params {
		declared[p] = true
	}
	for _, p := range doc.Params {
		if !declared[p] {
			c.errorf(name, diag.DocParamUnknown,
				"function %q: @param %q does not match any parameter", name.Text, p)
		}
	}

	isVoid := decl.Type == dialect.TypeVoid
	switch {
	case !isVoid && !doc.HasReturn:
		c.errorf(name, diag.DocReturnMissing,
			"function %q returns a value but has no @return entry", name.Text)
	case isVoid && doc.HasReturn:
		c.errorf(name, diag.DocReturnOnVoid,
			"function %q is void and must not document @return", name.Text)
	}
}

func (c *checker) errorf(name *token.Token, code diag.Code, format string, args ...any) {
	if c.rep == nil {
		return
	}
	diag.ReportError(c.rep, code, name.Span, fmt.Sprintf(format, args...)).Emit()
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
