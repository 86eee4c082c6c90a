package check

import (
	"shaderfmt/internal/dialect"
	"shaderfmt/internal/token"
)

// DeclKind classifies a recognized declaration.
type DeclKind uint8

const (
	DeclVariable DeclKind = iota
	DeclFunction
	DeclStruct
	DeclField
	DeclParam
)

func (k DeclKind) String() string {
	switch k {
	case DeclVariable:
		return "variable"
	case DeclFunction:
		return "function"
	case DeclStruct:
		return "struct"
	case DeclField:
		return "field"
	case DeclParam:
		return "parameter"
	}
	return "unknown"
}

// Decl is a derived view over a token sub-range; nothing is stored back into
// the stream.
type Decl struct {
	Kind DeclKind
	// NameIdx is the index of the name token.
	NameIdx int
	// TypeIdx is the index of the type token the declaration starts with;
	// equals NameIdx for struct declarations (no leading type).
	TypeIdx int
	// Depth is the brace-nesting depth at the declaration point; 0 = global.
	Depth int
	// Type is the inferred category of the declared type.
	Type dialect.TypeCategory
	// Params holds the parameter names of a function declaration, in order.
	Params []string
}

// ScanDecls recognizes declarations by pattern over the token sequence:
// a type token followed by an identifier, then `(` for functions, `{` for
// structs (via a struct-intro keyword) and `;`/`=`/`,`/`:`/`[` for
// variables and fields. The type token is either a built-in TypeName or a
// plain identifier (a user-defined type, category TypeCustom). Function
// parameters yield one DeclParam each.
func ScanDecls(toks []token.Token, d dialect.Kind) []Decl {
	s := &declScanner{toks: toks, dialect: d}
	s.run()
	return s.decls
}

type declScanner struct {
	toks    []token.Token
	dialect dialect.Kind
	decls   []Decl

	depth int
	// structBodies holds the depths of currently open struct bodies;
	// a typed declaration directly inside one is a field.
	structBodies []int
}

func (s *declScanner) run() {
	for i := 0; i < len(s.toks); i++ {
		t := &s.toks[i]
		switch {
		case t.IsPunct("{"):
			s.depth++
		case t.IsPunct("}"):
			if n := len(s.structBodies); n > 0 && s.structBodies[n-1] == s.depth {
				s.structBodies = s.structBodies[:n-1]
			}
			if s.depth > 0 {
				s.depth--
			}
		case t.Kind == token.Keyword && s.dialect.IsStructIntro(t.Text):
			s.scanStruct(i)
		case t.Kind == token.TypeName, t.Kind == token.Ident:
			i = s.scanTyped(i)
		}
	}
}

// next returns the index of the first significant token at or after i.
func (s *declScanner) next(i int) int {
	for i < len(s.toks) && (s.toks[i].IsBlank() || s.toks[i].IsComment()) {
		i++
	}
	return i
}

// scanStruct recognizes `struct Name ... {`. The brace itself is left for
// the main loop; only the upcoming body depth is remembered.
func (s *declScanner) scanStruct(i int) {
	j := s.next(i + 1)
	if j >= len(s.toks) || s.toks[j].Kind != token.Ident {
		return
	}
	// Allow an annotation between name and body: `cbuffer Foo : register(b0) {`.
	k := s.next(j + 1)
	for k < len(s.toks) && !s.toks[k].IsPunct("{") && !s.toks[k].IsPunct(";") && !s.toks[k].IsPunct("}") {
		k = s.next(k + 1)
	}
	if k >= len(s.toks) || !s.toks[k].IsPunct("{") {
		return
	}
	s.decls = append(s.decls, Decl{
		Kind:    DeclStruct,
		NameIdx: j,
		TypeIdx: i,
		Depth:   s.depth,
	})
	s.structBodies = append(s.structBodies, s.depth+1)
}

// scanTyped handles a type token (built-in or user-defined): function when
// the name is followed by `(`, otherwise one or more variable/field
// declarators. Returns the index scanning should resume from.
func (s *declScanner) scanTyped(i int) int {
	j := s.next(i + 1)
	if j >= len(s.toks) || s.toks[j].Kind != token.Ident {
		return i
	}
	k := s.next(j + 1)
	if k >= len(s.toks) {
		return i
	}

	if s.toks[k].IsPunct("(") {
		fnIdx := len(s.decls)
		s.decls = append(s.decls, Decl{
			Kind:    DeclFunction,
			NameIdx: j,
			TypeIdx: i,
			Depth:   s.depth,
			Type:    s.toks[i].Type,
		})
		params, end := s.scanParams(k)
		s.decls[fnIdx].Params = params
		return end
	}

	switch {
	case s.toks[k].IsPunct(";"), s.toks[k].IsPunct(","), s.toks[k].IsPunct(":"),
		s.toks[k].IsPunct("["), s.toks[k].Text == "=":
	default:
		return i
	}

	kind := DeclVariable
	if n := len(s.structBodies); n > 0 && s.structBodies[n-1] == s.depth {
		kind = DeclField
	}
	s.decls = append(s.decls, Decl{
		Kind:    kind,
		NameIdx: j,
		TypeIdx: i,
		Depth:   s.depth,
		Type:    s.declaratorType(i, k),
	})

	// Walk the declarator list: `float a = 1, b, c;` declares three names.
	for k < len(s.toks) {
		t := &s.toks[k]
		if t.IsPunct(";") || t.Kind == token.EOF {
			return k
		}
		if t.IsPunct("{") || t.IsPunct("}") {
			// Hand braces back to the main loop for depth tracking.
			return k - 1
		}
		if t.IsPunct("(") || t.IsPunct("[") {
			k = s.skipBalanced(k)
			continue
		}
		if t.IsPunct(",") {
			m := s.next(k + 1)
			if m < len(s.toks) && s.toks[m].Kind == token.Ident {
				s.decls = append(s.decls, Decl{
					Kind:    kind,
					NameIdx: m,
					TypeIdx: i,
					Depth:   s.depth,
					Type:    s.declaratorType(i, s.next(m+1)),
				})
				k = m + 1
				continue
			}
		}
		k++
	}
	return k
}

// declaratorType resolves the category of one declarator: an array declarator
// (`float arr[3]`) is TypeArray regardless of the element type, exempting it
// from the scalar prefix rules.
func (s *declScanner) declaratorType(typeIdx, after int) dialect.TypeCategory {
	if after < len(s.toks) && s.toks[after].IsPunct("[") {
		return dialect.TypeArray
	}
	return s.toks[typeIdx].Type
}

// scanParams collects parameter names between the parens starting at open
// and records a DeclParam for each, so the naming rules see parameters too.
// The name of a parameter is its last identifier before any `:` semantic or
// `=` default. Returns the index of the closing paren.
func (s *declScanner) scanParams(open int) ([]string, int) {
	var params []string
	segNameIdx := -1
	segType := dialect.TypeCustom
	nameLocked := false
	depth := 0

	flush := func() {
		if segNameIdx >= 0 {
			params = append(params, s.toks[segNameIdx].Text)
			s.decls = append(s.decls, Decl{
				Kind:    DeclParam,
				NameIdx: segNameIdx,
				TypeIdx: segNameIdx,
				Depth:   s.depth + 1,
				Type:    segType,
			})
		}
		segNameIdx = -1
		segType = dialect.TypeCustom
		nameLocked = false
	}

	i := open
	for ; i < len(s.toks); i++ {
		t := &s.toks[i]
		switch {
		case t.IsPunct("("):
			depth++
		case t.IsPunct(")"):
			depth--
			if depth == 0 {
				flush()
				return params, i
			}
		case t.Kind == token.EOF:
			return params, i
		case depth == 1 && t.IsPunct(","):
			flush()
		case depth == 1 && (t.IsPunct(":") || t.Text == "="):
			nameLocked = true
		case depth == 1 && t.IsPunct("["):
			// An extent follows the name: `float w[SIZE]` is an array and
			// idents inside the brackets are not the parameter name.
			segType = dialect.TypeArray
			nameLocked = true
		case depth == 1 && t.Kind == token.TypeName && !nameLocked:
			segType = t.Type
		case depth == 1 && t.Kind == token.Ident && !nameLocked:
			segNameIdx = i
		}
	}
	return params, i
}

// skipBalanced advances past a balanced ()/[] group starting at open.
func (s *declScanner) skipBalanced(open int) int {
	openText := s.toks[open].Text
	closeText := ")"
	if openText == "[" {
		closeText = "]"
	}
	depth := 0
	for i := open; i < len(s.toks); i++ {
		switch {
		case s.toks[i].IsPunct(openText):
			depth++
		case s.toks[i].IsPunct(closeText):
			depth--
			if depth == 0 {
				return i + 1
			}
		case s.toks[i].Kind == token.EOF:
			return i
		}
	}
	return len(s.toks)
}
