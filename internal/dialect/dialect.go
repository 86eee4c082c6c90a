package dialect

import (
	"path/filepath"
	"strings"
)

// Kind identifies one of the supported shading languages.
type Kind uint8

const (
	// HLSL is the DirectX shading language dialect.
	HLSL Kind = iota
	// GLSL is the OpenGL/Vulkan shading language dialect.
	GLSL
)

func (k Kind) String() string {
	switch k {
	case HLSL:
		return "hlsl"
	case GLSL:
		return "glsl"
	}
	return "unknown"
}

var extToKind = map[string]Kind{
	".hlsl":  HLSL,
	".hlsli": HLSL,
	".fx":    HLSL,
	".fxh":   HLSL,
	".glsl":  GLSL,
	".vert":  GLSL,
	".frag":  GLSL,
	".comp":  GLSL,
	".geom":  GLSL,
	".tesc":  GLSL,
	".tese":  GLSL,
}

// FromPath picks the dialect from the file extension. Unknown extensions get
// the HLSL tables, which are the larger superset.
func FromPath(path string) Kind {
	if k, ok := extToKind[strings.ToLower(filepath.Ext(path))]; ok {
		return k
	}
	return HLSL
}

// KnownExt reports whether path has a recognized shader file extension.
// Directory walks use it to decide which files to pick up.
func KnownExt(path string) bool {
	_, ok := extToKind[strings.ToLower(filepath.Ext(path))]
	return ok
}

// IsKeyword reports whether name is a language keyword in this dialect.
func (k Kind) IsKeyword(name string) bool {
	if _, ok := commonKeywords[name]; ok {
		return true
	}
	switch k {
	case HLSL:
		_, ok := hlslKeywords[name]
		return ok
	case GLSL:
		_, ok := glslKeywords[name]
		return ok
	}
	return false
}

// TypeCategory returns the category for a built-in type name, or TypeCustom
// with ok=false when name is not in this dialect's type table.
func (k Kind) TypeCategory(name string) (TypeCategory, bool) {
	if c, ok := commonTypes[name]; ok {
		return c, true
	}
	switch k {
	case HLSL:
		if c, ok := hlslTypes[name]; ok {
			return c, true
		}
	case GLSL:
		if c, ok := glslTypes[name]; ok {
			return c, true
		}
	}
	return TypeCustom, false
}

// IsStructIntro reports whether name opens a struct-like block whose name and
// fields are subject to naming/documentation rules: `struct` everywhere,
// `cbuffer` in HLSL, `uniform`/`buffer` blocks in GLSL.
func (k Kind) IsStructIntro(name string) bool {
	if name == "struct" {
		return true
	}
	switch k {
	case HLSL:
		return name == "cbuffer"
	case GLSL:
		return name == "uniform" || name == "buffer"
	}
	return false
}
