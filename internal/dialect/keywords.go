package dialect

// Keyword and type tables. These are deliberately static: the formatter never
// needs full semantic knowledge of either language, only enough to classify
// tokens and to infer the type category preceding a declared name.

var commonKeywords = map[string]struct{}{
	"return":   {},
	"if":       {},
	"else":     {},
	"for":      {},
	"while":    {},
	"do":       {},
	"switch":   {},
	"case":     {},
	"default":  {},
	"break":    {},
	"continue": {},
	"discard":  {},
	"struct":   {},
	"const":    {},
	"in":       {},
	"out":      {},
	"inout":    {},
	"uniform":  {},
	"true":     {},
	"false":    {},
}

var hlslKeywords = map[string]struct{}{
	"cbuffer":      {},
	"tbuffer":      {},
	"register":     {},
	"packoffset":   {},
	"static":       {},
	"groupshared":  {},
	"row_major":    {},
	"column_major": {},
	"numthreads":   {},
	"technique":    {},
	"pass":         {},
}

var glslKeywords = map[string]struct{}{
	"attribute": {},
	"varying":   {},
	"buffer":    {},
	"layout":    {},
	"shared":    {},
	"flat":      {},
	"smooth":    {},
	"invariant": {},
	"precision": {},
	"highp":     {},
	"mediump":   {},
	"lowp":      {},
	"readonly":  {},
	"writeonly": {},
}

var commonTypes = map[string]TypeCategory{
	"void":   TypeVoid,
	"bool":   TypeBool,
	"int":    TypeInt,
	"uint":   TypeInt,
	"float":  TypeFloat,
	"double": TypeFloat,
}

var hlslTypes = map[string]TypeCategory{
	"half":  TypeFloat,
	"dword": TypeInt,

	"float2": TypeVector,
	"float3": TypeVector,
	"float4": TypeVector,
	"half2":  TypeVector,
	"half3":  TypeVector,
	"half4":  TypeVector,
	"int2":   TypeVector,
	"int3":   TypeVector,
	"int4":   TypeVector,
	"uint2":  TypeVector,
	"uint3":  TypeVector,
	"uint4":  TypeVector,
	"bool2":  TypeVector,
	"bool3":  TypeVector,
	"bool4":  TypeVector,

	"float2x2": TypeMatrix,
	"float3x3": TypeMatrix,
	"float4x4": TypeMatrix,

	"Texture1D":      TypeTexture,
	"Texture2D":      TypeTexture,
	"Texture3D":      TypeTexture,
	"TextureCube":    TypeTexture,
	"Texture2DArray": TypeTexture,
	"RWTexture2D":    TypeTexture,

	"sampler":                TypeSampler,
	"SamplerState":           TypeSampler,
	"SamplerComparisonState": TypeSampler,
}

var glslTypes = map[string]TypeCategory{
	"vec2":  TypeVector,
	"vec3":  TypeVector,
	"vec4":  TypeVector,
	"dvec2": TypeVector,
	"dvec3": TypeVector,
	"dvec4": TypeVector,
	"ivec2": TypeVector,
	"ivec3": TypeVector,
	"ivec4": TypeVector,
	"uvec2": TypeVector,
	"uvec3": TypeVector,
	"uvec4": TypeVector,
	"bvec2": TypeVector,
	"bvec3": TypeVector,
	"bvec4": TypeVector,

	"mat2":   TypeMatrix,
	"mat3":   TypeMatrix,
	"mat4":   TypeMatrix,
	"mat2x2": TypeMatrix,
	"mat3x3": TypeMatrix,
	"mat4x4": TypeMatrix,

	"sampler1D":       TypeTexture,
	"sampler2D":       TypeTexture,
	"sampler3D":       TypeTexture,
	"samplerCube":     TypeTexture,
	"sampler2DShadow": TypeTexture,
	"image2D":         TypeTexture,
}
