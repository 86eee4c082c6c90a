package dialect

// TypeCategory is the coarse classification of a declaration's type, used by
// the prefix rules (bool/int/float) and by @return documentation checks
// (void vs. non-void).
type TypeCategory uint8

const (
	// TypeCustom is any user-defined type not present in the tables.
	TypeCustom TypeCategory = iota
	// TypeVoid is the void return type.
	TypeVoid
	// TypeBool is a scalar boolean.
	TypeBool
	// TypeInt is a scalar integer of any width/signedness.
	TypeInt
	// TypeFloat is a scalar floating-point of any width.
	TypeFloat
	// TypeVector is a packed vector (float4, vec3, ...).
	TypeVector
	// TypeMatrix is a matrix (float4x4, mat3, ...).
	TypeMatrix
	// TypeTexture is a texture resource.
	TypeTexture
	// TypeSampler is a sampler resource.
	TypeSampler
	// TypeArray is an array declarator of any element type. Arrays are
	// exempt from the scalar prefix rules.
	TypeArray
)

func (c TypeCategory) String() string {
	switch c {
	case TypeVoid:
		return "void"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeVector:
		return "vector"
	case TypeMatrix:
		return "matrix"
	case TypeTexture:
		return "texture"
	case TypeSampler:
		return "sampler"
	case TypeArray:
		return "array"
	}
	return "custom"
}
