package check

import (
	"shaderfmt/internal/config"

	"github.com/iancoleman/strcase"
)

// matchesCase reports whether name is already in the target style: a
// conforming name is a fixed point of the style's conversion.
func matchesCase(name string, style config.CaseStyle) bool {
	if name == "" {
		return true
	}
	switch style {
	case config.CaseCamel:
		return name == strcase.ToLowerCamel(name)
	case config.CasePascal:
		return name == strcase.ToCamel(name)
	case config.CaseSnake:
		return name == strcase.ToSnake(name)
	case config.CaseUpperSnake:
		return name == strcase.ToScreamingSnake(name)
	}
	return true
}
