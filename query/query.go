// Package query evaluates expressions against decoded dynamic values.
package query

import (
	"maps"

	"github.com/expr-lang/expr"
)

// Eval compiles and runs an expr program against a dynamic value. The
// value is bound as "it"; when it is a map[string]any its fields are
// also bound as top-level identifiers, so `user.name` works directly
// on decoded objects.
func Eval(src string, v any) (any, error) {
	env := map[string]any{}
	if m, ok := v.(map[string]any); ok {
		maps.Copy(env, m)
	}
	env["it"] = v
	prg, err := expr.Compile(src, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}
	return expr.Run(prg, env)
}
