package debugs

import (
	"fmt"
	"maps"

	"github.com/reusee/taitok/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predicate compiles a starlark expression evaluated against the exported
// fields of a struct value. helpers are bound as extra globals; Go funcs
// become starlark builtins.
type Predicate func(expr string, helpers map[string]any) (func(value any) (bool, error), error)

var exprOptions = &syntax.FileOptions{
	Set: true,
}

func (Module) Predicate(
	logger logs.Logger,
) Predicate {
	return func(expr string, helpers map[string]any) (func(value any) (bool, error), error) {
		parsed, err := exprOptions.ParseExpr("predicate", expr, 0)
		if err != nil {
			return nil, fmt.Errorf("parse predicate: %w", err)
		}
		logger.Debug("predicate", "expr", expr)

		predeclared := make(starlark.StringDict, len(helpers))
		for name, helper := range helpers {
			predeclared[name] = toStarlarkValue(helper)
		}

		thread := &starlark.Thread{
			Name: "predicate",
		}

		return func(value any) (bool, error) {
			env, err := toStringDict(value)
			if err != nil {
				return false, err
			}
			maps.Copy(env, predeclared)
			ret, err := starlark.EvalExprOptions(exprOptions, thread, parsed, env)
			if err != nil {
				return false, fmt.Errorf("eval predicate: %w", err)
			}
			return bool(ret.Truth()), nil
		}, nil
	}
}
