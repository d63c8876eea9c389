package validators

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ErrNotBoolean is returned when a validation expression yields a non boolean result.
var ErrNotBoolean = errors.New("expression result is not a boolean")

// Expr compiles expression into a validator. The field value is available
// to the expression as the variable value, for example
// `value >= 1024 && value <= 65535` or `value matches "^[a-z]+$"`.
func Expr(expression string) (Func, error) {
	program, err := expr.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("compiling validation expression: %w", err)
	}

	return func(value any) (bool, string) {
		ok, err := runExpr(program, value)
		if err != nil {
			return false, err.Error()
		}

		if !ok {
			return false, fmt.Sprintf("does not satisfy %q", expression)
		}

		return true, ""
	}, nil
}

// MustExpr is like Expr but panics if the expression cannot be compiled.
// It is intended for package level validator declarations.
func MustExpr(expression string) Func {
	validate, err := Expr(expression)
	if err != nil {
		panic(err)
	}

	return validate
}

func runExpr(program *vm.Program, value any) (bool, error) {
	result, err := expr.Run(program, map[string]any{"value": value})
	if err != nil {
		return false, fmt.Errorf("evaluating validation expression: %w", err)
	}

	ok, isBool := result.(bool)
	if !isBool {
		return false, fmt.Errorf("%w: %T", ErrNotBoolean, result)
	}

	return ok, nil
}
