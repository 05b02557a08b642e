package securite

import (
	"fmt"
	"strconv"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/checker"
	"github.com/expr-lang/expr/conf"

	"github.com/FuturFusion/security-manager/shared/api"
)

// Functions on calendar dates (YYYY-MM-DD) for include expressions.
var dateFunctions = []expr.Option{
	expr.Function("age", func(params ...any) (any, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("invalid number of arguments, expected 1, got: %d", len(params))
		}

		value, ok := params[0].(string)
		if !ok {
			return nil, fmt.Errorf("invalid argument type, expected string, got: %T", params[0])
		}

		if value == "" {
			return -1, nil
		}

		birth, err := api.ParseDate(value)
		if err != nil {
			return nil, err
		}

		return ageAt(birth, time.Now()), nil
	}),

	expr.Function("year", func(params ...any) (any, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("invalid number of arguments, expected 1, got: %d", len(params))
		}

		value, ok := params[0].(string)
		if !ok {
			return nil, fmt.Errorf("invalid argument type, expected string, got: %T", params[0])
		}

		if value == "" {
			return 0, nil
		}

		date, err := api.ParseDate(value)
		if err != nil {
			return nil, err
		}

		return date.Year, nil
	}),
}

// ageAt returns the number of full years between birth and now.
func ageAt(birth api.Date, now time.Time) int {
	age := now.Year() - birth.Year
	if now.Month() < birth.Month || (now.Month() == birth.Month && now.Day() < birth.Day) {
		age--
	}

	return age
}

// matchNomAlias converts an expression to `nom matches 'expression'` if the expression does not compile on its own.
func matchNomAlias(expression string, ops ...expr.Option) string {
	config := conf.CreateNew()
	for _, op := range ops {
		op(config)
	}

	// Allow undefined variables as we don't care about the underlying object's fields for this check.
	expr.AllowUndefinedVariables()(config)

	for name := range config.Disabled {
		delete(config.Builtins, name)
	}

	config.Check()

	tree, err := checker.ParseCheck(expression, config)
	if err == nil {
		// A bare identifier or integer is taken as part of a name.
		_, ok1 := tree.Node.(*ast.IdentifierNode)
		_, ok2 := tree.Node.(*ast.IntegerNode)
		if !ok1 && !ok2 {
			return expression
		}
	}

	return "nom matches " + strconv.Quote(expression)
}
