package native

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
)

var (
	// ErrNotMapping is returned when the expression does not evaluate to a map.
	ErrNotMapping = errors.New("native config expression is not a map literal")
	// ErrUnsupportedExpression is returned for expressions outside the literal subset.
	ErrUnsupportedExpression = errors.New("unsupported expression")
)

// Parser turns Go literal expressions into configuration trees.
type Parser struct{}

// NewParser creates a new native-code parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Extensions returns the file extensions handled by the parser.
func (p *Parser) Extensions() []string {
	return []string{"go"}
}

// Parse evaluates data as a Go composite literal. Empty input produces an empty map.
func (p *Parser) Parse(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	fset := token.NewFileSet()

	expr, err := parser.ParseExprFrom(fset, "", data, 0)
	if err != nil {
		return nil, fmt.Errorf("parse expression: %w", err)
	}

	eval := evaluator{fset: fset}

	value, err := eval.expr(expr)
	if err != nil {
		return nil, err
	}

	tree, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, value)
	}

	return tree, nil
}

type evaluator struct {
	fset *token.FileSet
}

func (e evaluator) fail(node ast.Node, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", e.fset.Position(node.Pos()), ErrUnsupportedExpression, fmt.Sprintf(format, args...))
}

func (e evaluator) expr(node ast.Expr) (any, error) {
	switch typed := node.(type) {
	case *ast.ParenExpr:
		return e.expr(typed.X)
	case *ast.Ident:
		return e.ident(typed)
	case *ast.BasicLit, *ast.UnaryExpr:
		return e.constant(node)
	case *ast.CompositeLit:
		return e.composite(typed)
	default:
		return nil, e.fail(node, "%T", node)
	}
}

func (e evaluator) ident(ident *ast.Ident) (any, error) {
	switch ident.Name {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "nil":
		return nil, nil
	default:
		return nil, e.fail(ident, "identifier %q", ident.Name)
	}
}

func (e evaluator) constant(node ast.Expr) (any, error) {
	value, err := e.constantValue(node)
	if err != nil {
		return nil, err
	}

	switch value.Kind() {
	case constant.String:
		return constant.StringVal(value), nil
	case constant.Int:
		if i, exact := constant.Int64Val(value); exact {
			return i, nil
		}

		if u, exact := constant.Uint64Val(value); exact {
			return u, nil
		}

		return nil, e.fail(node, "integer %s overflows 64 bits", value.ExactString())
	case constant.Float:
		f, _ := constant.Float64Val(value)

		return f, nil
	default:
		return nil, e.fail(node, "constant of kind %s", value.Kind())
	}
}

func (e evaluator) constantValue(node ast.Expr) (constant.Value, error) {
	switch typed := node.(type) {
	case *ast.ParenExpr:
		return e.constantValue(typed.X)
	case *ast.BasicLit:
		if typed.Kind == token.IMAG {
			return nil, e.fail(typed, "imaginary literal")
		}

		value := constant.MakeFromLiteral(typed.Value, typed.Kind, 0)
		if value.Kind() == constant.Unknown {
			return nil, e.fail(typed, "malformed literal %s", typed.Value)
		}

		if typed.Kind == token.CHAR {
			r, _ := constant.Int64Val(value)

			return constant.MakeString(string(rune(r))), nil
		}

		return value, nil
	case *ast.UnaryExpr:
		if typed.Op != token.SUB && typed.Op != token.ADD {
			return nil, e.fail(typed, "operator %s", typed.Op)
		}

		operand, err := e.constantValue(typed.X)
		if err != nil {
			return nil, err
		}

		if operand.Kind() != constant.Int && operand.Kind() != constant.Float {
			return nil, e.fail(typed, "operator %s on %s", typed.Op, operand.Kind())
		}

		return constant.UnaryOp(typed.Op, operand, 0), nil
	default:
		return nil, e.fail(node, "%T", node)
	}
}

func (e evaluator) composite(lit *ast.CompositeLit) (any, error) {
	switch litType := lit.Type.(type) {
	case nil:
		if len(lit.Elts) == 0 {
			return map[string]any{}, nil
		}

		if _, keyed := lit.Elts[0].(*ast.KeyValueExpr); keyed {
			return e.mapLiteral(lit)
		}

		return e.sliceLiteral(lit)
	case *ast.MapType:
		key, ok := litType.Key.(*ast.Ident)
		if !ok || key.Name != "string" {
			return nil, e.fail(litType.Key, "map keys must be strings")
		}

		return e.mapLiteral(lit)
	case *ast.ArrayType:
		return e.sliceLiteral(lit)
	default:
		return nil, e.fail(lit, "composite literal of type %T", lit.Type)
	}
}

func (e evaluator) mapLiteral(lit *ast.CompositeLit) (map[string]any, error) {
	out := make(map[string]any, len(lit.Elts))

	for _, elt := range lit.Elts {
		pair, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			return nil, e.fail(elt, "map element without key")
		}

		rawKey, err := e.expr(pair.Key)
		if err != nil {
			return nil, err
		}

		key, ok := rawKey.(string)
		if !ok {
			return nil, e.fail(pair.Key, "map key %v is not a string", rawKey)
		}

		if _, dup := out[key]; dup {
			return nil, e.fail(pair.Key, "duplicate key %q", key)
		}

		value, err := e.expr(pair.Value)
		if err != nil {
			return nil, err
		}

		out[key] = value
	}

	return out, nil
}

func (e evaluator) sliceLiteral(lit *ast.CompositeLit) ([]any, error) {
	out := make([]any, 0, len(lit.Elts))

	for _, elt := range lit.Elts {
		if _, keyed := elt.(*ast.KeyValueExpr); keyed {
			return nil, e.fail(elt, "indexed slice element")
		}

		value, err := e.expr(elt)
		if err != nil {
			return nil, err
		}

		out = append(out, value)
	}

	return out, nil
}
