// Package hcldata evaluates data artifacts and locale catalogs written as HCL expressions.
package hcldata

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"go.trai.ch/i18nhtml/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Evaluator = (*Evaluator)(nil)

// Evaluator evaluates a single HCL expression with no variables and no functions,
// so the evaluated source cannot observe anything outside itself.
type Evaluator struct{}

// NewEvaluator creates a new Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate parses src as one expression and converts the result into plain Go values.
func (e *Evaluator) Evaluate(src []byte, filename string) (any, error) {
	expr, diags := hclsyntax.ParseExpression(src, filename, hcl.Pos{Line: 1, Column: 1, Byte: 0})
	if diags.HasErrors() {
		return nil, syntaxError(filename, diags)
	}

	val, diags := expr.Value(&hcl.EvalContext{})
	if diags.HasErrors() {
		return nil, syntaxError(filename, diags)
	}

	out, err := toNative(val)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, fmt.Sprintf("syntax error at %q", filename)), "path", filename)
	}
	return out, nil
}

func syntaxError(filename string, diags hcl.Diagnostics) error {
	return zerr.With(zerr.Wrap(diags, fmt.Sprintf("syntax error at %q", filename)), "path", filename)
}
