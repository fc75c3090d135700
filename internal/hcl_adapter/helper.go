package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/abilitygraph/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// isExprDefined checks if an HCL expression was actually present in the
// source. The decoder fills omitted optional expressions with zero-width
// placeholders, so a nil check is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		logger.Debug("Expression is nil, considering it undefined.", "attribute", attrName)
		return false
	}

	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	logger.Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)

	return isDefined
}

// optionalIndex evaluates an optional index attribute. It returns nil when
// the attribute was omitted or set to null.
func optionalIndex(ctx context.Context, expr hcl.Expression, attrName string) (*int, error) {
	if !isExprDefined(ctx, expr, attrName) {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("attribute '%s': %w", attrName, diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() || val.Type() != cty.Number {
		return nil, fmt.Errorf("attribute '%s' at %s must be a number, got %s", attrName, expr.Range(), val.Type().FriendlyName())
	}

	var index int
	if err := gocty.FromCtyValue(val, &index); err != nil {
		return nil, fmt.Errorf("attribute '%s' at %s: %w", attrName, expr.Range(), err)
	}
	if index < 0 {
		return nil, fmt.Errorf("attribute '%s' at %s must not be negative, got %d", attrName, expr.Range(), index)
	}
	return &index, nil
}
