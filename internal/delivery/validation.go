package delivery

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cherry-12345/naksh-jewels/internal/domain"
)

// The validation layer is a declarative list of per-field checks, evaluated
// eagerly so a single response enumerates every offending field. It runs
// before any handler logic; on failure the handler never executes.

type fieldCheck struct {
	ok      func(v any) bool
	message string
}

type fieldRule struct {
	field  string
	checks []fieldCheck
}

// requiredInt builds the rule set shared by all cart mutations: the field
// must be present (missing, null, zero, and empty string all count as
// absent) and must parse as an integer within [min, max]. max <= 0 leaves
// the upper bound open.
func requiredInt(field, rangeMessage string, min, max int) fieldRule {
	return fieldRule{
		field: field,
		checks: []fieldCheck{
			{ok: present, message: field + " is required"},
			{
				ok: func(v any) bool {
					n, ok := intValue(v)
					if !ok || n < min {
						return false
					}
					return max <= 0 || n <= max
				},
				message: rangeMessage,
			},
		},
	}
}

var productIDRule = requiredInt("productId", "productId must be a positive integer", 1, 0)
var quantityRule = requiredInt("quantity", "quantity must be an integer between 1 and 99", 1, domain.MaxQuantity)

var addToCartRules = []fieldRule{productIDRule, quantityRule}
var updateCartRules = []fieldRule{productIDRule, quantityRule}
var removeFromCartRules = []fieldRule{productIDRule}

// validate runs every rule against the collected field values and aggregates
// failures. A field that fails its required check reports only that message.
func validate(values map[string]any, rules []fieldRule) []domain.FieldError {
	var failures []domain.FieldError
	for _, rule := range rules {
		value := values[rule.field]
		for _, check := range rule.checks {
			if !check.ok(value) {
				failures = append(failures, domain.FieldError{
					Field:   rule.field,
					Message: check.message,
				})
				break
			}
		}
	}
	return failures
}

// present rejects missing, null, and falsy-but-present values identically.
func present(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != ""
	case json.Number:
		return value.String() != "0"
	case bool:
		return value
	}
	return true
}

// intValue parses an integer out of a decoded JSON value or a path/query
// string. Floats such as 2.5 and non-numeric strings are rejected.
func intValue(v any) (int, bool) {
	switch value := v.(type) {
	case json.Number:
		n, err := strconv.Atoi(value.String())
		if err != nil {
			return 0, false
		}
		return n, true
	case string:
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, false
		}
		return n, true
	case int:
		return value, true
	}
	return 0, false
}

// parseBody decodes a JSON object body preserving numbers as json.Number so
// 2.5 stays distinguishable from 2. An empty body yields an empty map; a
// malformed one is a 400, not a validation failure.
func parseBody(c *gin.Context) (map[string]any, error) {
	values := make(map[string]any)
	decoder := json.NewDecoder(c.Request.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&values); err != nil {
		if errors.Is(err, io.EOF) {
			return values, nil
		}
		return nil, domain.BadRequest("Invalid JSON in request body")
	}
	return values, nil
}
