package mongo

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gigstage/booking-system/internal/core/ports"
)

// comparisonOps are the bare keywords accepted as object keys in filter
// parameters, rewritten into their store-operator form. A field merely
// containing one of these words (e.g. "ingredient") is never rewritten;
// only keys that equal the keyword exactly.
var comparisonOps = map[string]string{
	"gt":  "$gt",
	"gte": "$gte",
	"lt":  "$lt",
	"lte": "$lte",
	"in":  "$in",
}

// buildFilter converts a shaping filter map into a Mongo filter document.
// Rewriting is a structural walk over the parsed map, not a text-level
// substitution on serialized JSON: operator keys are replaced at any nesting
// depth and scalar strings are coerced so raw-driver comparisons against
// numeric and boolean fields behave like the schema-casting store did.
func buildFilter(filter map[string]any) bson.M {
	out := bson.M{}
	for k, v := range filter {
		out[k] = rewriteValue(k, v)
	}
	return out
}

func rewriteValue(parentKey string, v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := bson.M{}
		for k, inner := range val {
			if op, ok := comparisonOps[k]; ok {
				out[op] = rewriteOperand(k, inner)
				continue
			}
			out[k] = rewriteValue(k, inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = rewriteValue(parentKey, item)
		}
		return out
	case string:
		return coerceScalar(val)
	default:
		return val
	}
}

// rewriteOperand prepares the value attached to a comparison operator.
// For `in`, a comma-separated string becomes an array of coerced scalars.
func rewriteOperand(op string, v any) any {
	if op == "in" {
		if s, ok := v.(string); ok {
			parts := strings.Split(s, ",")
			out := make([]any, len(parts))
			for i, p := range parts {
				out[i] = coerceScalar(p)
			}
			return out
		}
	}
	return rewriteValue(op, v)
}

// coerceScalar interprets query-string values: numbers and booleans compare
// against their typed fields, everything else stays a string.
func coerceScalar(s string) any {
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

// findOptions translates select/sort/page/limit into driver options.
// Callers pass options that the service layer already normalized.
func findOptions(opts ports.ListOptions) *options.FindOptions {
	fo := options.Find().
		SetSkip(int64(opts.Skip())).
		SetLimit(int64(opts.Limit))

	if len(opts.Select) > 0 {
		projection := bson.D{}
		for _, field := range opts.Select {
			if field = strings.TrimSpace(field); field != "" {
				projection = append(projection, bson.E{Key: field, Value: 1})
			}
		}
		fo.SetProjection(projection)
	}

	if len(opts.Sort) > 0 {
		fo.SetSort(sortSpec(opts.Sort))
	}

	return fo
}

// sortSpec converts field names to a sort document; a leading '-' means
// descending.
func sortSpec(fields []string) bson.D {
	spec := bson.D{}
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		order := 1
		if strings.HasPrefix(field, "-") {
			order = -1
			field = field[1:]
		}
		spec = append(spec, bson.E{Key: field, Value: order})
	}
	return spec
}
