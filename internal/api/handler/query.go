package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gigstage/booking-system/internal/core/ports"
)

// Params that shape the result instead of filtering it.
var reservedParams = map[string]struct{}{
	"select": {},
	"sort":   {},
	"page":   {},
	"limit":  {},
}

// listOptions parses the query string of a list endpoint. Reserved params are
// stripped into their dedicated fields; everything else becomes a filter
// entry. Bracket syntax nests comparison keywords under the field name:
//
//	?hourlyRate[gte]=100&hourlyRate[lte]=250&eventType[in]=concert,festival
//
// becomes {"hourlyRate": {"gte":"100","lte":"250"}, "eventType": {"in": ...}}.
// Values stay strings here; the store layer rewrites keywords to operators
// and coerces scalars.
func listOptions(c echo.Context) ports.ListOptions {
	opts := ports.ListOptions{Filter: map[string]any{}}

	for key, values := range c.QueryParams() {
		if len(values) == 0 {
			continue
		}
		value := values[0]

		field, nested := splitBracket(key)
		if _, reserved := reservedParams[field]; reserved && nested == "" {
			switch field {
			case "select":
				opts.Select = splitCSV(value)
			case "sort":
				opts.Sort = splitCSV(value)
			case "page":
				opts.Page, _ = strconv.Atoi(value)
			case "limit":
				opts.Limit, _ = strconv.Atoi(value)
			}
			continue
		}

		if nested == "" {
			opts.Filter[field] = value
			continue
		}
		inner, ok := opts.Filter[field].(map[string]any)
		if !ok {
			inner = map[string]any{}
			opts.Filter[field] = inner
		}
		inner[nested] = value
	}

	return opts
}

// splitBracket decomposes "field[key]" into ("field", "key"); plain names
// return an empty key.
func splitBracket(param string) (field, key string) {
	open := strings.IndexByte(param, '[')
	if open <= 0 || !strings.HasSuffix(param, "]") {
		return param, ""
	}
	return param[:open], param[open+1 : len(param)-1]
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
