package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// EncodeFormValue flattens a decoded JSON value into Stripe's bracketed form
// keys, e.g. line_items[0][price_data][currency]=usd, calling add for every
// leaf. Map keys are visited in sorted order. JSON nulls are dropped.
func EncodeFormValue(prefix string, value interface{}, add func(key, value string)) {
	switch v := value.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			EncodeFormValue(prefix+"["+k+"]", v[k], add)
		}
	case []interface{}:
		for i, elem := range v {
			EncodeFormValue(fmt.Sprintf("%s[%d]", prefix, i), elem, add)
		}
	case nil:
	case string:
		add(prefix, v)
	case json.Number:
		add(prefix, formatNumber(v))
	case bool:
		add(prefix, strconv.FormatBool(v))
	case float64:
		add(prefix, strconv.FormatFloat(v, 'f', -1, 64))
	default:
		add(prefix, fmt.Sprint(v))
	}
}

// formatNumber normalizes a JSON number the way a float64 round trip would,
// so 2.0 and 1e2 reach Stripe as the integers 2 and 100.
func formatNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
