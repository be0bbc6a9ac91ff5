package bitfinex

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var errUnsupportedValue = errors.New("unsupported parameter value")

// QueryString renders the non-nullish values of keys, in the order given, as
// a "?k=v&k=v" suffix. Nothing present gives an empty string.
func QueryString(p *Params, keys ...string) (string, error) {
	var sb strings.Builder
	for _, k := range keys {
		if p.IsNullish(k) {
			continue
		}
		v, _ := p.Get(k)
		s, err := formatValue(v)
		if err != nil {
			return "", fmt.Errorf("query parameter %q: %w", k, err)
		}
		if sb.Len() == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(s))
	}
	return sb.String(), nil
}

// formatValue renders a scalar as it should appear in a URL. Slices are
// joined with commas and anything else structured is JSON encoded.
func formatValue(v interface{}) (string, error) {
	if isNullish(v) {
		return "", nil
	}
	switch val := v.(type) {
	case string:
		return val, nil
	case decimal.Decimal:
		return val.String(), nil
	case *decimal.Decimal:
		return val.String(), nil
	case *Params:
		b, err := val.MarshalJSON()
		if err != nil {
			return "", err
		}
		return string(b), nil
	case time.Time:
		return strconv.FormatInt(val.UnixMilli(), 10), nil
	case fmt.Stringer:
		return val.String(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: %v", errUnsupportedValue, f)
		}
		return strconv.FormatFloat(f, 'f', -1, rv.Type().Bits()), nil
	case reflect.Ptr, reflect.Interface:
		return formatValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			s, err := formatValue(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, ","), nil
	case reflect.Map, reflect.Struct:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("%w: %T", errUnsupportedValue, v)
	}
}
