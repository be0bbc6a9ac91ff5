package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/thrasher-corp/bfxrest/exchanges/bitfinex"
)

var (
	errParamFormat   = errors.New("parameter must be key=value")
	errParamKeyEmpty = errors.New("parameter key is empty")
)

// buildParams turns repeated key=value flags into Params in flag order
func buildParams(args []string) (*bitfinex.Params, error) {
	p := bitfinex.NewParams()
	for _, a := range args {
		k, v, err := parseParam(a)
		if err != nil {
			return nil, err
		}
		p.Set(k, v)
	}
	return p, nil
}

func parseParam(s string) (string, interface{}, error) {
	k, raw, ok := strings.Cut(s, "=")
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", errParamFormat, s)
	}
	k = strings.TrimSpace(k)
	if k == "" {
		return "", nil, fmt.Errorf("%w: %q", errParamKeyEmpty, s)
	}
	v, err := parseValue(raw)
	if err != nil {
		return "", nil, fmt.Errorf("parameter %q: %w", k, err)
	}
	return k, v, nil
}

// parseValue guesses the type of a flag value. Quote a value to keep it a
// string, e.g. amount="100".
func parseValue(s string) (interface{}, error) {
	switch s {
	case "null":
		return nil, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return strconv.Unquote(s)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !strings.ContainsAny(s, "xXnN") {
		return f, nil
	}
	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		var v interface{}
		d := json.NewDecoder(strings.NewReader(s))
		d.UseNumber()
		if err := d.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
	return s, nil
}
