package bitfinex

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
)

// Params is an ordered set of request fields. A nil value is an explicit null
// and a key that was never set is undefined; both are nullish and never reach
// the wire.
type Params struct {
	keys   []string
	values map[string]interface{}
}

// NewParams builds Params from alternating key and value arguments, keeping
// their order. It panics on an odd argument count or a non-string key.
func NewParams(kv ...interface{}) *Params {
	if len(kv)%2 != 0 {
		panic("bitfinex: NewParams called with an odd argument count")
	}
	p := &Params{values: make(map[string]interface{}, len(kv)/2)}
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic("bitfinex: NewParams key is not a string")
		}
		p.Set(k, kv[i+1])
	}
	return p
}

// ParamsFromMap copies m into Params. Map iteration order is random so keys
// are sorted to keep the output stable.
func ParamsFromMap(m map[string]interface{}) *Params {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	p := &Params{values: make(map[string]interface{}, len(m))}
	for _, k := range keys {
		p.Set(k, m[k])
	}
	return p
}

// Set stores value under key. Overwriting keeps the key's original position.
func (p *Params) Set(key string, value interface{}) *Params {
	if p.values == nil {
		p.values = make(map[string]interface{})
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the value for key and whether it was ever set
func (p *Params) Get(key string) (interface{}, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Delete removes key
func (p *Params) Delete(key string) {
	if p == nil {
		return
	}
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i := range p.keys {
		if p.keys[i] == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order, nullish ones included
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of keys set
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// IsNullish reports whether key is undefined or null
func (p *Params) IsNullish(key string) bool {
	v, ok := p.Get(key)
	return !ok || isNullish(v)
}

// Clone returns a shallow copy
func (p *Params) Clone() *Params {
	c := &Params{values: make(map[string]interface{}, p.Len())}
	for _, k := range p.Keys() {
		c.Set(k, p.values[k])
	}
	return c
}

// MarshalJSON encodes the non-nullish fields as a JSON object in insertion
// order. Falsy values such as 0, "" and false are kept.
func (p *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, k := range p.Keys() {
		v := p.values[k]
		if isNullish(v) {
			continue
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func isNullish(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
