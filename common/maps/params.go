package maps

import (
	"strings"

	"github.com/spf13/cast"
)

// Params is a map where all keys are lower case.
type Params map[string]any

// Set overwrites values in p with values in pp for common or new keys.
// This is done recursively.
func (p Params) Set(pp Params) {
	for k, v := range pp {
		vv, found := p[k]
		if !found {
			p[k] = v
			continue
		}
		if existing, ok := vv.(Params); ok {
			if pv, ok := v.(Params); ok {
				existing.Set(pv)
				continue
			}
		}
		p[k] = v
	}
}

// Get does a lower case and nested search in this map.
// It will return nil if none found.
func (p Params) Get(indices ...string) any {
	if len(indices) == 0 {
		return nil
	}
	v, found := p[strings.ToLower(indices[0])]
	if !found || len(indices) == 1 {
		return v
	}
	switch m := v.(type) {
	case Params:
		return m.Get(indices[1:]...)
	case map[string]any:
		return Params(m).Get(indices[1:]...)
	}
	return nil
}

// ToParamsAndPrepare converts in to Params and prepares it for use.
// If in is nil, an empty map is returned.
func ToParamsAndPrepare(in any) (Params, bool) {
	if in == nil {
		return Params{}, true
	}
	var m map[string]any
	switch vv := in.(type) {
	case Params:
		m = vv
	case map[string]string:
		m = make(map[string]any, len(vv))
		for k, v := range vv {
			m[k] = v
		}
	default:
		var err error
		m, err = cast.ToStringMapE(in)
		if err != nil {
			return nil, false
		}
	}
	p := Params(m)
	PrepareParams(p)
	return p, true
}

// PrepareParams lower cases all the keys in m and converts any nested
// map[any]any, map[string]any or map[string]string into Params, recursively.
// It modifies m.
func PrepareParams(m Params) {
	for k, v := range m {
		var retyped bool
		switch vv := v.(type) {
		case map[any]any, map[string]any, map[string]string:
			p, _ := ToParamsAndPrepare(vv)
			v = p
			retyped = true
		case Params:
			PrepareParams(vv)
		}
		lKey := strings.ToLower(k)
		if retyped || k != lKey {
			delete(m, k)
			m[lKey] = v
		}
	}
}
