package signature

import (
	"fmt"
	"net/url"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Params is an insertion-ordered parameter mapping. Signing walks it in
// insertion order, never sorted, so callers control the order the service
// will see.
type Params struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewParams returns an empty mapping.
func NewParams() *Params {
	return &Params{m: orderedmap.New[string, any]()}
}

// Set stores value under key. Re-setting an existing key keeps its position.
func (p *Params) Set(key string, value any) *Params {
	p.m.Set(key, value)
	return p
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	return p.m.Get(key)
}

// Len is nil-safe; a nil *Params is an empty mapping.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return p.m.Len()
}

// Keys returns keys in insertion order.
func (p *Params) Keys() []string {
	keys := make([]string, 0, p.Len())
	p.Each(func(key string, _ any) {
		keys = append(keys, key)
	})
	return keys
}

// Each calls fn for every pair in insertion order.
func (p *Params) Each(fn func(key string, value any)) {
	if p == nil {
		return
	}
	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// MarshalJSON renders the mapping as compact JSON in insertion order.
func (p *Params) MarshalJSON() ([]byte, error) {
	return CompactJSON(p)
}

// Values renders the mapping as URL query values the way the transport
// sends them: nil values are dropped and slices repeat their key.
func (p *Params) Values() string {
	var parts []string
	p.Each(func(key string, value any) {
		k := url.QueryEscape(key)
		switch v := value.(type) {
		case nil:
		case []string:
			for _, item := range v {
				parts = append(parts, k+"="+url.QueryEscape(item))
			}
		case []any:
			for _, item := range v {
				if item == nil {
					continue
				}
				parts = append(parts, k+"="+url.QueryEscape(FormatValue(item)))
			}
		default:
			parts = append(parts, k+"="+url.QueryEscape(FormatValue(v)))
		}
	})
	return strings.Join(parts, "&")
}

// ParamsFromQuery parses a raw query string preserving the order keys
// first appear in. Repeated keys collapse into a []string.
func ParamsFromQuery(rawQuery string) (*Params, error) {
	params := NewParams()
	if rawQuery == "" {
		return params, nil
	}

	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("invalid query key %q: %w", rawKey, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("invalid query value for %q: %w", key, err)
		}

		existing, ok := params.Get(key)
		switch {
		case !ok:
			params.Set(key, value)
		case isStringSlice(existing):
			params.Set(key, append(existing.([]string), value))
		default:
			params.Set(key, []string{existing.(string), value})
		}
	}
	return params, nil
}

func isStringSlice(v any) bool {
	_, ok := v.([]string)
	return ok
}
