package signature

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

const hexDigits = "0123456789abcdef"

// QueryString joins params as key=value pairs with '&' in insertion order.
// Values are not URL-escaped; this is the signable form, not the wire form.
func QueryString(params *Params) string {
	parts := make([]string, 0, params.Len())
	params.Each(func(key string, value any) {
		parts = append(parts, key+"="+FormatValue(value))
	})
	return strings.Join(parts, "&")
}

// FormatValue renders a parameter value for the signable query string.
// Scalars follow the service's textual conventions (None, True/False,
// floats always carrying a fraction or exponent); composite values are
// rendered as compact JSON.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case string:
		return v
	case bool:
		if v {
			return "True"
		}
		return "False"
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return formatFloat(float64(v), 32, false)
	case float64:
		return formatFloat(v, 64, false)
	case json.Number:
		return v.String()
	case *Params:
		b, _ := CompactJSON(v)
		return string(b)
	case fmt.Stringer:
		return v.String()
	}

	b, err := encodeValue(nil, value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(b)
}

// CompactJSON serializes params without insignificant whitespace, keeping
// insertion order and leaving non-ASCII characters unescaped.
func CompactJSON(params *Params) ([]byte, error) {
	if params == nil {
		return []byte("{}"), nil
	}
	return encodeValue(nil, params)
}

func encodeValue(buf []byte, value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return append(buf, "null"...), nil
	case *Params:
		if v == nil {
			return append(buf, "null"...), nil
		}
		return encodeParams(buf, v)
	case string:
		return appendString(buf, v), nil
	case bool:
		return strconv.AppendBool(buf, v), nil
	case float32:
		return append(buf, formatFloat(float64(v), 32, true)...), nil
	case float64:
		return append(buf, formatFloat(v, 64, true)...), nil
	case json.Number:
		return append(buf, v.String()...), nil
	case json.RawMessage:
		var out bytes.Buffer
		if err := json.Compact(&out, v); err != nil {
			return nil, err
		}
		return append(buf, out.Bytes()...), nil
	case []string:
		buf = append(buf, '[')
		for i, s := range v {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendString(buf, s)
		}
		return append(buf, ']'), nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(buf, rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.AppendUint(buf, rv.Uint(), 10), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return append(buf, "null"...), nil
		}
		return encodeList(buf, rv)
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			if rv.IsNil() {
				return append(buf, "null"...), nil
			}
			return encodeMap(buf, rv)
		}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return append(buf, "null"...), nil
		}
		return encodeValue(buf, rv.Elem().Interface())
	}

	return encodeFallback(buf, value)
}

func encodeParams(buf []byte, p *Params) ([]byte, error) {
	var err error
	buf = append(buf, '{')
	first := true
	p.Each(func(key string, value any) {
		if err != nil {
			return
		}
		if !first {
			buf = append(buf, ',')
		}
		first = false
		buf = appendString(buf, key)
		buf = append(buf, ':')
		buf, err = encodeValue(buf, value)
	})
	if err != nil {
		return nil, fmt.Errorf("encode param: %w", err)
	}
	return append(buf, '}'), nil
}

func encodeList(buf []byte, rv reflect.Value) ([]byte, error) {
	var err error
	buf = append(buf, '[')
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			buf = append(buf, ',')
		}
		if buf, err = encodeValue(buf, rv.Index(i).Interface()); err != nil {
			return nil, err
		}
	}
	return append(buf, ']'), nil
}

// encodeMap emits Go maps with sorted keys; Go maps carry no order to keep.
func encodeMap(buf []byte, rv reflect.Value) ([]byte, error) {
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	var err error
	buf = append(buf, '{')
	for i, k := range keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendString(buf, k)
		buf = append(buf, ':')
		val := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
		if buf, err = encodeValue(buf, val.Interface()); err != nil {
			return nil, err
		}
	}
	return append(buf, '}'), nil
}

// encodeFallback covers structs and other types through encoding/json.
func encodeFallback(buf []byte, value any) ([]byte, error) {
	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return append(buf, bytes.TrimRight(out.Bytes(), "\n")...), nil
}

// appendString quotes s escaping only '"', '\\' and control characters.
func appendString(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			if c < 0x20 {
				buf = append(buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
				continue
			}
			buf = append(buf, c)
		}
	}
	return append(buf, '"')
}

// formatFloat renders the shortest round-trip form, switching to exponent
// notation below 1e-4 and from 1e16 up, and always keeping a fraction on
// integral values (1 -> "1.0").
func formatFloat(f float64, bits int, forJSON bool) string {
	switch {
	case math.IsNaN(f):
		if forJSON {
			return "NaN"
		}
		return "nan"
	case math.IsInf(f, 1):
		if forJSON {
			return "Infinity"
		}
		return "inf"
	case math.IsInf(f, -1):
		if forJSON {
			return "-Infinity"
		}
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, bits)
	}
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
