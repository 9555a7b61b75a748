package signature_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infrabed/pkg/signature"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "BUY", "BUY"},
		{"nil", nil, "None"},
		{"true", true, "True"},
		{"false", false, "False"},
		{"int", 10, "10"},
		{"negative int64", int64(-3), "-3"},
		{"uint", uint(7), "7"},
		{"float", 1.1, "1.1"},
		{"integral float", 1.0, "1.0"},
		{"negative zero", math.Copysign(0, -1), "-0.0"},
		{"large float", 1e16, "1e+16"},
		{"small float", 0.00001, "1e-05"},
		{"plain float", 123456.789, "123456.789"},
		{"inf", math.Inf(1), "inf"},
		{"json number", json.Number("42"), "42"},
		{"string slice", []string{"a", "b"}, `["a","b"]`},
		{"int slice", []int{1, 2}, "[1,2]"},
		{"nested params", signature.NewParams().Set("k", "v"), `{"k":"v"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, signature.FormatValue(tt.value))
		})
	}
}

func TestCompactJSON(t *testing.T) {
	t.Run("mapping order and literal non-ascii", func(t *testing.T) {
		params := signature.NewParams().
			Set("sentence", "héllo <b> & \"q\"\n").
			Set("model_id", nil).
			Set("n", []any{1, 2.5, 1.0})

		got, err := signature.CompactJSON(params)
		require.NoError(t, err)
		assert.Equal(t, `{"sentence":"héllo <b> & \"q\"\n","model_id":null,"n":[1,2.5,1.0]}`, string(got))
	})

	t.Run("batch body", func(t *testing.T) {
		params := signature.NewParams().
			Set("sentences", []string{"a", "b"}).
			Set("model_id", "m1")

		got, err := signature.CompactJSON(params)
		require.NoError(t, err)
		assert.Equal(t, `{"sentences":["a","b"],"model_id":"m1"}`, string(got))
	})

	t.Run("control characters", func(t *testing.T) {
		got, err := signature.CompactJSON(signature.NewParams().Set("c", "\x01\t\\"))
		require.NoError(t, err)
		assert.Equal(t, `{"c":"\u0001\t\\"}`, string(got))
	})

	t.Run("go maps are sorted", func(t *testing.T) {
		got, err := signature.CompactJSON(signature.NewParams().Set("m", map[string]int{"b": 2, "a": 1}))
		require.NoError(t, err)
		assert.Equal(t, `{"m":{"a":1,"b":2}}`, string(got))
	})

	t.Run("nil params", func(t *testing.T) {
		got, err := signature.CompactJSON(nil)
		require.NoError(t, err)
		assert.Equal(t, "{}", string(got))
	})

	t.Run("json.Marshal keeps insertion order", func(t *testing.T) {
		params := signature.NewParams().Set("z", 1).Set("a", "x")
		got, err := json.Marshal(params)
		require.NoError(t, err)
		assert.Equal(t, `{"z":1,"a":"x"}`, string(got))
	})

	t.Run("unsupported value", func(t *testing.T) {
		_, err := signature.CompactJSON(signature.NewParams().Set("ch", make(chan int)))
		assert.Error(t, err)
	})
}

func TestParamsFromQuery(t *testing.T) {
	params, err := signature.ParamsFromQuery("type=BUY&amount=10&ids=a&ids=b&q=it%27s+a")
	require.NoError(t, err)

	assert.Equal(t, []string{"type", "amount", "ids", "q"}, params.Keys())
	assert.Equal(t, `type=BUY&amount=10&ids=["a","b"]&q=it's a`, signature.QueryString(params))

	_, err = signature.ParamsFromQuery("bad=%zz")
	assert.Error(t, err)
}

func TestParamsValues(t *testing.T) {
	params := signature.NewParams().
		Set("q", "hello world").
		Set("skip", nil).
		Set("ids", []string{"a", "b"}).
		Set("n", 2)

	assert.Equal(t, "q=hello+world&ids=a&ids=b&n=2", params.Values())
	assert.Equal(t, 4, params.Len())
}
