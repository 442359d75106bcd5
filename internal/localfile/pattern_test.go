package localfile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPattern_States(t *testing.T) {
	absent := NoPattern()
	assert.False(t, absent.IsPresent())
	assert.True(t, absent.IsZero())
	assert.Equal(t, MatchAll, absent.OrElse(MatchAll))

	empty := PatternOf("")
	expr, ok := empty.Get()
	assert.True(t, ok)
	assert.Equal(t, "", expr)
	assert.NotEqual(t, absent, empty)

	explicit := PatternOf(`.*\.log`)
	assert.Equal(t, `.*\.log`, explicit.OrElse(MatchAll))
}

func TestPattern_JSON(t *testing.T) {
	type wrapper struct {
		Pattern Pattern `json:"pattern"`
	}

	tests := []struct {
		name string
		in   string
		want Pattern
	}{
		{name: "null", in: `{"pattern": null}`, want: NoPattern()},
		{name: "missing", in: `{}`, want: NoPattern()},
		{name: "empty string", in: `{"pattern": ""}`, want: PatternOf("")},
		{name: "expression", in: `{"pattern": "a+"}`, want: PatternOf("a+")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w wrapper
			require.NoError(t, json.Unmarshal([]byte(tt.in), &w))
			assert.Equal(t, tt.want, w.Pattern)

			out, err := json.Marshal(w)
			require.NoError(t, err)

			var back wrapper
			require.NoError(t, json.Unmarshal(out, &back))
			assert.Equal(t, tt.want, back.Pattern)
		})
	}

	var w wrapper
	assert.Error(t, json.Unmarshal([]byte(`{"pattern": 3}`), &w))
}

func TestCompileFullMatch(t *testing.T) {
	re, err := compileFullMatch("a|b")
	require.NoError(t, err)
	assert.True(t, re.MatchString("a"))
	assert.True(t, re.MatchString("b"))
	assert.False(t, re.MatchString("ab"))

	_, err = compileFullMatch("[")
	assert.Error(t, err)
}
