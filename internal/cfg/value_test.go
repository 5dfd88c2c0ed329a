package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestValueUnmarshalYAMLScalar(t *testing.T) {
	var v Value
	assert.NoError(t, yaml.Unmarshal([]byte(`hello`), &v))
	assert.Equal(t, ItemValue("hello"), v)
	assert.False(t, v.IsEmpty())
}

func TestValueUnmarshalYAMLSequence(t *testing.T) {
	var v Value
	assert.NoError(t, yaml.Unmarshal([]byte("- a\n- b\n"), &v))
	assert.Equal(t, ListValue([]string{"a", "b"}), v)
}

func TestValueUnmarshalYAMLMapping(t *testing.T) {
	var v Value
	assert.NoError(t, yaml.Unmarshal([]byte("a: 1\nb: 2\n"), &v))
	assert.Equal(t, DictValue(map[string]string{"a": "1", "b": "2"}), v)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "Value::Empty", EmptyValue.String())
	assert.Equal(t, "Value::Item(x)", ItemValue("x").String())
}
