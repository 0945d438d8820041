package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextToBool(t *testing.T) {
	truthy := []string{"s", "Y", " yes ", "TRUE", "1", "2", "-1", "0.5"}
	for _, text := range truthy {
		assert.True(t, TextToBool(text), text)
	}

	falsy := []string{"", "n", "no", "false", "0", "0.0", "maybe"}
	for _, text := range falsy {
		assert.False(t, TextToBool(text), text)
	}
}

func TestBoolRendering(t *testing.T) {
	assert.Equal(t, "true", BoolToText(true))
	assert.Equal(t, "false", BoolToText(false))
	assert.Equal(t, "1", BoolToFlag(true))
	assert.Equal(t, "", BoolToFlag(false))
}

func TestNullableInt(t *testing.T) {
	assert.Nil(t, NullableInt(""))
	assert.Nil(t, NullableInt("   "))

	zero := NullableInt("0")
	require.NotNil(t, zero)
	assert.Equal(t, 0, *zero)

	assert.Equal(t, 12, *NullableInt("12abc"))
	assert.Equal(t, -3, *NullableInt("-3"))
	assert.Equal(t, 0, *NullableInt("abc"))
	assert.Equal(t, "", IntToText(nil))
	assert.Equal(t, "7", IntToText(IntPtr(7)))
}

func TestNullableFloat(t *testing.T) {
	assert.Nil(t, NullableFloat(""))
	assert.Nil(t, NullableFloat("high"))
	assert.Equal(t, 7.5, *NullableFloat(" 7.5 "))
}
