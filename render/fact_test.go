package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyProducerRunsExactlyOnce(t *testing.T) {
	calls := 0
	facts := []Fact{
		{Label: "CPU", Value: Lazy(func() (string, error) {
			calls++
			return "45.0%", nil
		})},
	}
	var buf bytes.Buffer
	RenderSection(&buf, "Hardware", facts, 80, PlainTheme)

	require.Equal(t, 1, calls)
	assert.Contains(t, buf.String(), "CPU 45.0%")
}

func TestLazyProducerErrorOmitsRow(t *testing.T) {
	facts := []Fact{
		{Label: "Battery", Value: Lazy(func() (string, error) {
			return "", errors.New("no battery present")
		})},
		{Label: "Memory", Value: Literal("8192M/16384M")},
	}
	var buf bytes.Buffer
	RenderSection(&buf, "Hardware", facts, 80, PlainTheme)

	out := buf.String()
	assert.NotContains(t, out, "Battery")
	assert.Contains(t, out, "Memory 8192M/16384M")
}

func TestValueAbsentForms(t *testing.T) {
	for name, v := range map[string]Value{
		"sentinel":      Literal(Absent),
		"empty":         Literal(""),
		"lazy sentinel": Lazy(func() (string, error) { return Absent, nil }),
		"lazy empty":    Lazy(func() (string, error) { return "", nil }),
	} {
		_, ok := Fact{Label: "x", Value: v}.resolve()
		assert.False(t, ok, name)
	}
}

func TestValuePresentForms(t *testing.T) {
	for name, v := range map[string]Value{
		"literal": Literal("6.8.0"),
		"lazy":    Lazy(func() (string, error) { return "6.8.0", nil }),
	} {
		s, ok := Fact{Label: "Kernel", Value: v}.resolve()
		require.True(t, ok, name)
		assert.Equal(t, "6.8.0", s, name)
	}
}
