package style

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
	}{
		{"black", Black},
		{"red", Red},
		{"green", Green},
		{"yellow", Yellow},
		{"blue", Blue},
		{"magenta", Magenta},
		{"cyan", Cyan},
		{"white", White},
		{"RED", Red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown name should fail", func(t *testing.T) {
		_, err := ParseColor("mauve")
		assert.ErrorIs(t, err, ErrUnknownColor)
	})
}

func TestFormat(t *testing.T) {
	f := New(Zsh)

	t.Run("foreground only", func(t *testing.T) {
		got, err := f.Format("main", Spec{Foreground: Yellow})
		require.NoError(t, err)
		assert.Equal(t, "%{\x1b[33m%}main%{\x1b[0m%}", got)
	})

	t.Run("background only", func(t *testing.T) {
		got, err := f.Format(" ", Spec{Background: Black})
		require.NoError(t, err)
		assert.Equal(t, "%{\x1b[40m%} %{\x1b[0m%}", got)
	})

	t.Run("all attributes are emitted outermost first", func(t *testing.T) {
		got, err := f.Format("x", Spec{
			Foreground: Green,
			Background: White,
			Bold:       true,
			Underline:  true,
			Reverse:    true,
		})
		require.NoError(t, err)
		want := "%{\x1b[7m%}%{\x1b[4m%}%{\x1b[1m%}%{\x1b[47m%}%{\x1b[32m%}x%{\x1b[0m%}"
		assert.Equal(t, want, got)
	})

	t.Run("plain spec still resets", func(t *testing.T) {
		got, err := f.Format("plain", Spec{})
		require.NoError(t, err)
		assert.Equal(t, "plain%{\x1b[0m%}", got)
	})

	t.Run("bash dialect uses bracket markers", func(t *testing.T) {
		got, err := New(Bash).Format("venv", Spec{Foreground: Blue})
		require.NoError(t, err)
		assert.Equal(t, `\[`+"\x1b[34m"+`\]venv\[`+"\x1b[0m"+`\]`, got)
	})
}

func TestFormatEmptyText(t *testing.T) {
	specs := []Spec{
		{},
		{Foreground: Red},
		{Background: Black, Bold: true},
		{Foreground: Cyan, Background: Magenta, Bold: true, Underline: true, Reverse: true},
		{Foreground: Color(99)},
	}
	for _, d := range []Dialect{Zsh, Bash} {
		for _, spec := range specs {
			got, err := New(d).Format("", spec)
			require.NoError(t, err)
			assert.Empty(t, got, "dialect %s spec %+v", d, spec)
		}
	}
}

func TestFormatUnknownColor(t *testing.T) {
	f := New(Zsh)

	t.Run("foreground out of palette", func(t *testing.T) {
		got, err := f.Format("x", Spec{Foreground: Color(42)})
		assert.True(t, errors.Is(err, ErrUnknownColor))
		assert.Empty(t, got)
	})

	t.Run("background out of palette", func(t *testing.T) {
		_, err := f.Format("x", Spec{Background: Color(-3)})
		assert.ErrorIs(t, err, ErrUnknownColor)
		assert.True(t, strings.HasPrefix(err.Error(), "background:"))
	})
}

func TestZeroWidth(t *testing.T) {
	assert.Equal(t, "%{\n%}", Zsh.ZeroWidth("\n"))
	assert.Equal(t, `\[`+"\n"+`\]`, Bash.ZeroWidth("\n"))
}
