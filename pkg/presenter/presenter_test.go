package presenter

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPresenter(input string) (*TerminalPresenter, *bytes.Buffer, *bytes.Buffer) {
	var output, errorOutput bytes.Buffer
	p := NewWithOptions(&output, &errorOutput, strings.NewReader(input), ColorNever)
	return p, &output, &errorOutput
}

func TestNew(t *testing.T) {
	presenter := New()
	assert.NotNil(t, presenter)
	assert.Equal(t, os.Stdout, presenter.output)
	assert.Equal(t, os.Stderr, presenter.errorOutput)
	assert.False(t, presenter.quiet)
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name          string
		noColor       string
		skillctlColor string
		expected      ColorMode
	}{
		{"NO_COLOR set", "1", "", ColorNever},
		{"SKILLCTL_COLOR always", "", "always", ColorAlways},
		{"SKILLCTL_COLOR force", "", "force", ColorAlways},
		{"SKILLCTL_COLOR never", "", "never", ColorNever},
		{"SKILLCTL_COLOR off", "", "off", ColorNever},
		{"default", "", "", ColorAuto},
		{"invalid value", "", "sometimes", ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("SKILLCTL_COLOR", tt.skillctlColor)
			assert.Equal(t, tt.expected, detectColorMode())
		})
	}
}

func TestError(t *testing.T) {
	t.Run("with context", func(t *testing.T) {
		p, output, errorOutput := newTestPresenter("")
		p.Error(errors.New("boom"), "Installation failed")

		assert.Contains(t, errorOutput.String(), "[ERROR] Installation failed: boom")
		assert.Empty(t, output.String())
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		p, _, errorOutput := newTestPresenter("")
		p.Error(nil, "context")
		assert.Empty(t, errorOutput.String())
	})

	t.Run("not suppressed by quiet mode", func(t *testing.T) {
		p, _, errorOutput := newTestPresenter("")
		p.SetQuiet(true)
		p.Error(errors.New("boom"), "")
		assert.Contains(t, errorOutput.String(), "boom")
	})
}

func TestMessages(t *testing.T) {
	p, output, _ := newTestPresenter("")

	p.Success("installed")
	p.Warning("already exists")
	p.Info("details")
	p.Section("Skills")

	got := output.String()
	assert.Contains(t, got, "✓ installed")
	assert.Contains(t, got, "⚠ already exists")
	assert.Contains(t, got, "details\n")
	assert.Contains(t, got, "Skills\n------")
}

func TestQuietMode(t *testing.T) {
	p, output, _ := newTestPresenter("")
	p.SetQuiet(true)
	assert.True(t, p.IsQuiet())

	p.Success("installed")
	p.Warning("already exists")
	p.Info("details")
	p.Section("Skills")

	assert.Empty(t, output.String())
}

func TestPrompt(t *testing.T) {
	t.Run("with options", func(t *testing.T) {
		p, output, _ := newTestPresenter("yes\n")
		response := p.Prompt("Overwrite?", "y", "n")

		assert.Equal(t, "yes", response)
		assert.Contains(t, output.String(), "Overwrite? [y/n]: ")
	})

	t.Run("trims whitespace", func(t *testing.T) {
		p, _, _ := newTestPresenter("  y  \n")
		assert.Equal(t, "y", p.Prompt("Overwrite?"))
	})

	t.Run("input error yields empty string", func(t *testing.T) {
		p, _, _ := newTestPresenter("")
		assert.Equal(t, "", p.Prompt("Overwrite?"))
	})
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"yes", "y\n", true},
		{"yes spelled out", "yes\n", true},
		{"no", "n\n", false},
		{"no spelled out", "no\n", false},
		{"uppercase yes", "Y\n", true},
		{"garbage then yes", "maybe\ny\n", true},
		{"closed input declines", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, _ := newTestPresenter(tt.input)
			assert.Equal(t, tt.expected, p.Confirm("Overwrite?"))
		})
	}

	t.Run("reprompts on unrecognized answers", func(t *testing.T) {
		p, output, _ := newTestPresenter("maybe\nn\n")
		assert.False(t, p.Confirm("Overwrite?"))
		assert.Contains(t, output.String(), "Please enter 'y' or 'n'")
	})
}
