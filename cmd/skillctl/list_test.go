package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/skillctl/skillctl/pkg/registry"
	"github.com/stretchr/testify/assert"
)

func TestListScopes(t *testing.T) {
	tests := []struct {
		name     string
		config   *ListConfig
		expected []registry.Scope
	}{
		{"default lists both", &ListConfig{}, []registry.Scope{registry.ScopePersonal, registry.ScopeProject}},
		{"personal only", &ListConfig{Personal: true}, []registry.Scope{registry.ScopePersonal}},
		{"project only", &ListConfig{Project: true}, []registry.Scope{registry.ScopeProject}},
		{"both flags list both", &ListConfig{Personal: true, Project: true}, []registry.Scope{registry.ScopePersonal, registry.ScopeProject}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, listScopes(tt.config))
		})
	}
}

func TestTruncateDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"short stays intact", "Reports the weather", "Reports the weather"},
		{"exactly at the limit", strings.Repeat("a", 60), strings.Repeat("a", 60)},
		{"long is truncated with ellipsis", strings.Repeat("a", 61), strings.Repeat("a", 57) + "..."},
		{"multibyte characters are not split", strings.Repeat("天", 61), strings.Repeat("天", 57) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateDescription(tt.input, 60)
			assert.Equal(t, tt.expected, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
