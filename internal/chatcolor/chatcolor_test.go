package chatcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text unchanged", "Ruby Sword", "Ruby Sword"},
		{"single color code", "&cRuby", "§cRuby"},
		{"upper-case code is lowered", "&CRuby", "§cRuby"},
		{"format codes", "&l&nBold", "§l§nBold"},
		{"invalid code left alone", "&zRuby", "&zRuby"},
		{"trailing escape left alone", "Ruby&", "Ruby&"},
		{"double escape", "&&a", "&§a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TranslateDefault(tt.input))
		})
	}
}

func TestTranslate_CustomChar(t *testing.T) {
	assert.Equal(t, "§6Gold", Translate('#', "#6Gold"))
	assert.Equal(t, "&6Gold", Translate('#', "&6Gold"))
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "Ruby Sword", Strip("§cRuby §lSword"))
	assert.Equal(t, "Ruby", Strip(TranslateDefault("&4&lRuby")))
	assert.Equal(t, "&cRuby", Strip("&cRuby"))
}
