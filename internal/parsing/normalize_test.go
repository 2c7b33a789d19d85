package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillVariations(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single word", "Python", []string{"python"}},
		{"dotted", "Node.js", []string{"node.js", "nodejs"}},
		{"spaced", "Tailwind CSS", []string{"tailwind css", "tailwindcss"}},
		{"hyphenated", "Scikit-learn", []string{"scikit-learn", "scikitlearn"}},
		{"dotted and spaced", ".NET Core", []string{".net core", "net core", ".netcore"}},
		{"symbolic", "C#", []string{"c#"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SkillVariations(tt.input))
		})
	}
}

func TestContainsEither(t *testing.T) {
	assert.True(t, ContainsEither("React", "react"))
	assert.True(t, ContainsEither("React Native", "react"))
	assert.True(t, ContainsEither("go", "Golang"))
	assert.False(t, ContainsEither("Python", "Java"))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", TruncateRunes("abc", 5))
	assert.Equal(t, "ab", TruncateRunes("abc", 2))
	assert.Equal(t, "Zü", TruncateRunes("Zürich", 2))
	assert.Equal(t, "", TruncateRunes("abc", 0))
}

func TestParseSkillList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", []string{}},
		{"whitespace", "   ", []string{}},
		{"single", "React", []string{"React"}},
		{"trims entries", " React ,  Node.js,TypeScript ", []string{"React", "Node.js", "TypeScript"}},
		{"drops empty entries", "Go,,  ,Rust", []string{"Go", "Rust"}},
		{"case-insensitive dedup keeps first", "react, React, REACT, Vue", []string{"react", "Vue"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSkillList(tt.input))
		})
	}
}
