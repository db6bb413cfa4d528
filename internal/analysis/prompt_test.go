package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name      string
		mbti      string
		locale    string
		wantLabel string
	}{
		{"traditional chinese", "INTJ", "zh-TW", "繁體中文"},
		{"simplified chinese", "ENFP", "zh-CN", "簡體中文"},
		{"english", "ISTP", "en", "English"},
		{"unknown locale falls back", "INFJ", "de", "繁體中文"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPrompt(tt.mbti, tt.locale)
			assert.Contains(t, got, tt.mbti)
			assert.Contains(t, got, "written in "+tt.wantLabel)
			for _, key := range []string{`"literal"`, `"signals"`, `"mbti_lens"`, `"likely_intentions"`, `"unspoken_needs"`, `"misunderstanding_risks"`, `"summary"`} {
				assert.Contains(t, got, key)
			}
			assert.Contains(t, got, "at least 2 items")
			assert.NotContains(t, got, "%!")
		})
	}
}

func TestUserPrompt(t *testing.T) {
	plain := UserPrompt("see you at 3", false)
	assert.True(t, strings.HasSuffix(plain, "\n\nsee you at 3"))
	assert.NotContains(t, plain, "JSON")

	withJSON := UserPrompt("see you at 3", true)
	assert.Contains(t, withJSON, "JSON")
	assert.True(t, strings.HasSuffix(withJSON, "see you at 3"))
}
