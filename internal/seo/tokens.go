package seo

import (
	"fmt"
	"regexp"
)

// ruleToken matches {key} placeholders in SEO rule templates. This is
// deliberately the single-brace syntax: the content template engine
// uses double-brace {{name}} tokens, and the two vocabularies have
// never been unified.
var ruleToken = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// ReplaceTokens substitutes {key} tokens with values from vars.
// Unmatched tokens are left verbatim.
func ReplaceTokens(template string, vars map[string]any) string {
	return ruleToken.ReplaceAllStringFunc(template, func(token string) string {
		key := token[1 : len(token)-1]
		value, ok := vars[key]
		if !ok {
			return token
		}
		return stringify(value)
	})
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	case float64:
		// JSON numbers arrive as float64; render integers without a
		// trailing ".0".
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
