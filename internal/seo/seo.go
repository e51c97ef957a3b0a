// Package seo generates SEO strings and structured data from
// per-pageType rule records. Rule templates use single-brace {key}
// tokens with the same unmatched-token passthrough policy as the
// content template engine.
package seo

import (
	"fmt"
	"strings"

	"github.com/hostpicks/hostpicks-backend/internal/domain"
)

// Result is the generated SEO string set for a page.
type Result struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Canonical   string   `json:"canonical"`
}

// Validation reports every budget violation found, not just the first.
type Validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Generate fills the rule's title/description/keyword templates from
// vars. canonicalBase, when set, yields the canonical URL from the
// "slug" var.
func Generate(rule *domain.SEORule, vars map[string]any, canonicalBase string) *Result {
	result := &Result{
		Title:       ReplaceTokens(rule.TitleTemplate, vars),
		Description: ReplaceTokens(rule.DescriptionTemplate, vars),
		Keywords:    make([]string, len(rule.Keywords)),
	}
	for i, kw := range rule.Keywords {
		result.Keywords[i] = ReplaceTokens(kw, vars)
	}

	if canonicalBase != "" {
		if slug, ok := vars["slug"].(string); ok && slug != "" {
			result.Canonical = strings.TrimRight(canonicalBase, "/") + "/" + slug
		}
	}
	return result
}

// HeadingSuggestions fills the rule's H2 templates from vars.
func HeadingSuggestions(rule *domain.SEORule, vars map[string]any) []string {
	headings := make([]string, len(rule.HeadingTemplates))
	for i, tpl := range rule.HeadingTemplates {
		headings[i] = ReplaceTokens(tpl, vars)
	}
	return headings
}

// Validate checks title and description lengths against the rule's
// character budgets and collects every violation.
func Validate(rule *domain.SEORule, title, description string) *Validation {
	var errs []string

	titleLen := len([]rune(title))
	if titleLen < rule.TitleMin {
		errs = append(errs, fmt.Sprintf("title too short: %d chars, minimum %d", titleLen, rule.TitleMin))
	}
	if titleLen > rule.TitleMax {
		errs = append(errs, fmt.Sprintf("title too long: %d chars, maximum %d", titleLen, rule.TitleMax))
	}

	descLen := len([]rune(description))
	if descLen < rule.DescriptionMin {
		errs = append(errs, fmt.Sprintf("description too short: %d chars, minimum %d", descLen, rule.DescriptionMin))
	}
	if descLen > rule.DescriptionMax {
		errs = append(errs, fmt.Sprintf("description too long: %d chars, maximum %d", descLen, rule.DescriptionMax))
	}

	return &Validation{Valid: len(errs) == 0, Errors: errs}
}
