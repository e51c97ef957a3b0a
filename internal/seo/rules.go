package seo

import "github.com/hostpicks/hostpicks-backend/internal/domain"

// DefaultRules returns the built-in per-pageType rule set. These seed
// the seo_rules table on first migration; editors can adjust them from
// the admin screen afterwards.
func DefaultRules() []domain.SEORule {
	return []domain.SEORule{
		{
			PageType:            domain.ContentRecommendation,
			TitleTemplate:       "Best {category} of {year} - Top {count} Picks",
			DescriptionTemplate: "Our hand-tested ranking of the best {category} in {year}. Compare pricing, performance and support to find the right fit.",
			Keywords:            []string{"best {category}", "{category} {year}", "top {category}"},
			HeadingTemplates: []string{
				"Why Trust Our {category} Ranking",
				"Top {count} {category} Compared",
				"How We Test {category}",
				"Frequently Asked Questions",
			},
			TitleMin: 30, TitleMax: 60,
			DescriptionMin: 70, DescriptionMax: 160,
		},
		{
			PageType:            domain.ContentReview,
			TitleTemplate:       "{product} Review {year}: Pros, Cons and Pricing",
			DescriptionTemplate: "In-depth {product} review covering performance, pricing and support, based on {days} days of hands-on testing.",
			Keywords:            []string{"{product} review", "{product} pricing", "is {product} worth it"},
			HeadingTemplates: []string{
				"{product} at a Glance",
				"{product} Performance Tests",
				"{product} Pricing Breakdown",
				"Verdict: Who Should Use {product}",
			},
			TitleMin: 30, TitleMax: 60,
			DescriptionMin: 70, DescriptionMax: 160,
		},
		{
			PageType:            domain.ContentComparison,
			TitleTemplate:       "{left} vs {right}: Which Is Better in {year}?",
			DescriptionTemplate: "{left} and {right} compared side by side: pricing, features, performance and support, with a clear winner for each use case.",
			Keywords:            []string{"{left} vs {right}", "{left} alternative", "{right} alternative"},
			HeadingTemplates: []string{
				"{left} vs {right}: Key Differences",
				"Pricing Compared",
				"Performance Compared",
				"Which Should You Pick",
			},
			TitleMin: 30, TitleMax: 60,
			DescriptionMin: 70, DescriptionMax: 160,
		},
		{
			PageType:            domain.ContentTutorial,
			TitleTemplate:       "How to {task}: Step-by-Step Guide ({year})",
			DescriptionTemplate: "Learn how to {task} in {steps} simple steps. Beginner-friendly walkthrough with screenshots and troubleshooting tips.",
			Keywords:            []string{"how to {task}", "{task} guide", "{task} tutorial"},
			HeadingTemplates: []string{
				"What You Need Before You Start",
				"Step-by-Step: {task}",
				"Common Problems and Fixes",
			},
			TitleMin: 30, TitleMax: 65,
			DescriptionMin: 70, DescriptionMax: 160,
		},
		{
			PageType:            domain.ContentResource,
			TitleTemplate:       "{topic}: Complete Resource Guide",
			DescriptionTemplate: "Everything you need to know about {topic}: curated tools, guides and references, updated for {year}.",
			Keywords:            []string{"{topic}", "{topic} resources", "{topic} tools"},
			HeadingTemplates: []string{
				"Essential {topic} Resources",
				"Further Reading",
			},
			TitleMin: 20, TitleMax: 60,
			DescriptionMin: 70, DescriptionMax: 160,
		},
	}
}
