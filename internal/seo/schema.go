package seo

import "github.com/hostpicks/hostpicks-backend/internal/domain"

// Schema is a schema.org JSON-LD object. Shapes differ per pageType,
// so the value is an open map serialized as-is.
type Schema map[string]any

// GenerateSchema builds the JSON-LD object for a page. Recommendation
// pages become an ItemList, reviews a Review, tutorials a HowTo and
// everything else a WebPage with an optional FAQPage block.
func GenerateSchema(pageType domain.ContentType, vars map[string]any, url string) Schema {
	switch pageType {
	case domain.ContentRecommendation:
		return itemListSchema(vars, url)
	case domain.ContentReview:
		return reviewSchema(vars, url)
	case domain.ContentTutorial:
		return howToSchema(vars, url)
	default:
		return webPageSchema(vars, url)
	}
}

func itemListSchema(vars map[string]any, url string) Schema {
	schema := Schema{
		"@context": "https://schema.org",
		"@type":    "ItemList",
		"url":      url,
		"name":     stringify(vars["title"]),
	}

	items, ok := vars["items"].([]any)
	if !ok {
		return schema
	}
	elements := make([]any, 0, len(items))
	for i, item := range items {
		entry := Schema{
			"@type":    "ListItem",
			"position": i + 1,
		}
		switch v := item.(type) {
		case string:
			entry["name"] = v
		case map[string]any:
			entry["name"] = stringify(v["name"])
			if itemURL, ok := v["url"].(string); ok {
				entry["url"] = itemURL
			}
		}
		elements = append(elements, entry)
	}
	schema["numberOfItems"] = len(elements)
	schema["itemListElement"] = elements
	return schema
}

func reviewSchema(vars map[string]any, url string) Schema {
	schema := Schema{
		"@context": "https://schema.org",
		"@type":    "Review",
		"url":      url,
		"itemReviewed": Schema{
			"@type": "Product",
			"name":  stringify(vars["product"]),
		},
		"author": Schema{
			"@type": "Organization",
			"name":  stringify(vars["author"]),
		},
	}
	if rating, ok := vars["rating"]; ok {
		schema["reviewRating"] = Schema{
			"@type":       "Rating",
			"ratingValue": stringify(rating),
			"bestRating":  "5",
		}
	}
	return schema
}

func howToSchema(vars map[string]any, url string) Schema {
	schema := Schema{
		"@context": "https://schema.org",
		"@type":    "HowTo",
		"url":      url,
		"name":     stringify(vars["title"]),
	}

	steps, ok := vars["steps"].([]any)
	if !ok {
		return schema
	}
	howToSteps := make([]any, 0, len(steps))
	for _, step := range steps {
		entry := Schema{"@type": "HowToStep"}
		switch v := step.(type) {
		case string:
			entry["text"] = v
		case map[string]any:
			entry["name"] = stringify(v["name"])
			entry["text"] = stringify(v["text"])
		}
		howToSteps = append(howToSteps, entry)
	}
	schema["step"] = howToSteps
	return schema
}

func webPageSchema(vars map[string]any, url string) Schema {
	schema := Schema{
		"@context":    "https://schema.org",
		"@type":       "WebPage",
		"url":         url,
		"name":        stringify(vars["title"]),
		"description": stringify(vars["description"]),
	}

	faqs, ok := vars["faqs"].([]any)
	if !ok || len(faqs) == 0 {
		return schema
	}
	// Pages carrying FAQ entries upgrade to FAQPage.
	schema["@type"] = "FAQPage"
	entities := make([]any, 0, len(faqs))
	for _, faq := range faqs {
		entry, ok := faq.(map[string]any)
		if !ok {
			continue
		}
		entities = append(entities, Schema{
			"@type": "Question",
			"name":  stringify(entry["question"]),
			"acceptedAnswer": Schema{
				"@type": "Answer",
				"text":  stringify(entry["answer"]),
			},
		})
	}
	schema["mainEntity"] = entities
	return schema
}
