package services

import (
	"strings"

	"budget-assistant/internal/models"
)

// classifierVocabulary maps each data category to the trigger phrases
// that select it. Matching is plain substring containment on the
// lowercased question: deliberately coarse and overinclusive, since a
// false positive only adds harmless extra context to the prompt while
// a false negative would silently omit data the user asked about.
var classifierVocabulary = map[models.DataCategory][]string{
	models.DataCategoryTransactions: {"transaction", "spend", "spent", "purchase", "bought"},
	models.DataCategoryCategories:   {"category", "breakdown", "spent on"},
	models.DataCategoryMonthHistory: {"monthly", "this month", "last month"},
	models.DataCategoryYearHistory:  {"yearly", "this year", "annual"},
	models.DataCategoryUserSettings: {"currency", "settings"},
}

// ClassifyQuery maps a free-text budget question to the set of data
// categories needed to answer it. When nothing matches it falls back
// to the summary category, meaning "fetch everything".
func ClassifyQuery(query string) []models.DataCategory {
	lowered := strings.ToLower(query)

	var matched []models.DataCategory
	for _, category := range models.AllDataCategories() {
		for _, phrase := range classifierVocabulary[category] {
			if strings.Contains(lowered, phrase) {
				matched = append(matched, category)
				break
			}
		}
	}

	if len(matched) == 0 {
		return []models.DataCategory{models.DataCategorySummary}
	}

	return matched
}
