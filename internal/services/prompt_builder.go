package services

import (
	"encoding/json"
	"fmt"

	"budget-assistant/internal/models"
)

// budgetPromptTemplate is the instruction wrapper for data-grounded
// answers. It is the only mechanism constraining the model to the
// user's actual financial facts, so it pins the persona, forbids
// answering beyond the supplied data, and asks the model to admit
// insufficiency instead of fabricating.
const budgetPromptTemplate = `You are a helpful budget assistant that provides personalized financial insights based on user data.
Answer the following question using ONLY the provided data. If you cannot answer based on the data, say so politely.

USER BUDGET DATA:
%s

USER QUESTION:
%s

Provide a helpful, concise response. Include specific numbers from the data when relevant.
Don't mention that you're using "the provided data" - just answer naturally as if you have direct access to their budget information.`

// BuildBudgetPrompt serializes the fetched aggregate and embeds it,
// together with the verbatim question, into the instruction template.
func BuildBudgetPrompt(query string, data *models.BudgetData) (string, error) {
	contextData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize budget data: %w", err)
	}

	return fmt.Sprintf(budgetPromptTemplate, contextData, query), nil
}
