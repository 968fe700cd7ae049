package models

// DataCategory names a bucket of budget records eligible for retrieval
// when answering a question. Categories are not mutually exclusive; a
// single question may require several.
type DataCategory string

const (
	DataCategoryTransactions DataCategory = "transactions"
	DataCategoryCategories   DataCategory = "categories"
	DataCategoryMonthHistory DataCategory = "monthHistory"
	DataCategoryYearHistory  DataCategory = "yearHistory"
	DataCategoryUserSettings DataCategory = "userSettings"

	// DataCategorySummary is the catch-all fallback meaning "fetch
	// everything" when no specific category matches the question.
	DataCategorySummary DataCategory = "summary"
)

// AllDataCategories returns every concrete category (summary excluded,
// since it expands to the union of the others).
func AllDataCategories() []DataCategory {
	return []DataCategory{
		DataCategoryTransactions,
		DataCategoryCategories,
		DataCategoryMonthHistory,
		DataCategoryYearHistory,
		DataCategoryUserSettings,
	}
}

// BudgetData is the per-request aggregate of fetched budget records
// that gets serialized into the model prompt. Fields are populated
// independently; a nil field means its category was not requested or
// its query failed, never that the user has no data.
//
// The aggregate is built fresh for every question and discarded once
// the answer is generated. It must stay JSON-serializable because it
// is embedded verbatim into the prompt.
type BudgetData struct {
	RecentTransactions   []Transaction          `json:"recentTransactions,omitempty"`
	TransactionStats     []TransactionTypeTotal `json:"transactionStats,omitempty"`
	Categories           []Category             `json:"categories,omitempty"`
	CategorySpending     []CategorySpending     `json:"categorySpending,omitempty"`
	CurrentMonthHistory  []MonthHistory         `json:"currentMonthHistory,omitempty"`
	PreviousMonthHistory []MonthHistory         `json:"previousMonthHistory,omitempty"`
	CurrentYearHistory   []YearHistory          `json:"currentYearHistory,omitempty"`
	PreviousYearHistory  []YearHistory          `json:"previousYearHistory,omitempty"`
	UserSettings         *UserSettings          `json:"userSettings,omitempty"`
}

// IsEmpty reports whether no field of the aggregate was populated.
func (d *BudgetData) IsEmpty() bool {
	return d.RecentTransactions == nil &&
		d.TransactionStats == nil &&
		d.Categories == nil &&
		d.CategorySpending == nil &&
		d.CurrentMonthHistory == nil &&
		d.PreviousMonthHistory == nil &&
		d.CurrentYearHistory == nil &&
		d.PreviousYearHistory == nil &&
		d.UserSettings == nil
}

// BudgetQueryResponse is the terminal output of the RAG pipeline.
// RelevantData is nil when the pipeline failed before completion or
// when the fetched aggregate came back with no populated fields.
type BudgetQueryResponse struct {
	Answer       string      `json:"answer"`
	RelevantData *BudgetData `json:"relevant_data,omitempty"`
}
