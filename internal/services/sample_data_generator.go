package services

import (
	"fmt"
	"math/rand"
	"time"

	"budget-assistant/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// categoryProfile describes one spending category and the amount range
// its generated transactions fall into.
type categoryProfile struct {
	name     string
	icon     string
	min, max float64
}

var expenseProfiles = []categoryProfile{
	{"Groceries", "🛒", 15.00, 250.00},
	{"Dining", "🍔", 8.00, 120.00},
	{"Transportation", "🚗", 10.00, 80.00},
	{"Shopping", "🛍️", 25.00, 450.00},
	{"Entertainment", "🎬", 10.00, 60.00},
	{"Bills & Utilities", "💡", 50.00, 250.00},
	{"Healthcare", "🏥", 20.00, 300.00},
	{"Travel", "✈️", 100.00, 800.00},
}

var incomeProfiles = []categoryProfile{
	{"Salary", "💰", 2500.00, 4500.00},
	{"Freelance", "💼", 200.00, 1500.00},
}

type sampleDataGenerator struct {
	rng *rand.Rand
}

// NewSampleDataGenerator creates a generator for development fixtures
func NewSampleDataGenerator() SampleDataGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &sampleDataGenerator{
		rng: rand.New(source),
	}
}

// DefaultCategories returns the starter category set every new user gets
func (g *sampleDataGenerator) DefaultCategories(userID uuid.UUID) []models.Category {
	categories := make([]models.Category, 0, len(expenseProfiles)+len(incomeProfiles))
	for _, profile := range expenseProfiles {
		categories = append(categories, models.Category{
			UserID: userID,
			Name:   profile.name,
			Icon:   profile.icon,
			Type:   models.TransactionTypeExpense,
		})
	}
	for _, profile := range incomeProfiles {
		categories = append(categories, models.Category{
			UserID: userID,
			Name:   profile.name,
			Icon:   profile.icon,
			Type:   models.TransactionTypeIncome,
		})
	}
	return categories
}

// GenerateTransactions generates a realistic transaction stream
// covering the given number of months back from today. Every month
// gets one salary deposit plus perMonth random expenses.
func (g *sampleDataGenerator) GenerateTransactions(userID uuid.UUID, months, perMonth int) []models.Transaction {
	transactions := make([]models.Transaction, 0, months*(perMonth+1))
	now := time.Now().UTC()

	salary := incomeProfiles[0]
	salaryAmount := decimal.NewFromFloat(g.amountIn(salary)).Round(2)

	for m := 0; m < months; m++ {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -m, 0)

		transactions = append(transactions, models.Transaction{
			UserID:       userID,
			Amount:       salaryAmount,
			Description:  "Direct Deposit - " + gofakeit.Company(),
			Date:         monthStart.AddDate(0, 0, g.rng.Intn(3)),
			Type:         models.TransactionTypeIncome,
			Category:     salary.name,
			CategoryIcon: salary.icon,
		})

		for i := 0; i < perMonth; i++ {
			profile := expenseProfiles[g.rng.Intn(len(expenseProfiles))]
			day := g.rng.Intn(daysInMonth(monthStart)) // zero-based offset from the 1st

			transactions = append(transactions, models.Transaction{
				UserID:       userID,
				Amount:       decimal.NewFromFloat(g.amountIn(profile)).Round(2),
				Description:  fmt.Sprintf("%s at %s", profile.name, gofakeit.Company()),
				Date:         monthStart.AddDate(0, 0, day),
				Type:         models.TransactionTypeExpense,
				Category:     profile.name,
				CategoryIcon: profile.icon,
			})
		}
	}

	return transactions
}

// BuildHistory aggregates transactions into the per-day and per-month
// rollup rows the history tables hold.
func (g *sampleDataGenerator) BuildHistory(userID uuid.UUID, transactions []models.Transaction) ([]models.MonthHistory, []models.YearHistory) {
	type dayKey struct {
		day, month, year int
	}
	type monthKey struct {
		month, year int
	}

	dayTotals := make(map[dayKey]*models.MonthHistory)
	monthTotals := make(map[monthKey]*models.YearHistory)

	for _, txn := range transactions {
		dk := dayKey{txn.Date.Day(), int(txn.Date.Month()), txn.Date.Year()}
		mk := monthKey{int(txn.Date.Month()), txn.Date.Year()}

		if dayTotals[dk] == nil {
			dayTotals[dk] = &models.MonthHistory{
				UserID: userID,
				Day:    dk.day,
				Month:  dk.month,
				Year:   dk.year,
			}
		}
		if monthTotals[mk] == nil {
			monthTotals[mk] = &models.YearHistory{
				UserID: userID,
				Month:  mk.month,
				Year:   mk.year,
			}
		}

		if txn.IsIncome() {
			dayTotals[dk].Income = dayTotals[dk].Income.Add(txn.Amount)
			monthTotals[mk].Income = monthTotals[mk].Income.Add(txn.Amount)
		} else {
			dayTotals[dk].Expense = dayTotals[dk].Expense.Add(txn.Amount)
			monthTotals[mk].Expense = monthTotals[mk].Expense.Add(txn.Amount)
		}
	}

	monthHistory := make([]models.MonthHistory, 0, len(dayTotals))
	for _, row := range dayTotals {
		monthHistory = append(monthHistory, *row)
	}

	yearHistory := make([]models.YearHistory, 0, len(monthTotals))
	for _, row := range monthTotals {
		yearHistory = append(yearHistory, *row)
	}

	return monthHistory, yearHistory
}

func (g *sampleDataGenerator) amountIn(profile categoryProfile) float64 {
	return profile.min + g.rng.Float64()*(profile.max-profile.min)
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
