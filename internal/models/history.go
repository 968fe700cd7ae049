package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthHistory holds per-day income/expense totals for one calendar
// month. Rows are upserted as transactions are recorded so trend
// queries never need to re-aggregate the transactions table.
type MonthHistory struct {
	ID      uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_month_history_user_day" json:"user_id"`
	Day     int             `gorm:"not null;uniqueIndex:idx_month_history_user_day" json:"day"`
	Month   int             `gorm:"not null;uniqueIndex:idx_month_history_user_day" json:"month"`
	Year    int             `gorm:"not null;uniqueIndex:idx_month_history_user_day" json:"year"`
	Income  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"income"`
	Expense decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"expense"`
}

func (h *MonthHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for MonthHistory
func (h *MonthHistory) TableName() string {
	return "month_history"
}

// YearHistory holds per-month income/expense totals for one calendar
// year, maintained alongside MonthHistory.
type YearHistory struct {
	ID      uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_year_history_user_month" json:"user_id"`
	Month   int             `gorm:"not null;uniqueIndex:idx_year_history_user_month" json:"month"`
	Year    int             `gorm:"not null;uniqueIndex:idx_year_history_user_month" json:"year"`
	Income  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"income"`
	Expense decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"expense"`
}

func (h *YearHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for YearHistory
func (h *YearHistory) TableName() string {
	return "year_history"
}

// PreviousMonth returns the calendar month/year pair immediately before
// the given one, rolling the year back when the month is January.
func PreviousMonth(month, year int) (int, int) {
	if month == 1 {
		return 12, year - 1
	}
	return month - 1, year
}

// CurrentPeriod returns the calendar month and year for the given time.
func CurrentPeriod(now time.Time) (month, year int) {
	return int(now.Month()), now.Year()
}
