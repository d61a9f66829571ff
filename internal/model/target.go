package model

import (
	"github.com/shopspring/decimal"
)

// Target holds the six performance figures for one calendar date. Same
// one-record-per-date invariant as Attendance, but writes always carry the
// full field set so the repository replaces rather than merges.
type Target struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Date            string          `gorm:"type:varchar(10);not null;index:idx_targets_date" json:"date"` // YYYY-MM-DD
	DayTarget       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"dayTarget"`
	DayAchievement  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"dayAchievement"`
	WeekTarget      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"weekTarget"`
	WeekAchievement decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"weekAchievement"`
	EOLTarget       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"eolTarget"`
	EOLAchieve      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"eolAchieve"`
}
