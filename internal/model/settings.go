package model

import (
	"github.com/shopspring/decimal"
)

// SettingsKey is the fixed identifier of the one settings record.
const SettingsKey = "user_settings"

// Theme constants
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Settings is the system-wide singleton consumed by every flow: geofence
// reference point, target defaults, theme, assistant key.
type Settings struct {
	ID            string          `gorm:"primaryKey;type:varchar(32)" json:"id"`
	UserName      string          `gorm:"type:varchar(120)" json:"userName"`
	EmpID         string          `gorm:"type:varchar(40)" json:"empId"`
	StoreName     string          `gorm:"type:varchar(120)" json:"storeName,omitempty"`
	StoreLocation string          `gorm:"type:varchar(120)" json:"storeLocation"`
	Theme         string          `gorm:"type:varchar(10)" json:"theme"`
	BrandWebsite  string          `gorm:"type:varchar(255)" json:"brandWebsite"`
	DemoLink      string          `gorm:"type:varchar(255)" json:"demoLink"`
	TollFree      string          `gorm:"type:varchar(20)" json:"tollFree"`
	AIAPIKey      string          `gorm:"type:varchar(128)" json:"aiApiKey"`
	IsLoggedIn    bool            `json:"isLoggedIn"`
	BrandTarget   decimal.Decimal `gorm:"type:decimal(18,2)" json:"brandTarget"`
	ProfilePhoto  string          `gorm:"type:text" json:"profilePhoto,omitempty"` // data URL
	StoreLat      *float64        `json:"storeLat,omitempty"`
	StoreLng      *float64        `json:"storeLng,omitempty"`
}

// DefaultSettings is the record bootstrapped on first run.
func DefaultSettings() Settings {
	return Settings{
		ID:          SettingsKey,
		Theme:       ThemeDark,
		IsLoggedIn:  false,
		BrandTarget: decimal.NewFromInt(500000),
	}
}
