package model

import (
	"github.com/shopspring/decimal"
)

// Sale is one logged sale entry. The bill image lives inline in the durable
// record (the Go equivalent of a typed blob) but is never part of list JSON;
// a dedicated endpoint serves the bytes with their recorded MIME type.
type Sale struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Date           string          `gorm:"type:varchar(10);not null;index:idx_sales_date" json:"date"` // YYYY-MM-DD
	Timestamp      int64           `gorm:"not null" json:"timestamp"`                                  // epoch milliseconds, recency ordering
	ProductName    string          `gorm:"type:varchar(120);not null" json:"productName"`
	Quantity       int             `gorm:"not null" json:"quantity"`
	Price          decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"price"`
	BillImage      []byte          `gorm:"type:blob" json:"-"`
	BillImageMIME  string          `gorm:"type:varchar(64)" json:"-"`
	BillID         string          `gorm:"type:varchar(64)" json:"billId,omitempty"`
	BillNumber     string          `gorm:"type:varchar(64)" json:"billNumber,omitempty"`
	CustomerNumber string          `gorm:"type:varchar(16)" json:"customerNumber,omitempty"` // 10-digit phone
}

// Value is quantity x unit price.
func (s Sale) Value() decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// HasBillImage reports whether a bill photo is attached.
func (s Sale) HasBillImage() bool {
	return len(s.BillImage) > 0
}
