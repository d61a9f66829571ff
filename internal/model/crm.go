package model

// CRM category constants
const (
	CRMInstallation = "Installation"
	CRMComplaint    = "Complaint"
	CRMStockIssue   = "Stock Issue"
)

// CRM status constants
const (
	CRMOpen   = "Open"
	CRMClosed = "Closed"
)

// CRMIssue is a customer issue logged by the store employee. Status is the
// only field that mutates after creation.
type CRMIssue struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Date          string `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	Timestamp     int64  `gorm:"not null" json:"timestamp"`             // epoch milliseconds
	Category      string `gorm:"type:varchar(20);not null" json:"category"`
	CustomerName  string `gorm:"type:varchar(120);not null" json:"customerName"`
	ContactNumber string `gorm:"type:varchar(16);not null" json:"contactNumber"` // 10-digit phone
	Product       string `gorm:"type:varchar(120)" json:"product"`
	Message       string `gorm:"type:text" json:"message"`
	Status        string `gorm:"type:varchar(10);not null;index:idx_crm_status" json:"status"`
}

// TableName keeps the collection name from the durable storage layout.
func (CRMIssue) TableName() string {
	return "crm"
}
