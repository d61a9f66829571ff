package model

// BackupDocument is the transit shape of a full export: every collection in
// full, keyed by collection name, settings as a one-element array.
type BackupDocument struct {
	Sales      []BackupSale `json:"sales"`
	Attendance []Attendance `json:"attendance"`
	Targets    []Target     `json:"targets"`
	CRM        []CRMIssue   `json:"crm"`
	Settings   []Settings   `json:"settings"`
}

// BackupSale is a Sale in transit. The two sidecar fields carry the bill
// image through the text format; they exist only in this document, never in
// the live record.
type BackupSale struct {
	Sale
	BillImageBase64 string `json:"billImageBase64,omitempty"`
	BillImageType   string `json:"billImageType,omitempty"`
}
