package entity

import "time"

// Archive process status
const (
	ArchiveStatusStored = "STORED"
	ArchiveStatusFailed = "FAILED"
)

// ReportArchive is the audit document written to MongoDB for every
// submitted handover report: the structured message as dispatched plus
// extraction metadata for troubleshooting.
type ReportArchive struct {
	ID            string                 `bson:"_id,omitempty" json:"id"`
	ReportID      string                 `bson:"reportId" json:"reportId"`
	Date          string                 `bson:"date" json:"date"`
	Shift         string                 `bson:"shift" json:"shift"`
	Leader        string                 `bson:"leader" json:"leader"`
	RawMessage    string                 `bson:"rawMessage" json:"rawMessage"`
	Status        string                 `bson:"status" json:"status"`
	ErrorDetail   string                 `bson:"errorDetail,omitempty" json:"errorDetail,omitempty"`
	ExtractedData map[string]interface{} `bson:"extractedData,omitempty" json:"extractedData,omitempty"`
	SubmittedAt   time.Time              `bson:"submittedAt" json:"submittedAt"`
}

// HandoverPayload is the message handed to the WhatsApp bridge after a
// report is stored.
type HandoverPayload struct {
	Text       string    `json:"text"`
	Phone      string    `json:"phone"`
	ScheduleAt time.Time `json:"scheduleAt"`
	CreatedAt  time.Time `json:"createdAt"`
	Status     string    `json:"status"`
}
