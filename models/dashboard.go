package models

// EnquiryStats is the enquiry dashboard payload. Each count comes from its own
// query, so the numbers are not guaranteed to describe the same instant.
type EnquiryStats struct {
	Total           int64 `json:"total"`
	ThisMonth       int64 `json:"thisMonth"`
	ThisWeek        int64 `json:"thisWeek"`
	Converted       int64 `json:"converted"`
	PendingFollowup int64 `json:"pendingFollowup"`
}

type PickupStats struct {
	Total     int64 `json:"total"`
	Scheduled int64 `json:"scheduled"`
	Assigned  int64 `json:"assigned"`
	Collected int64 `json:"collected"`
	Received  int64 `json:"received"`
}
