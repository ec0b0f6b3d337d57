package dashboard

// OrgSnapshot partitions every active employee into exactly one of Present,
// HalfDay, OnLeave or Absent. Late is the subset of Present that arrived late.
type OrgSnapshot struct {
	Date           string `json:"date"` // YYYY-MM-DD
	Present        int    `json:"present"`
	Late           int    `json:"late"`
	HalfDay        int    `json:"half_day"`
	OnLeave        int    `json:"on_leave"`
	Absent         int    `json:"absent"`
	TotalEmployees int    `json:"total_employees"`
}
