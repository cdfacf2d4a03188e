package models

import "time"

// Batch records one response body whose records were stored. Its ID is
// logged with the run, so stored rows can be traced back to their input.
type Batch struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Entity    string    `gorm:"size:16" json:"entity"`
	Source    string    `gorm:"type:text" json:"source"`
	Tweets    int       `json:"tweets"`
	Users     int       `json:"users"`
	CreatedAt time.Time `json:"created_at"`
}
