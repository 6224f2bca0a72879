package domain

import "time"

// Lead is a stored contact record owned by exactly one user. Every read,
// update and delete is filtered by OwnerID — a lead is invisible to any
// non-owner.
type Lead struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	OwnerID         uint      `json:"owner_id" gorm:"index;not null"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Company         string    `json:"company"`
	Note            string    `json:"note"`
	DateLastUpdated time.Time `json:"date_last_updated"`
}
