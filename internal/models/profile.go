package models

import "time"

// Profile holds the account-level metadata the directory shows for a family
type Profile struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	City          string    `json:"city"`
	CommunityName string    `json:"community_name"`
	IsAdmin       bool      `json:"is_admin"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
