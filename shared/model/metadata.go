package model

import "time"

// Metadata carries the audit columns shared by every table. Timestamps are
// set by the database defaults, only the actor columns are written on insert.
type Metadata struct {
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}
