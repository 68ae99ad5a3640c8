package models

import "time"

// Attachment describes metadata for a file linked to a question. The payload
// itself lives in object storage under StorageKey; the database row only
// records ownership and naming.
type Attachment struct {
	ID         int64     `json:"id"`
	QuestionID int64     `json:"question_id"`
	FileName   string    `json:"file_name"`
	StorageKey string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
