package models

// Subject groups a user's questions. OwnerID never changes after creation;
// every read and write is scoped to it.
type Subject struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"user_id"`
}
