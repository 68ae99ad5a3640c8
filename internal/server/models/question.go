package models

// Question belongs to a subject and carries no user reference of its own:
// its effective owner is the owner of the parent subject, so authorization
// always joins through subjects.
type Question struct {
	ID        int64  `json:"id"`
	SubjectID int64  `json:"subject_id"`
	Title     string `json:"title"`
	Answer    string `json:"answer"`
	IsLearned bool   `json:"is_learned"`
}
