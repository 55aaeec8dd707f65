package model

// Todo belongs to exactly one user; the owning user id is set at creation
// and never changes afterwards.
type Todo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	UserID      string `json:"owner"`
	Ctime       int64  `json:"ctime"`
	Mtime       int64  `json:"mtime"`
}
