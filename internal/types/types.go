package types

const ContextUserKey = "user"

type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// ScoreResponse is a single leaderboard entry as returned to clients.
type ScoreResponse struct {
	ID         uint   `json:"id"`
	UserName   string `json:"userName"`
	Difficulty string `json:"difficulty"`
	Points     int    `json:"points"`
	Date       string `json:"date"`
}
