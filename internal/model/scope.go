package model

// Scope identifies the authenticated caller. UserID is the vendor account id that owns
// configurations, jobs and artifacts.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
