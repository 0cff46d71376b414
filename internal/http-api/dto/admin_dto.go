package dto

// GameData is one game's slice of the admin bulk view: title, per-value
// rating counts, and the full comment list newest-first.
type GameData struct {
	Title    string            `json:"title"`
	Ratings  RatingBuckets     `json:"ratings"`
	Comments []CommentResponse `json:"comments"`
}

type ProtectedResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}
