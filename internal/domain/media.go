package domain

// UploadAck is what the upload placeholders return instead of calling the API.
type UploadAck struct {
	Status  string `json:"status"`
	Caption string `json:"caption"`
}

// PollOption is one entry of a direct-message poll.
type PollOption struct {
	Text       string `json:"text"`
	ViewerVote bool   `json:"viewer_vote"`
	ID         string `json:"id"`
	Count      int    `json:"count"`
}

// Poll is serialised as JSON into the poll form field.
type Poll struct {
	Question      string       `json:"question"`
	ViewerCanVote bool         `json:"viewer_can_vote"`
	PollOptions   []PollOption `json:"poll_options"`
	PollVoters    []string     `json:"poll_voters"`
	PollType      string       `json:"poll_type"`
}
