package domain

// IncomingMessage is the transport-independent view of one chat message.
type IncomingMessage struct {
	UserID    int64
	ChatID    int64
	MessageID int
	Text      string
}

// Decision is the outcome of the questionnaire classification.
// Slug names the recommended program; Tie means the scores were equal
// (including both zero) and the user should be asked to disambiguate.
type Decision struct {
	Slug string
	Tie  bool
}
