package dialog

import "sync"

// Store owns all live conversations, one per user. Conversations have
// process lifetime only; a restart discards them.
type Store struct {
	mu            sync.Mutex
	conversations map[int64]*Conversation
}

// NewStore builds an empty conversation store.
func NewStore() *Store {
	return &Store{conversations: map[int64]*Conversation{}}
}

// Get returns the user's conversation, creating one in the start stage
// when the user is seen for the first time.
func (s *Store) Get(userID int64) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	conversation, ok := s.conversations[userID]
	if !ok {
		conversation = NewConversation(userID)
		s.conversations[userID] = conversation
	}
	return conversation
}

// Reset replaces the user's conversation with a fresh one, clearing
// all stored answers.
func (s *Store) Reset(userID int64) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	conversation := NewConversation(userID)
	s.conversations[userID] = conversation
	return conversation
}
