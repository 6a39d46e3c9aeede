package dialog

import (
	"context"
	"fmt"
	"strings"

	"github.com/looplab/fsm"
)

// Questionnaire stages. Transitions are strictly forward; the only way
// back is a full reset, which rebuilds the conversation.
const (
	StageStart     = "start"
	StageQuestion0 = "question_0"
	StageQuestion1 = "question_1"
	StageQuestion2 = "question_2"
	StageAdvised   = "advised"
)

const (
	eventBegin  = "begin"
	eventAnswer = "answer"
)

// Conversation tracks one user's progress through the recommendation
// questionnaire. Answers are write-once per run.
type Conversation struct {
	UserID     int64
	Background string
	Interest   string
	Startup    string

	machine *fsm.FSM
}

// NewConversation builds a conversation in the start stage.
func NewConversation(userID int64) *Conversation {
	machine := fsm.NewFSM(
		StageStart,
		fsm.Events{
			{Name: eventBegin, Src: []string{StageStart}, Dst: StageQuestion0},
			{Name: eventAnswer, Src: []string{StageQuestion0}, Dst: StageQuestion1},
			{Name: eventAnswer, Src: []string{StageQuestion1}, Dst: StageQuestion2},
			{Name: eventAnswer, Src: []string{StageQuestion2}, Dst: StageAdvised},
		},
		fsm.Callbacks{},
	)
	return &Conversation{UserID: userID, machine: machine}
}

// Stage reports the current questionnaire stage.
func (c *Conversation) Stage() string {
	return c.machine.Current()
}

// InDialogue reports whether the conversation expects an answer.
func (c *Conversation) InDialogue() bool {
	return strings.HasPrefix(c.Stage(), "question_")
}

// Begin enters the first question.
func (c *Conversation) Begin(ctx context.Context) error {
	return c.machine.Event(ctx, eventBegin)
}

// Answer stores the reply for the pending question and advances
// exactly one stage.
func (c *Conversation) Answer(ctx context.Context, text string) error {
	switch c.Stage() {
	case StageQuestion0:
		c.Background = text
	case StageQuestion1:
		c.Interest = text
	case StageQuestion2:
		c.Startup = text
	default:
		return fmt.Errorf("no question pending in stage %s", c.Stage())
	}

	return c.machine.Event(ctx, eventAnswer)
}
