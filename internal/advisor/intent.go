package advisor

import (
	"strings"

	"ProgramAdvisor/internal/domain"
)

// Topic is the question category detected in a free-text message.
type Topic int

const (
	// TopicOverview is the default: answer with the program summary.
	TopicOverview Topic = iota
	// TopicCompare redirects the user to the compare command.
	TopicCompare
	// TopicRecommend redirects the user to the questionnaire.
	TopicRecommend
	// TopicTeam answers with the teaching team.
	TopicTeam
	// TopicManager answers with the program supervisor.
	TopicManager
	// TopicAdmission answers with the exam dates.
	TopicAdmission
)

// ProgramNone means no program could be identified in the message.
// The matcher always binds Program to a definite value; callers branch
// on this sentinel instead of guessing.
const ProgramNone = ""

// Intent is the result of matching a free-text message.
type Intent struct {
	Topic   Topic
	Program string
}

// MatchIntent classifies a free-text message. The second return value
// is false when the message contains none of the allow-listed topics
// and should be answered with a clarification prompt.
func MatchIntent(text string) (Intent, bool) {
	text = strings.ToLower(text)

	if !containsAny(text, allowedTopics) {
		return Intent{Program: ProgramNone}, false
	}

	intent := Intent{Topic: TopicOverview, Program: ProgramNone}

	switch {
	case containsAny(text, productProgramMarkers):
		intent.Program = domain.SlugAIProduct
	case containsAny(text, aiProgramMarkers):
		intent.Program = domain.SlugAI
	}

	switch {
	case containsAny(text, compareMarkers):
		intent.Topic = TopicCompare
	case strings.Contains(text, "рекоменд"):
		intent.Topic = TopicRecommend
	case containsAny(text, teamMarkers):
		intent.Topic = TopicTeam
	case containsAny(text, managerMarkers):
		intent.Topic = TopicManager
	case containsAny(text, admissionMarkers):
		intent.Topic = TopicAdmission
	}

	return intent, true
}
