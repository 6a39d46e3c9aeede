package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"ProgramAdvisor/internal/advisor"
	"ProgramAdvisor/internal/dialog"
	"ProgramAdvisor/internal/domain"
	"ProgramAdvisor/internal/infrastructure/storage"
	"ProgramAdvisor/internal/ports"
)

// BotDeps wires the stores and the chat transport into the router.
type BotDeps struct {
	Library   *storage.Library
	States    *dialog.Store
	Messenger ports.Messenger
	Logger    *slog.Logger
}

// Bot routes incoming chat messages: commands, the questionnaire, and
// free-text questions. Every path ends in a user-facing reply.
type Bot struct {
	library   *storage.Library
	states    *dialog.Store
	messenger ports.Messenger
	logger    *slog.Logger
}

// NewBot constructs the message router.
func NewBot(deps BotDeps) *Bot {
	return &Bot{
		library:   deps.Library,
		states:    deps.States,
		messenger: deps.Messenger,
		logger:    deps.Logger,
	}
}

// HandleMessage dispatches one incoming message. The returned error is
// for operator logging only; the user always receives a reply first.
func (b *Bot) HandleMessage(ctx context.Context, msg domain.IncomingMessage) error {
	text := strings.TrimSpace(msg.Text)

	switch {
	case text == "/start":
		return b.handleStart(ctx, msg)
	case text == "/help":
		return b.handleHelp(ctx, msg)
	case text == "/compare" || text == buttonCompare:
		return b.handleCompare(ctx, msg)
	case text == "/recommend" || text == buttonRecommend:
		return b.handleRecommend(ctx, msg)
	}

	if conversation := b.states.Get(msg.UserID); conversation.InDialogue() {
		return b.handleAnswer(ctx, msg, conversation)
	}

	return b.handleFreeText(ctx, msg, text)
}

func (b *Bot) handleStart(ctx context.Context, msg domain.IncomingMessage) error {
	b.states.Reset(msg.UserID)
	return b.messenger.SendMessage(ctx, msg.ChatID, welcomeText)
}

func (b *Bot) handleHelp(ctx context.Context, msg domain.IncomingMessage) error {
	return b.messenger.SendKeyboard(ctx, msg.ChatID, helpText, []string{buttonCompare, buttonRecommend})
}

func (b *Bot) handleCompare(ctx context.Context, msg domain.IncomingMessage) error {
	ai, aiOK := b.library.Get(domain.RecordKey(domain.SlugAI))
	aiProduct, productOK := b.library.Get(domain.RecordKey(domain.SlugAIProduct))

	if !aiOK && !productOK {
		return b.messenger.SendMessage(ctx, msg.ChatID, dataMissingText)
	}

	return b.messenger.SendMessage(ctx, msg.ChatID, renderCompare(ai, aiProduct))
}

func (b *Bot) handleRecommend(ctx context.Context, msg domain.IncomingMessage) error {
	conversation := b.states.Reset(msg.UserID)
	if err := conversation.Begin(ctx); err != nil {
		return fmt.Errorf("begin questionnaire for user %d: %w", msg.UserID, err)
	}

	if err := b.messenger.SendMessage(ctx, msg.ChatID, questionBackground); err != nil {
		return err
	}
	return b.messenger.SendMessage(ctx, msg.ChatID, questionOneAnswer)
}

func (b *Bot) handleAnswer(ctx context.Context, msg domain.IncomingMessage, conversation *dialog.Conversation) error {
	if err := conversation.Answer(ctx, strings.ToLower(strings.TrimSpace(msg.Text))); err != nil {
		return fmt.Errorf("record answer for user %d: %w", msg.UserID, err)
	}

	switch conversation.Stage() {
	case dialog.StageQuestion1:
		return b.messenger.SendMessage(ctx, msg.ChatID, questionInterest)
	case dialog.StageQuestion2:
		return b.messenger.SendMessage(ctx, msg.ChatID, questionStartup)
	case dialog.StageAdvised:
		return b.sendRecommendation(ctx, msg, conversation)
	}

	return nil
}

func (b *Bot) sendRecommendation(ctx context.Context, msg domain.IncomingMessage, conversation *dialog.Conversation) error {
	decision := advisor.Classify(conversation.Background, conversation.Interest, conversation.Startup)
	if decision.Tie {
		return b.messenger.SendMessage(ctx, msg.ChatID, tieText)
	}

	record, ok := b.library.Get(domain.RecordKey(decision.Slug))
	if !ok {
		b.logger.Warn("recommended program has no record", "slug", decision.Slug)
		return b.messenger.SendMessage(ctx, msg.ChatID, dataMissingText)
	}

	if err := b.messenger.SendMessage(ctx, msg.ChatID, renderRecommendation(record)); err != nil {
		return err
	}
	return b.messenger.SendMessage(ctx, msg.ChatID, renderCourses(record.Slug))
}

func (b *Bot) handleFreeText(ctx context.Context, msg domain.IncomingMessage, text string) error {
	intent, ok := advisor.MatchIntent(text)
	if !ok {
		if err := b.messenger.Reply(ctx, msg.ChatID, msg.MessageID, offTopicText); err != nil {
			return err
		}
		return b.messenger.Reply(ctx, msg.ChatID, msg.MessageID, clarifyText)
	}

	switch intent.Topic {
	case advisor.TopicCompare:
		return b.messenger.SendMessage(ctx, msg.ChatID, useCompareText)
	case advisor.TopicRecommend:
		return b.messenger.SendMessage(ctx, msg.ChatID, useRecommendText)
	case advisor.TopicTeam:
		return b.withProgram(ctx, msg, intent, renderTeam)
	case advisor.TopicManager:
		return b.withProgram(ctx, msg, intent, renderManager)
	case advisor.TopicAdmission:
		return b.withProgram(ctx, msg, intent, renderExamDates)
	default:
		return b.withProgram(ctx, msg, intent, renderOverview)
	}
}

// withProgram resolves the intent's program record and replies with
// the rendered answer, degrading to a clarification or a data-missing
// message when the program is unidentified or not loaded.
func (b *Bot) withProgram(ctx context.Context, msg domain.IncomingMessage, intent advisor.Intent, render func(domain.ProgramRecord) string) error {
	if intent.Program == advisor.ProgramNone {
		return b.messenger.SendMessage(ctx, msg.ChatID, whichProgramText)
	}

	record, ok := b.library.Get(domain.RecordKey(intent.Program))
	if !ok {
		b.logger.Warn("program record not loaded", "slug", intent.Program)
		return b.messenger.SendMessage(ctx, msg.ChatID, dataMissingText)
	}

	return b.messenger.SendMessage(ctx, msg.ChatID, render(record))
}
