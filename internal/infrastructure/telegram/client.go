package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ProgramAdvisor/internal/ports"
)

const defaultAPIBase = "https://api.telegram.org"

// Update is one entry of the getUpdates result.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

// Message is an incoming chat message.
type Message struct {
	MessageID int    `json:"message_id"`
	From      *User  `json:"from"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

// User identifies the message sender.
type User struct {
	ID int64 `json:"id"`
}

// Chat identifies the conversation the message belongs to.
type Chat struct {
	ID int64 `json:"id"`
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

type replyKeyboard struct {
	Keyboard       [][]keyboardButton `json:"keyboard"`
	ResizeKeyboard bool               `json:"resize_keyboard"`
}

type keyboardButton struct {
	Text string `json:"text"`
}

// Client talks to the Telegram Bot API over plain HTTP: long polling
// for updates plus Markdown message delivery.
type Client struct {
	botToken    string
	apiBase     string
	pollTimeout time.Duration
	client      *http.Client
}

var _ ports.Messenger = (*Client)(nil)

// NewClient registers the bot token; pollTimeout bounds getUpdates.
func NewClient(botToken string, pollTimeout time.Duration) *Client {
	if pollTimeout <= 0 {
		pollTimeout = 30 * time.Second
	}
	return &Client{
		botToken:    botToken,
		apiBase:     defaultAPIBase,
		pollTimeout: pollTimeout,
		client:      &http.Client{Timeout: pollTimeout + 10*time.Second},
	}
}

// GetUpdates long-polls for updates starting at offset.
func (c *Client) GetUpdates(ctx context.Context, offset int64) ([]Update, error) {
	form := url.Values{}
	form.Set("offset", strconv.FormatInt(offset, 10))
	form.Set("timeout", strconv.Itoa(int(c.pollTimeout.Seconds())))

	raw, err := c.call(ctx, "getUpdates", form)
	if err != nil {
		return nil, err
	}

	var updates []Update
	if err := json.Unmarshal(raw, &updates); err != nil {
		return nil, fmt.Errorf("decode updates: %w", err)
	}

	return updates, nil
}

// SendMessage posts a Markdown message to a chat.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	return c.send(ctx, chatID, text, nil, 0)
}

// SendKeyboard posts a message together with a one-column reply keyboard.
func (c *Client) SendKeyboard(ctx context.Context, chatID int64, text string, buttons []string) error {
	return c.send(ctx, chatID, text, buttons, 0)
}

// Reply posts a message quoting the given message id.
func (c *Client) Reply(ctx context.Context, chatID int64, messageID int, text string) error {
	return c.send(ctx, chatID, text, nil, messageID)
}

func (c *Client) send(ctx context.Context, chatID int64, text string, buttons []string, replyTo int) error {
	form := url.Values{}
	form.Set("chat_id", strconv.FormatInt(chatID, 10))
	form.Set("text", text)
	form.Set("parse_mode", "Markdown")

	if len(buttons) > 0 {
		markup := replyKeyboard{ResizeKeyboard: true}
		for _, button := range buttons {
			markup.Keyboard = append(markup.Keyboard, []keyboardButton{{Text: button}})
		}
		encoded, err := json.Marshal(markup)
		if err != nil {
			return fmt.Errorf("marshal keyboard: %w", err)
		}
		form.Set("reply_markup", string(encoded))
	}

	if replyTo != 0 {
		form.Set("reply_to_message_id", strconv.Itoa(replyTo))
	}

	_, err := c.call(ctx, "sendMessage", form)
	return err
}

func (c *Client) call(ctx context.Context, method string, form url.Values) (json.RawMessage, error) {
	if c.botToken == "" {
		return nil, fmt.Errorf("telegram client misconfigured: empty bot token")
	}

	endpoint := fmt.Sprintf("%s/bot%s/%s", c.apiBase, c.botToken, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("telegram %s error %s: %s", method, resp.Status, strings.TrimSpace(string(payload)))
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	if !parsed.OK {
		return nil, fmt.Errorf("telegram %s rejected: %s", method, parsed.Description)
	}

	return parsed.Result, nil
}
