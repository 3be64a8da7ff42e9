package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// PostMessageArguments are the parameters of chat.postMessage. Channel is
// required; at least one of Text, Blocks, or Attachments must be set.
// Unset optional fields are left out of the request body entirely.
type PostMessageArguments struct {
	// Channel, private group, or IM channel to send the message to. Can be
	// an encoded ID or a name.
	Channel string `json:"channel"`
	// Text of the message to send.
	Text string `json:"text,omitempty"`
	// Blocks of the message to send, as raw Block Kit JSON.
	Blocks []json.RawMessage `json:"blocks,omitempty"`
	// Attachments is an array of structured attachments.
	Attachments []Attachment `json:"attachments,omitempty"`
	// IconEmoji to use as the icon for this message. Overrides IconURL.
	IconEmoji string `json:"icon_emoji,omitempty"`
	// IconURL to an image to use as the icon for this message.
	IconURL string `json:"icon_url,omitempty"`
	// LinkNames finds and links user groups.
	LinkNames *bool `json:"link_names,omitempty"`
	// Metadata entries with event_type and event_payload fields.
	Metadata []json.RawMessage `json:"metadata,omitempty"`
	// Mrkdwn disables Slack markup parsing when set to false.
	Mrkdwn *bool `json:"mrkdwn,omitempty"`
	// Parse changes how messages are treated.
	Parse string `json:"parse,omitempty"`
	// ReplyBroadcast makes a thread reply visible to the whole channel.
	ReplyBroadcast *bool `json:"reply_broadcast,omitempty"`
	// ThreadTS is another message's ts value to reply to. Use the parent's
	// ts, not a reply's.
	ThreadTS string `json:"thread_ts,omitempty"`
	// Username sets the bot's user name.
	Username string `json:"username,omitempty"`
}

// Attachment is a legacy structured attachment to a message.
type Attachment struct {
	Fallback   string  `json:"fallback,omitempty"`
	Color      string  `json:"color,omitempty"`
	Pretext    string  `json:"pretext,omitempty"`
	AuthorName string  `json:"author_name,omitempty"`
	AuthorLink string  `json:"author_link,omitempty"`
	AuthorIcon string  `json:"author_icon,omitempty"`
	Title      string  `json:"title,omitempty"`
	TitleLink  string  `json:"title_link,omitempty"`
	Text       string  `json:"text,omitempty"`
	Fields     []Field `json:"fields,omitempty"`
	ImageURL   string  `json:"image_url,omitempty"`
	ThumbURL   string  `json:"thumb_url,omitempty"`
	Footer     string  `json:"footer,omitempty"`
	FooterIcon string  `json:"footer_icon,omitempty"`
	Timestamp  int64   `json:"ts,omitempty"`
}

// Field is one row in an attachment's field table.
type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// PostMessageContext sends a message to a channel and returns the ts of the
// posted message.
//
// https://api.slack.com/methods/chat.postMessage
func (c *Client) PostMessageContext(ctx context.Context, arguments PostMessageArguments) (string, error) {
	if arguments.Text == "" && len(arguments.Attachments) == 0 && len(arguments.Blocks) == 0 {
		return "", invalidArgument("text, attachments, or blocks is required")
	}

	c.logger.Debug("posting message", zap.String("channel", arguments.Channel))

	response, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(arguments).
		Post(c.endpoint("chat.postMessage"))
	if err != nil {
		return "", httpRequestFailed("chat.postMessage request failed", err)
	}

	if code := response.StatusCode(); code < http.StatusOK || code >= http.StatusMultipleChoices {
		return "", httpRequestFailed(statusMessage("chat.postMessage", response.Status()), nil)
	}

	ts := gjson.GetBytes(response.Body(), "message.ts")
	if !ts.Exists() || ts.String() == "" {
		return "", invalidArgument("No message ID in response")
	}

	return ts.String(), nil
}

// PostMessage is the blocking form of PostMessageContext. Callers that need
// cancellation or a deadline should use the context form.
func (c *Client) PostMessage(arguments PostMessageArguments) (string, error) {
	return c.PostMessageContext(context.Background(), arguments)
}

// PostMessageTextContext sends a plain text message to a channel.
func (c *Client) PostMessageTextContext(ctx context.Context, channel, text string) (string, error) {
	return c.PostMessageContext(ctx, PostMessageArguments{
		Channel: channel,
		Text:    text,
	})
}

// PostMessageText is the blocking form of PostMessageTextContext.
func (c *Client) PostMessageText(channel, text string) (string, error) {
	return c.PostMessageTextContext(context.Background(), channel, text)
}

// DeleteContext deletes a previously posted message identified by its ts.
//
// https://api.slack.com/methods/chat.delete
func (c *Client) DeleteContext(ctx context.Context, channel, ts string) error {
	c.logger.Debug("deleting message", zap.String("channel", channel), zap.String("ts", ts))

	response, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"channel": channel,
			"ts":      ts,
		}).
		Post(c.endpoint("chat.delete"))
	if err != nil {
		return httpRequestFailed("chat.delete request failed", err)
	}

	if code := response.StatusCode(); code < http.StatusOK || code >= http.StatusMultipleChoices {
		return httpRequestFailed(statusMessage("chat.delete", response.Status()), nil)
	}

	if !gjson.GetBytes(response.Body(), "ok").Bool() {
		return invalidArgument("Failed to delete message")
	}

	return nil
}

// Delete is the blocking form of DeleteContext.
func (c *Client) Delete(channel, ts string) error {
	return c.DeleteContext(context.Background(), channel, ts)
}

func statusMessage(method, status string) string {
	return fmt.Sprintf("%s returned status %s", method, status)
}
