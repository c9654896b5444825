// Package graph talks to the Microsoft Graph REST API for the support
// mailbox and user photos.
package graph

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/synerjet/bendesk/internal/application/mailbridge"
	"github.com/synerjet/bendesk/internal/shared/config"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

const fileAttachmentType = "#microsoft.graph.fileAttachment"

var ErrPhotoNotFound = errors.New("photo not found")

type accessTokener interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client implements mailbridge.MailSource over one mailbox.
type Client struct {
	http    *http.Client
	baseURL string
	mailbox string
	folder  string
	tokens  accessTokener
	logger  logger.Interface
}

func NewClient(cfg config.MailConfig, tokens accessTokener, log logger.Interface) *Client {
	folder := cfg.Folder
	if folder == "" {
		folder = "Inbox"
	}
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(cfg.GraphBaseURL, "/"),
		mailbox: cfg.Mailbox,
		folder:  folder,
		tokens:  tokens,
		logger:  log.With("component", "graph.client"),
	}
}

type emailAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type messagePayload struct {
	ID               string `json:"id"`
	Subject          string `json:"subject"`
	ReceivedDateTime string `json:"receivedDateTime"`
	Body             struct {
		ContentType string `json:"contentType"`
		Content     string `json:"content"`
	} `json:"body"`
	From struct {
		EmailAddress emailAddress `json:"emailAddress"`
	} `json:"from"`
}

type messagePage struct {
	Value    []messagePayload `json:"value"`
	NextLink string           `json:"@odata.nextLink"`
}

type attachmentPayload struct {
	ODataType    string `json:"@odata.type"`
	Name         string `json:"name"`
	ContentType  string `json:"contentType"`
	ContentBytes string `json:"contentBytes"`
}

func (c *Client) userPath(parts ...string) string {
	return c.baseURL + "/users/" + url.PathEscape(c.mailbox) + "/" + strings.Join(parts, "/")
}

// FetchUnreadMessages follows @odata.nextLink until every unread message of
// the folder is collected.
func (c *Client) FetchUnreadMessages(ctx context.Context) ([]mailbridge.Message, error) {
	q := url.Values{}
	q.Set("$filter", "isRead eq false")
	next := c.userPath("mailFolders", url.PathEscape(c.folder), "messages") + "?" + q.Encode()

	var out []mailbridge.Message
	for next != "" {
		var page messagePage
		if err := c.doJSON(ctx, http.MethodGet, next, nil, &page); err != nil {
			return nil, fmt.Errorf("failed to fetch unread messages: %w", err)
		}
		for _, m := range page.Value {
			out = append(out, toMessage(m))
		}
		next = page.NextLink
	}
	return out, nil
}

func toMessage(m messagePayload) mailbridge.Message {
	msg := mailbridge.Message{
		ID:          m.ID,
		Subject:     m.Subject,
		Body:        strings.TrimSpace(m.Body.Content),
		BodyIsHTML:  strings.EqualFold(m.Body.ContentType, "html"),
		SenderName:  m.From.EmailAddress.Name,
		SenderEmail: m.From.EmailAddress.Address,
	}
	if ts, err := time.Parse(time.RFC3339, m.ReceivedDateTime); err == nil {
		msg.ReceivedAt = ts.UTC()
	}
	return msg
}

// FetchAttachments returns file attachments only; item and reference
// attachments are skipped.
func (c *Client) FetchAttachments(ctx context.Context, messageID string) ([]mailbridge.Attachment, error) {
	var page struct {
		Value []attachmentPayload `json:"value"`
	}
	if err := c.doJSON(ctx, http.MethodGet, c.userPath("messages", url.PathEscape(messageID), "attachments"), nil, &page); err != nil {
		return nil, fmt.Errorf("failed to fetch attachments: %w", err)
	}

	out := make([]mailbridge.Attachment, 0, len(page.Value))
	for _, a := range page.Value {
		if a.ODataType != fileAttachmentType {
			continue
		}
		content, err := base64.StdEncoding.DecodeString(a.ContentBytes)
		if err != nil {
			c.logger.Warnw("skipping attachment with invalid content", "message_id", messageID, "name", a.Name, "error", err)
			continue
		}
		out = append(out, mailbridge.Attachment{Name: a.Name, ContentType: a.ContentType, Content: content})
	}
	return out, nil
}

func (c *Client) MarkRead(ctx context.Context, messageID string) error {
	body := map[string]bool{"isRead": true}
	if err := c.doJSON(ctx, http.MethodPatch, c.userPath("messages", url.PathEscape(messageID)), body, nil); err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	return nil
}

// Photo returns the profile photo of a directory user.
func (c *Client) Photo(ctx context.Context, email string) ([]byte, string, error) {
	endpoint := c.baseURL + "/users/" + url.PathEscape(email) + "/photo/$value"
	resp, err := c.do(ctx, http.MethodGet, endpoint, nil, "image/jpeg")
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, "", ErrPhotoNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", statusError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read photo: %w", err)
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return data, contentType, nil
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	resp, err := c.do(ctx, method, endpoint, body, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, accept string) (*http.Response, error) {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", accept)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graph request failed: %w", err)
	}
	return resp, nil
}

func statusError(resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("graph returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
}
