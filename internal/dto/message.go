package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// PostedAt parses posted_at from JSON as either RFC3339 or a Unix epoch
// number (seconds or milliseconds). Absent means "now" at creation time.
type PostedAt struct{ t *time.Time }

func (p *PostedAt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		p.t = nil
		return nil
	}
	var epoch int64
	if err := json.Unmarshal(data, &epoch); err == nil {
		// Heuristic: epochs past the year 33658 in seconds are milliseconds.
		parsed := time.Unix(epoch, 0).UTC()
		if epoch > 1e12 {
			parsed = time.UnixMilli(epoch).UTC()
		}
		p.t = &parsed
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("posted_at: use RFC3339 datetime or Unix epoch")
	}
	for _, layout := range []string{time.RFC3339, time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			p.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("posted_at: use RFC3339 datetime or Unix epoch")
}

func (p PostedAt) MarshalJSON() ([]byte, error) {
	if p.t == nil {
		return []byte("null"), nil
	}
	return json.Marshal(p.t.Format(time.RFC3339Nano))
}

// Ptr returns *time.Time for use in service/domain.
func (p PostedAt) Ptr() *time.Time { return p.t }

// CreateMessageRequest is the JSON body for POST /messages. Text rules
// (non-blank, under 255 characters, existing posted_by) are enforced by
// the message service so failures come back as classified outcomes, not
// binding errors.
type CreateMessageRequest struct {
	Text     string   `json:"message_text"`
	PostedBy int64    `json:"posted_by"`
	PostedAt PostedAt `json:"posted_at"`
}

// UpdateMessageRequest is the JSON body for PATCH /messages/:id.
// Only the text is updatable.
type UpdateMessageRequest struct {
	Text string `json:"message_text"`
}

type MessageResponse struct {
	ID       int64     `json:"id"`
	Text     string    `json:"message_text"`
	PostedBy int64     `json:"posted_by"`
	PostedAt time.Time `json:"posted_at"`
}

type ListMessagesResponse struct {
	Items []MessageResponse `json:"items"`
}
