package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"chirper/internal/cache"
	dom "chirper/internal/domain"
	"chirper/internal/repo"
	"chirper/internal/result"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

const (
	MsgMessageRequired = "message is required"
	MsgTextBlank       = "message text cannot be blank"
	MsgTextTooLong     = "message text must be under 255 characters"
	MsgPostedByUnknown = "posted_by must reference an existing account"
	MsgMessageUnknown  = "message not found"
)

// maxTextRunes is exclusive: texts of 255 runes or more are rejected.
const maxTextRunes = 255

// MessageService enforces message invariants and orchestrates message CRUD
// against the message store, consulting the account store for the
// posted_by reference.
type MessageService struct {
	messages repo.MessageRepo
	accounts repo.AccountRepo
	cache    *cache.MessageCache
	sf       singleflight.Group
}

// NewMessageService creates a MessageService. If c is nil, caching is
// disabled.
func NewMessageService(messages repo.MessageRepo, accounts repo.AccountRepo, c *cache.MessageCache) *MessageService {
	return &MessageService{messages: messages, accounts: accounts, cache: c}
}

// CreateMessage validates the candidate and, when every rule passes,
// persists it and returns the stored message (with its assigned id) as the
// result payload.
func (s *MessageService) CreateMessage(ctx context.Context, m *dom.Message) (*result.Result[dom.Message], error) {
	res, err := s.validate(ctx, m)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return res, nil
	}

	created, err := s.messages.Create(ctx, *m)
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	res.SetPayload(created)
	return res, nil
}

// GetAllMessages returns every stored message in id order. An empty store
// is a normal outcome, not an error.
func (s *MessageService) GetAllMessages(ctx context.Context) ([]dom.Message, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.messages.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Message), nil
	}
	return s.messages.List(ctx)
}

// GetMessageByID returns the message, or nil when no message has that id.
// Absence is a normal outcome here and deliberately not a Result.
func (s *MessageService) GetMessageByID(ctx context.Context, id int64) (*dom.Message, error) {
	m, err := s.messages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// DeleteByID removes the message if it exists and reports whether anything
// was deleted. Deleting an unknown id is not an error.
func (s *MessageService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.messages.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.invalidateCache(ctx)
	}
	return deleted, nil
}

// UpdateMessage replaces the text of an existing message. Only the text
// rules run: posted_by is immutable under update and is not re-checked.
// An unknown id yields NotFound.
func (s *MessageService) UpdateMessage(ctx context.Context, id int64, m *dom.Message) (*result.Result[dom.Message], error) {
	res, err := s.validateUpdate(m)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return res, nil
	}

	_, err = s.messages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			res.AddMessage(MsgMessageUnknown, result.NotFound)
			return res, nil
		}
		return nil, err
	}

	if _, err := s.messages.UpdateText(ctx, id, m.Text); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return res, nil
}

// GetAllMessagesFromAccount returns every message posted by accountID in
// id order. An unknown account simply has no messages.
func (s *MessageService) GetAllMessagesFromAccount(ctx context.Context, accountID int64) ([]dom.Message, error) {
	if s.cache != nil {
		key := "account:" + strconv.FormatInt(accountID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetAccountList(ctx, accountID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.messages.ListByPostedBy(ctx, accountID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetAccountList(ctx, accountID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Message), nil
	}
	return s.messages.ListByPostedBy(ctx, accountID)
}

// validate runs every creation rule. Only the nil guard short-circuits;
// the field checks all run so diagnostics accumulate, and the last failing
// rule decides the classification.
func (s *MessageService) validate(ctx context.Context, m *dom.Message) (*result.Result[dom.Message], error) {
	res := result.New[dom.Message]()

	if m == nil {
		res.AddMessage(MsgMessageRequired, result.Invalid)
		return res, nil
	}

	if strings.TrimSpace(m.Text) == "" {
		res.AddMessage(MsgTextBlank, result.Invalid)
	}

	if utf8.RuneCountInString(m.Text) >= maxTextRunes {
		res.AddMessage(MsgTextTooLong, result.Invalid)
	}

	_, err := s.accounts.GetByID(ctx, m.PostedBy)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		res.AddMessage(MsgPostedByUnknown, result.Invalid)
	case err != nil:
		return nil, err
	}

	return res, nil
}

// validateUpdate runs the text rules only.
func (s *MessageService) validateUpdate(m *dom.Message) (*result.Result[dom.Message], error) {
	res := result.New[dom.Message]()

	if m == nil {
		res.AddMessage(MsgMessageRequired, result.Invalid)
		return res, nil
	}

	if strings.TrimSpace(m.Text) == "" {
		res.AddMessage(MsgTextBlank, result.Invalid)
	}

	if utf8.RuneCountInString(m.Text) >= maxTextRunes {
		res.AddMessage(MsgTextTooLong, result.Invalid)
	}

	return res, nil
}

func (s *MessageService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx)
	}
}
