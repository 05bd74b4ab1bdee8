package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	dom "chirper/internal/domain"
	"chirper/internal/repo"
	"chirper/internal/result"
	"chirper/internal/utils"

	"github.com/jackc/pgx/v5"
)

// Diagnostic texts carried inside Result. Informational only: callers
// branch on the classification, not on these strings.
const (
	MsgAccountRequired = "account is required"
	MsgUsernameBlank   = "username cannot be blank"
	MsgUsernameTaken   = "username already in use"
	MsgPasswordShort   = "password must be at least 4 characters"
	MsgUsernameUnknown = "username not found"
	MsgLoginFailed     = "login failed"
)

const minPasswordLen = 4

// AccountService enforces account invariants and orchestrates registration
// and login against the account store. Business outcomes ride the Result;
// the error return carries storage faults only.
type AccountService struct {
	accounts repo.AccountRepo
}

// NewAccountService returns a new AccountService.
func NewAccountService(accounts repo.AccountRepo) *AccountService {
	return &AccountService{accounts: accounts}
}

// CreateAccount validates the candidate and, when every rule passes,
// persists it and returns the stored account (with its assigned id) as the
// result payload. Validation failures come back classified without
// touching storage. A unique-index violation on the insert itself is
// reported as Duplicate, so two racing registrations cannot both win.
func (s *AccountService) CreateAccount(ctx context.Context, a *dom.Account) (*result.Result[dom.Account], error) {
	res, err := s.validateCreate(ctx, a)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return res, nil
	}

	created, err := s.accounts.Create(ctx, *a)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			res.AddMessage(MsgUsernameTaken, result.Duplicate)
			return res, nil
		}
		return nil, err
	}
	res.SetPayload(created)
	return res, nil
}

// LoginAccount validates the candidate, then looks for an account matching
// both username and password exactly. A structural failure (missing
// username, short password) comes back from validation; matching
// credentials return the stored account as payload; a mismatch yields a
// final Invalid outcome.
func (s *AccountService) LoginAccount(ctx context.Context, a *dom.Account) (*result.Result[dom.Account], error) {
	res, err := s.validateLogin(ctx, a)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return res, nil
	}

	match, err := s.accounts.GetByUsernameAndPassword(ctx, a.Username, a.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			res.AddMessage(MsgLoginFailed, result.Invalid)
			return res, nil
		}
		return nil, err
	}
	res.SetPayload(match)
	return res, nil
}

// validateCreate runs every registration rule. Only the nil guard
// short-circuits; the remaining checks all run so the diagnostics
// accumulate, and the last failing rule decides the classification.
func (s *AccountService) validateCreate(ctx context.Context, a *dom.Account) (*result.Result[dom.Account], error) {
	res := result.New[dom.Account]()

	if a == nil {
		res.AddMessage(MsgAccountRequired, result.Invalid)
		return res, nil
	}

	if strings.TrimSpace(a.Username) == "" {
		res.AddMessage(MsgUsernameBlank, result.Invalid)
	}

	_, err := s.accounts.GetByUsername(ctx, a.Username)
	switch {
	case err == nil:
		res.AddMessage(MsgUsernameTaken, result.Duplicate)
	case errors.Is(err, pgx.ErrNoRows):
		// username free
	default:
		return nil, err
	}

	if utf8.RuneCountInString(a.Password) < minPasswordLen {
		res.AddMessage(MsgPasswordShort, result.Invalid)
	}

	return res, nil
}

func (s *AccountService) validateLogin(ctx context.Context, a *dom.Account) (*result.Result[dom.Account], error) {
	res := result.New[dom.Account]()

	if a == nil {
		res.AddMessage(MsgAccountRequired, result.Invalid)
		return res, nil
	}

	_, err := s.accounts.GetByUsername(ctx, a.Username)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		res.AddMessage(MsgUsernameUnknown, result.NotFound)
	case err != nil:
		return nil, err
	}

	if utf8.RuneCountInString(a.Password) < minPasswordLen {
		res.AddMessage(MsgPasswordShort, result.Invalid)
	}

	return res, nil
}
