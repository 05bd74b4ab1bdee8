package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"

	dom "chirper/internal/domain"
	"chirper/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ---- in-memory store fakes ----

type memAccountRepo struct {
	seq  int64
	rows map[int64]dom.Account
}

func (r *memAccountRepo) Create(_ context.Context, a dom.Account) (dom.Account, error) {
	for _, row := range r.rows {
		if row.Username == a.Username {
			return dom.Account{}, &pgconn.PgError{Code: "23505"}
		}
	}
	r.seq++
	a.ID = r.seq
	r.rows[a.ID] = a
	return a, nil
}

func (r *memAccountRepo) GetByID(_ context.Context, id int64) (dom.Account, error) {
	a, ok := r.rows[id]
	if !ok {
		return dom.Account{}, pgx.ErrNoRows
	}
	return a, nil
}

func (r *memAccountRepo) GetByUsername(_ context.Context, username string) (dom.Account, error) {
	for _, a := range r.rows {
		if a.Username == username {
			return a, nil
		}
	}
	return dom.Account{}, pgx.ErrNoRows
}

func (r *memAccountRepo) GetByUsernameAndPassword(_ context.Context, username, password string) (dom.Account, error) {
	for _, a := range r.rows {
		if a.Username == username && a.Password == password {
			return a, nil
		}
	}
	return dom.Account{}, pgx.ErrNoRows
}

type memMessageRepo struct {
	seq  int64
	rows map[int64]dom.Message
}

func (r *memMessageRepo) Create(_ context.Context, m dom.Message) (dom.Message, error) {
	r.seq++
	m.ID = r.seq
	r.rows[m.ID] = m
	return m, nil
}

func (r *memMessageRepo) GetByID(_ context.Context, id int64) (dom.Message, error) {
	m, ok := r.rows[id]
	if !ok {
		return dom.Message{}, pgx.ErrNoRows
	}
	return m, nil
}

func (r *memMessageRepo) List(_ context.Context) ([]dom.Message, error) {
	var list []dom.Message
	for _, m := range r.rows {
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *memMessageRepo) ListByPostedBy(_ context.Context, accountID int64) ([]dom.Message, error) {
	var list []dom.Message
	for _, m := range r.rows {
		if m.PostedBy == accountID {
			list = append(list, m)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *memMessageRepo) UpdateText(_ context.Context, id int64, text string) (dom.Message, error) {
	m, ok := r.rows[id]
	if !ok {
		return dom.Message{}, pgx.ErrNoRows
	}
	m.Text = text
	r.rows[id] = m
	return m, nil
}

func (r *memMessageRepo) DeleteByID(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

// ---- helpers ----

type fixture struct {
	router   *gin.Engine
	accounts *memAccountRepo
	messages *memMessageRepo
}

func newFixture() *fixture {
	gin.SetMode(gin.TestMode)
	accounts := &memAccountRepo{rows: map[int64]dom.Account{}}
	messages := &memMessageRepo{rows: map[int64]dom.Message{}}

	accountSvc := service.NewAccountService(accounts)
	messageSvc := service.NewMessageService(messages, accounts, nil)

	r := gin.New()
	api := r.Group("/api/v1")

	ah := NewAccountHandler(accountSvc)
	api.POST("/register", ah.Register)
	api.POST("/login", ah.Login)

	mh := NewMessageHandler(messageSvc)
	api.POST("/messages", mh.Create)
	api.GET("/messages", mh.List)
	api.GET("/messages/:id", mh.GetByID)
	api.PATCH("/messages/:id", mh.Update)
	api.DELETE("/messages/:id", mh.Delete)
	api.GET("/accounts/:id/messages", mh.ListByAccount)

	return &fixture{router: r, accounts: accounts, messages: messages}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
