package services

import (
	"context"
	"math/rand/v2"
	"sort"
	"sync"
	"testing"

	"arcana/app/models/reading"
	"arcana/app/models/user"
	"arcana/pkg/tarot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeReadingStore 内存实现，用于测试业务逻辑
type fakeReadingStore struct {
	mu       sync.Mutex
	readings map[string]*reading.Reading
	err      error
}

func newFakeReadingStore() *fakeReadingStore {
	return &fakeReadingStore{readings: map[string]*reading.Reading{}}
}

func (f *fakeReadingStore) Create(_ context.Context, rd *reading.Reading) error {
	if f.err != nil {
		return f.err
	}
	if err := rd.Validate(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if rd.ID == "" {
		rd.ID = uuid.NewString()
	}
	cp := *rd
	f.readings[rd.ID] = &cp
	return nil
}

func (f *fakeReadingStore) FindByID(_ context.Context, id string) (*reading.Reading, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	rd, ok := f.readings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *rd
	return &cp, nil
}

func (f *fakeReadingStore) ListByOwner(_ context.Context, userID string, page, limit int) ([]reading.Reading, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var owned []reading.Reading
	for _, rd := range f.readings {
		if rd.OwnedBy(userID) {
			owned = append(owned, *rd)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })

	start := (page - 1) * limit
	if start > len(owned) {
		start = len(owned)
	}
	end := start + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[start:end], int64(len(owned)), nil
}

func (f *fakeReadingStore) DeleteByID(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.readings, id)
	return nil
}

func (f *fakeReadingStore) CountByUser(_ context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, rd := range f.readings {
		if rd.OwnedBy(userID) {
			n++
		}
	}
	return n, nil
}

func (f *fakeReadingStore) ClaimSession(_ context.Context, sessionID, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, rd := range f.readings {
		if rd.UserID == nil && rd.SessionID != nil && *rd.SessionID == sessionID {
			uid := userID
			rd.UserID, rd.SessionID = &uid, nil
			n++
		}
	}
	return n, nil
}

// fakeUserStore 内存实现
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*user.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*user.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, u *user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if err := u.BeforeSave(nil); err != nil {
		return err
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) IsEmailExist(ctx context.Context, email string) (bool, error) {
	_, err := f.FindByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserStore) Save(_ context.Context, u *user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := u.BeforeSave(nil); err != nil {
		return err
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

// fakeInterpreter 返回固定文本并记录最后一次调用参数
type fakeInterpreter struct {
	text     string
	calls    int
	question string
	language tarot.Language
	spread   tarot.SpreadType
}

func (f *fakeInterpreter) Interpret(_ context.Context, cards []tarot.DrawnCard, question string, language tarot.Language, spread tarot.SpreadType) (string, error) {
	f.calls++
	f.question, f.language, f.spread = question, language, spread
	return f.text, nil
}

type fakeTokens struct{}

func (fakeTokens) IssueToken(userID string) (string, error) { return "token-" + userID, nil }

// newAnonReading 构造属于匿名会话的记录
func newAnonReading(t *testing.T, sessionID string) *reading.Reading {
	t.Helper()
	catalog, err := tarot.LoadCatalog()
	require.NoError(t, err)
	cards, err := tarot.NewDrawer(catalog, rand.New(rand.NewPCG(1, 2))).Draw(tarot.SelectionSize, tarot.SpreadTemporal)
	require.NoError(t, err)
	return &reading.Reading{
		SessionID:      &sessionID,
		Cards:          cards,
		SpreadType:     string(tarot.SpreadTemporal),
		Language:       string(tarot.LanguageUk),
		Interpretation: "anonymous reading",
	}
}
