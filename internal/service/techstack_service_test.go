package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fendiRahmans/portofolio-api/internal/dto"
	"github.com/fendiRahmans/portofolio-api/internal/models"
	appErrors "github.com/fendiRahmans/portofolio-api/pkg/errors"
)

type mockTechStackRepo struct {
	items   []models.TechStack
	listErr error
	created []*models.TechStack
	mutErr  error
	lists   int
}

func (m *mockTechStackRepo) List(ctx context.Context) ([]models.TechStack, error) {
	m.lists++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockTechStackRepo) Create(ctx context.Context, item *models.TechStack) error {
	if m.mutErr != nil {
		return m.mutErr
	}
	item.ID = int64(len(m.created) + 1)
	m.created = append(m.created, item)
	return nil
}

func (m *mockTechStackRepo) Update(ctx context.Context, item *models.TechStack) error {
	return m.mutErr
}

func (m *mockTechStackRepo) Delete(ctx context.Context, id int64) error {
	return m.mutErr
}

// memoryCacheRepo is a map-backed CacheRepository for asserting cache
// interactions without Redis.
type memoryCacheRepo struct {
	entries map[string][]byte
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{entries: make(map[string][]byte)}
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
	return nil
}

func validTechStackRequest() dto.TechStackRequest {
	return dto.TechStackRequest{
		Title:       "Go",
		Description: "Backend services",
		IconName:    "SiGo",
		IconColor:   "text-cyan-400",
		BgColor:     "bg-cyan-500/10",
	}
}

func TestTechStackServiceListPublicCachesResult(t *testing.T) {
	repo := &mockTechStackRepo{items: []models.TechStack{{ID: 1, Title: "Go"}}}
	cache := NewCacheService(newMemoryCacheRepo(), time.Minute, nil, true)
	svc := NewTechStackService(repo, nil, cache, nil)

	first := svc.ListPublic(context.Background())
	second := svc.ListPublic(context.Background())
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	// second read is served from cache
	assert.Equal(t, 1, repo.lists)
}

func TestTechStackServiceCreateInvalidatesPublicCache(t *testing.T) {
	repo := &mockTechStackRepo{items: []models.TechStack{{ID: 1, Title: "Go"}}}
	mem := newMemoryCacheRepo()
	cache := NewCacheService(mem, time.Minute, nil, true)
	svc := NewTechStackService(repo, nil, cache, nil)

	svc.ListPublic(context.Background())
	assert.Contains(t, mem.entries, CacheKeyTechStacks)

	_, err := svc.Create(context.Background(), validTechStackRequest())
	require.NoError(t, err)
	assert.NotContains(t, mem.entries, CacheKeyTechStacks)
}

func TestTechStackServiceCreateValidationBlocksWrite(t *testing.T) {
	repo := &mockTechStackRepo{}
	svc := NewTechStackService(repo, nil, disabledCache(), nil)

	req := validTechStackRequest()
	req.IconName = ""

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Fields, "iconName")
	assert.Empty(t, repo.created)
}

func TestTechStackServiceListPublicDegradesToEmpty(t *testing.T) {
	repo := &mockTechStackRepo{listErr: errors.New("connection refused")}
	svc := NewTechStackService(repo, nil, disabledCache(), nil)

	items := svc.ListPublic(context.Background())
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
