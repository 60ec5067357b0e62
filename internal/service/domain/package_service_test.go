package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/kyodai-travel/tourbook/internal/cache"
	"github.com/kyodai-travel/tourbook/internal/model"
	"github.com/kyodai-travel/tourbook/internal/repository"
	"github.com/kyodai-travel/tourbook/internal/service"
)

// fakeCache mimics the redis JSON round trip with an in-memory map.
type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) Get(key string, dest any) error {
	raw, ok := c.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *fakeCache) Set(key string, value any, expiration time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *fakeCache) Delete(keys ...string) error {
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func validPackageInput() PackageInput {
	return PackageInput{
		Title:           "Bali Cultural Heritage 4D3N",
		Price:           500000,
		DurationDays:    4,
		MaxParticipants: 20,
		CategoryID:      1,
		DestinationID:   1,
		IsActive:        true,
	}
}

func TestPackageService_Create_Validation(t *testing.T) {
	repo := &MockPackageRepo{}
	svc := NewPackageService(repo, nil)

	for name, mutate := range map[string]func(*PackageInput){
		"blank title":       func(in *PackageInput) { in.Title = "  " },
		"zero price":        func(in *PackageInput) { in.Price = 0 },
		"negative price":    func(in *PackageInput) { in.Price = -1 },
		"zero duration":     func(in *PackageInput) { in.DurationDays = 0 },
		"zero participants": func(in *PackageInput) { in.MaxParticipants = 0 },
	} {
		input := validPackageInput()
		mutate(&input)
		_, err := svc.Create(input)
		assert.ErrorIs(t, err, service.ErrInvalidInput, name)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestPackageService_GetActiveByID_InactiveReadsAsGone(t *testing.T) {
	repo := &MockPackageRepo{}
	svc := NewPackageService(repo, nil)

	pkg := activePackage()
	pkg.IsActive = false
	repo.On("GetByID", uint(3)).Return(pkg, nil)

	got, err := svc.GetActiveByID(3)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestPackageService_GetActiveByID_ReadThroughCache(t *testing.T) {
	repo := &MockPackageRepo{}
	fake := newFakeCache()
	svc := NewPackageService(repo, fake)

	repo.On("GetByID", uint(3)).Return(activePackage(), nil)

	first, err := svc.GetActiveByID(3)
	assert.NoError(t, err)
	second, err := svc.GetActiveByID(3)
	assert.NoError(t, err)
	assert.Equal(t, first.Title, second.Title)

	// second read came from the cache
	repo.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestPackageService_ListActive_OnlyUnfilteredIsCached(t *testing.T) {
	repo := &MockPackageRepo{}
	fake := newFakeCache()
	svc := NewPackageService(repo, fake)

	unfiltered := repository.PackageFilter{}
	filtered := repository.PackageFilter{CategoryID: 2}
	repo.On("ListActive", unfiltered).Return([]model.TourPackage{*activePackage()}, nil)
	repo.On("ListActive", filtered).Return([]model.TourPackage{*activePackage()}, nil)

	_, _ = svc.ListActive(unfiltered)
	_, _ = svc.ListActive(unfiltered)
	repo.AssertNumberOfCalls(t, "ListActive", 1)

	_, _ = svc.ListActive(filtered)
	_, _ = svc.ListActive(filtered)
	repo.AssertNumberOfCalls(t, "ListActive", 3)
}

func TestPackageService_Update_InvalidatesCatalogCache(t *testing.T) {
	repo := &MockPackageRepo{}
	fake := newFakeCache()
	svc := NewPackageService(repo, fake)

	repo.On("GetByID", uint(3)).Return(activePackage(), nil)
	repo.On("ListActive", repository.PackageFilter{}).Return([]model.TourPackage{*activePackage()}, nil)
	repo.On("Update", mock.AnythingOfType("*model.TourPackage")).Return(nil)

	_, _ = svc.ListActive(repository.PackageFilter{})
	_, _ = svc.GetActiveByID(3)
	assert.NotEmpty(t, fake.entries)

	input := validPackageInput()
	input.Price = 600000
	_, err := svc.Update(3, input)
	assert.NoError(t, err)

	_, hasList := fake.entries[cache.PackagesActiveKey]
	_, hasPkg := fake.entries[cache.MakePackageKey(3)]
	assert.False(t, hasList)
	assert.False(t, hasPkg)
}

func TestPackageService_Update_MissingPackage(t *testing.T) {
	repo := &MockPackageRepo{}
	svc := NewPackageService(repo, nil)

	repo.On("GetByID", uint(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(404, validPackageInput())
	assert.ErrorIs(t, err, service.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}
