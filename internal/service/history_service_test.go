package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domzi1231/fb-ads-generator/internal/model"
	"github.com/domzi1231/fb-ads-generator/internal/service"
)

type historyRepoStub struct {
	entries    []model.HistoryEntry
	insertErr  error
	lastLimit  int
	deleted    int64
	deleteErr  error
	listErr    error
	lastInsert model.HistoryEntry
}

func (r *historyRepoStub) List(_ context.Context) ([]model.HistoryEntry, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.entries, nil
}

func (r *historyRepoStub) Insert(_ context.Context, entry model.HistoryEntry, limit int) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.lastInsert = entry
	r.lastLimit = limit
	r.entries = append(r.entries, entry)
	return nil
}

func (r *historyRepoStub) DeleteAll(_ context.Context) (int64, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	return r.deleted, nil
}

func TestHistoryService_Append_AssignsIdentity(t *testing.T) {
	repo := &historyRepoStub{}
	svc := service.NewHistoryService(repo)

	stored, err := svc.Append(context.Background(), model.HistoryEntry{
		Label: "my label",
		Ads:   []model.AdItem{{Title: "t", Description: "d", CTA: "c"}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID, "append should assign an id")
	require.False(t, stored.CreatedAt.IsZero(), "append should assign a timestamp")
	require.Equal(t, "my label", stored.Label)
	require.Equal(t, service.HistoryLimit, repo.lastLimit, "the bound should reach the repository")
}

func TestHistoryService_Append_DerivesLabel(t *testing.T) {
	repo := &historyRepoStub{}
	svc := service.NewHistoryService(repo)

	url := "https://shop.example"
	stored, err := svc.Append(context.Background(), model.HistoryEntry{
		URL: &url,
		Ads: []model.AdItem{{Title: "🚀 Title", Description: "d", CTA: "c"}},
	})
	require.NoError(t, err)
	require.Equal(t, "https://shop.example", stored.Label, "URL wins as label")

	stored, err = svc.Append(context.Background(), model.HistoryEntry{
		Ads: []model.AdItem{{Title: "🚀 Title", Description: "d", CTA: "c"}},
	})
	require.NoError(t, err)
	require.Equal(t, "🚀 Title", stored.Label, "first ad title is the fallback label")
}

func TestHistoryService_Append_RequiresAds(t *testing.T) {
	svc := service.NewHistoryService(&historyRepoStub{})

	_, err := svc.Append(context.Background(), model.HistoryEntry{Label: "empty"})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestHistoryService_LoadAndClear(t *testing.T) {
	repo := &historyRepoStub{
		entries: []model.HistoryEntry{{ID: "a"}, {ID: "b"}},
		deleted: 2,
	}
	svc := service.NewHistoryService(repo)

	entries, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	deleted, err := svc.Clear(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)
}

func TestHistoryService_ErrorPropagation(t *testing.T) {
	repo := &historyRepoStub{
		listErr:   errors.New("list failed"),
		insertErr: errors.New("insert failed"),
		deleteErr: errors.New("delete failed"),
	}
	svc := service.NewHistoryService(repo)

	_, err := svc.Load(context.Background())
	require.Error(t, err)

	_, err = svc.Append(context.Background(), model.HistoryEntry{
		Ads: []model.AdItem{{Title: "t", Description: "d", CTA: "c"}},
	})
	require.Error(t, err)

	_, err = svc.Clear(context.Background())
	require.Error(t, err)
}
