package item_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hjkwon/stockroom/internal/item"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    item.CreateParams
		setupMock func(m *item.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: item.CreateParams{
				Name:     "A4 Paper",
				Category: "Office",
				Unit:     "box",
				Location: "Shelf 3",
			},
			setupMock: func(m *item.MockRepository) {
				m.EXPECT().
					CreateItem(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, it *item.Item) error {
						it.ID = uuid.New()
						it.CreatedAt = time.Now()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name:   "RepoError",
			params: item.CreateParams{Name: "Broken"},
			setupMock: func(m *item.MockRepository) {
				m.EXPECT().
					CreateItem(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := item.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := item.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Zero(t, got.CurrentStock, "new items start with zero stock")
		})
	}
}

func TestService_Update_IgnoresStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := item.NewMockRepository(ctrl)
	svc := item.NewService(repo)

	id := uuid.New()
	existing := &item.Item{
		ID:           id,
		Name:         "Stapler",
		Category:     "Office",
		CurrentStock: 7,
	}

	repo.EXPECT().GetItem(gomock.Any(), id).Return(existing, nil)
	repo.EXPECT().
		UpdateItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, it *item.Item) error {
			assert.Equal(t, "Heavy Stapler", it.Name)
			assert.Equal(t, int64(7), it.CurrentStock)
			return nil
		})

	got, err := svc.Update(context.Background(), id, item.UpdateParams{
		Name: new("Heavy Stapler"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Heavy Stapler", got.Name)
	assert.Equal(t, "Office", got.Category)
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := item.NewMockRepository(ctrl)
	svc := item.NewService(repo)

	id := uuid.New()
	repo.EXPECT().GetItem(gomock.Any(), id).Return(nil, item.ErrNotFound)

	_, err := svc.Update(context.Background(), id, item.UpdateParams{})
	assert.ErrorIs(t, err, item.ErrNotFound)
}

func TestService_Delete_InUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := item.NewMockRepository(ctrl)
	svc := item.NewService(repo)

	id := uuid.New()
	repo.EXPECT().DeleteItem(gomock.Any(), id).Return(item.ErrInUse)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, item.ErrInUse)
}
