package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hjkwon/stockroom/internal/ledger"
)

func TestService_Record(t *testing.T) {
	itemID := uuid.New()

	type testCase struct {
		name      string
		params    ledger.RecordParams
		setupMock func(repo *ledger.MockRepository, mtx *ledger.MockMovementTx)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "InboundIncreasesStock",
			params: ledger.RecordParams{
				ItemID:      itemID,
				Type:        ledger.TypeIn,
				Quantity:    10,
				Description: "restock",
			},
			setupMock: func(repo *ledger.MockRepository, mtx *ledger.MockMovementTx) {
				repo.EXPECT().BeginMovement(gomock.Any(), itemID).Return(mtx, nil)
				mtx.EXPECT().Stock().Return(int64(5))
				mtx.EXPECT().InsertTransactions(gomock.Any(), gomock.Any()).Return(nil)
				mtx.EXPECT().UpdateItemStock(gomock.Any(), int64(15)).Return(nil)
				mtx.EXPECT().Commit().Return(nil)
				mtx.EXPECT().Rollback().Return(errors.New("already committed"))
			},
		},
		{
			name: "OutboundExactlyDrainsStock",
			params: ledger.RecordParams{
				ItemID:   itemID,
				Type:     ledger.TypeOut,
				Quantity: 5,
			},
			setupMock: func(repo *ledger.MockRepository, mtx *ledger.MockMovementTx) {
				repo.EXPECT().BeginMovement(gomock.Any(), itemID).Return(mtx, nil)
				mtx.EXPECT().Stock().Return(int64(5))
				mtx.EXPECT().InsertTransactions(gomock.Any(), gomock.Any()).Return(nil)
				mtx.EXPECT().UpdateItemStock(gomock.Any(), int64(0)).Return(nil)
				mtx.EXPECT().Commit().Return(nil)
				mtx.EXPECT().Rollback().Return(errors.New("already committed"))
			},
		},
		{
			name: "OutboundBeyondStockWritesNothing",
			params: ledger.RecordParams{
				ItemID:   itemID,
				Type:     ledger.TypeOut,
				Quantity: 6,
			},
			setupMock: func(repo *ledger.MockRepository, mtx *ledger.MockMovementTx) {
				repo.EXPECT().BeginMovement(gomock.Any(), itemID).Return(mtx, nil)
				mtx.EXPECT().Stock().Return(int64(5))
				mtx.EXPECT().Rollback().Return(nil)
			},
			wantErr: ledger.ErrInsufficientStock,
		},
		{
			name: "InvalidTypeRejectedBeforeStore",
			params: ledger.RecordParams{
				ItemID:   itemID,
				Type:     ledger.Type("ADJUST"),
				Quantity: 1,
			},
			setupMock: func(repo *ledger.MockRepository, mtx *ledger.MockMovementTx) {},
			wantErr:   ledger.ErrInvalidType,
		},
		{
			name: "ZeroQuantityRejectedBeforeStore",
			params: ledger.RecordParams{
				ItemID: itemID,
				Type:   ledger.TypeIn,
			},
			setupMock: func(repo *ledger.MockRepository, mtx *ledger.MockMovementTx) {},
			wantErr:   ledger.ErrInvalidQuantity,
		},
		{
			name: "NegativeQuantityRejectedBeforeStore",
			params: ledger.RecordParams{
				ItemID:   itemID,
				Type:     ledger.TypeOut,
				Quantity: -3,
			},
			setupMock: func(repo *ledger.MockRepository, mtx *ledger.MockMovementTx) {},
			wantErr:   ledger.ErrInvalidQuantity,
		},
		{
			name: "UnknownItem",
			params: ledger.RecordParams{
				ItemID:   itemID,
				Type:     ledger.TypeIn,
				Quantity: 1,
			},
			setupMock: func(repo *ledger.MockRepository, mtx *ledger.MockMovementTx) {
				repo.EXPECT().
					BeginMovement(gomock.Any(), itemID).
					Return(nil, ledger.ErrItemNotFound)
			},
			wantErr: ledger.ErrItemNotFound,
		},
		{
			name: "DuplicateIdempotencyKey",
			params: ledger.RecordParams{
				ItemID:         itemID,
				Type:           ledger.TypeIn,
				Quantity:       2,
				IdempotencyKey: "req-42",
			},
			setupMock: func(repo *ledger.MockRepository, mtx *ledger.MockMovementTx) {
				repo.EXPECT().BeginMovement(gomock.Any(), itemID).Return(mtx, nil)
				mtx.EXPECT().Stock().Return(int64(0))
				mtx.EXPECT().
					InsertTransactions(gomock.Any(), gomock.Any()).
					Return(ledger.ErrDuplicateRequest)
				mtx.EXPECT().Rollback().Return(nil)
			},
			wantErr: ledger.ErrDuplicateRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			mtx := ledger.NewMockMovementTx(ctrl)
			tt.setupMock(repo, mtx)

			svc := ledger.NewService(repo, nil)
			got, err := svc.Record(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.params.Type, got.Type)
			assert.Equal(t, tt.params.Quantity, got.Quantity)
			assert.False(t, got.CreatedAt.IsZero())
		})
	}
}

func TestService_Record_Backdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()
	backdate := time.Date(2026, 7, 1, 9, 30, 0, 0, time.UTC)

	repo := ledger.NewMockRepository(ctrl)
	mtx := ledger.NewMockMovementTx(ctrl)

	repo.EXPECT().BeginMovement(gomock.Any(), itemID).Return(mtx, nil)
	mtx.EXPECT().Stock().Return(int64(0))
	mtx.EXPECT().
		InsertTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*ledger.Transaction) error {
			require.Len(t, txs, 1)
			assert.Equal(t, backdate, txs[0].CreatedAt)
			return nil
		})
	mtx.EXPECT().UpdateItemStock(gomock.Any(), int64(4)).Return(nil)
	mtx.EXPECT().Commit().Return(nil)
	mtx.EXPECT().Rollback().Return(errors.New("already committed"))

	svc := ledger.NewService(repo, nil)
	got, err := svc.Record(context.Background(), ledger.RecordParams{
		ItemID:    itemID,
		Type:      ledger.TypeIn,
		Quantity:  4,
		CreatedAt: backdate,
	})
	require.NoError(t, err)
	assert.Equal(t, backdate, got.CreatedAt)
}

func TestService_RecordBatchOutbound(t *testing.T) {
	itemID := uuid.New()

	type testCase struct {
		name      string
		params    ledger.BatchOutboundParams
		setupMock func(repo *ledger.MockRepository, mtx *ledger.MockMovementTx)
		wantErr   error
		wantCount int
	}

	tests := []testCase{
		{
			name: "ThreeRecipientsOfTwo",
			params: ledger.BatchOutboundParams{
				ItemID:       itemID,
				Type:         ledger.TypeOut,
				Quantity:     2,
				Descriptions: []string{"Kim", "Lee", "Park"},
			},
			setupMock: func(repo *ledger.MockRepository, mtx *ledger.MockMovementTx) {
				repo.EXPECT().BeginMovement(gomock.Any(), itemID).Return(mtx, nil)
				mtx.EXPECT().Stock().Return(int64(10))
				mtx.EXPECT().
					InsertTransactions(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, txs []*ledger.Transaction) error {
						require.Len(t, txs, 3)
						for _, tx := range txs {
							assert.Equal(t, ledger.TypeOut, tx.Type)
							assert.Equal(t, int64(2), tx.Quantity)
						}
						assert.Equal(t, "Kim", txs[0].Description)
						assert.Equal(t, "Park", txs[2].Description)
						return nil
					})
				mtx.EXPECT().UpdateItemStock(gomock.Any(), int64(4)).Return(nil)
				mtx.EXPECT().Commit().Return(nil)
				mtx.EXPECT().Rollback().Return(errors.New("already committed"))
			},
			wantCount: 3,
		},
		{
			name: "CombinedTotalBeyondStockWritesNothing",
			params: ledger.BatchOutboundParams{
				ItemID:       itemID,
				Type:         ledger.TypeOut,
				Quantity:     2,
				Descriptions: []string{"Kim", "Lee", "Park"},
			},
			setupMock: func(repo *ledger.MockRepository, mtx *ledger.MockMovementTx) {
				repo.EXPECT().BeginMovement(gomock.Any(), itemID).Return(mtx, nil)
				mtx.EXPECT().Stock().Return(int64(5))
				mtx.EXPECT().Rollback().Return(nil)
			},
			wantErr: ledger.ErrInsufficientStock,
		},
		{
			name: "InboundTypeRejected",
			params: ledger.BatchOutboundParams{
				ItemID:       itemID,
				Type:         ledger.TypeIn,
				Quantity:     1,
				Descriptions: []string{"Kim"},
			},
			setupMock: func(repo *ledger.MockRepository, mtx *ledger.MockMovementTx) {},
			wantErr:   ledger.ErrInvalidType,
		},
		{
			name: "EmptyDescriptionsRejected",
			params: ledger.BatchOutboundParams{
				ItemID:   itemID,
				Type:     ledger.TypeOut,
				Quantity: 1,
			},
			setupMock: func(repo *ledger.MockRepository, mtx *ledger.MockMovementTx) {},
			wantErr:   ledger.ErrEmptyBatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			mtx := ledger.NewMockMovementTx(ctrl)
			tt.setupMock(repo, mtx)

			svc := ledger.NewService(repo, nil)
			got, err := svc.RecordBatchOutbound(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantCount)
		})
	}
}

func TestService_Edit(t *testing.T) {
	itemID := uuid.New()
	txID := uuid.New()

	type testCase struct {
		name      string
		existing  ledger.Transaction
		params    ledger.EditParams
		stock     int64
		wantStock int64
		wantErr   error
	}

	tests := []testCase{
		{
			// stock 10, OUT 3 edited to OUT 7: 10 + 3 - 7 = 6
			name:      "GrowOutbound",
			existing:  ledger.Transaction{ID: txID, ItemID: itemID, Type: ledger.TypeOut, Quantity: 3},
			params:    ledger.EditParams{Quantity: 7, Description: "corrected"},
			stock:     10,
			wantStock: 6,
		},
		{
			// stock 2, IN 5 edited to IN 1: 2 - 5 + 1 = -2
			name:     "ShrinkInboundBelowConsumed",
			existing: ledger.Transaction{ID: txID, ItemID: itemID, Type: ledger.TypeIn, Quantity: 5},
			params:   ledger.EditParams{Quantity: 1},
			stock:    2,
			wantErr:  ledger.ErrInsufficientStock,
		},
		{
			// stock 4, OUT 2 edited to OUT 6: 4 + 2 - 6 = 0
			name:      "GrowOutboundToExactDrain",
			existing:  ledger.Transaction{ID: txID, ItemID: itemID, Type: ledger.TypeOut, Quantity: 2},
			params:    ledger.EditParams{Quantity: 6},
			stock:     4,
			wantStock: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			rtx := ledger.NewMockRevisionTx(ctrl)

			repo.EXPECT().BeginRevision(gomock.Any(), txID).Return(rtx, nil)
			rtx.EXPECT().Transaction().Return(&tt.existing)
			rtx.EXPECT().Stock().Return(tt.stock)

			if tt.wantErr != nil {
				rtx.EXPECT().Rollback().Return(nil)
			} else {
				rtx.EXPECT().
					UpdateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *ledger.Transaction) error {
						assert.Equal(t, tt.existing.Type, tx.Type)
						assert.Equal(t, tt.params.Quantity, tx.Quantity)
						require.NotNil(t, tx.UpdatedAt)
						return nil
					})
				rtx.EXPECT().UpdateItemStock(gomock.Any(), tt.wantStock).Return(nil)
				rtx.EXPECT().Commit().Return(nil)
				rtx.EXPECT().Rollback().Return(errors.New("already committed"))
			}

			svc := ledger.NewService(repo, nil)
			got, err := svc.Edit(context.Background(), txID, tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.existing.Type, got.Type, "type never changes on edit")
			assert.Equal(t, tt.params.Quantity, got.Quantity)
		})
	}
}

func TestService_Edit_Backdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txID := uuid.New()
	backdate := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	repo := ledger.NewMockRepository(ctrl)
	rtx := ledger.NewMockRevisionTx(ctrl)

	existing := &ledger.Transaction{
		ID:        txID,
		ItemID:    uuid.New(),
		Type:      ledger.TypeIn,
		Quantity:  3,
		CreatedAt: time.Now(),
	}

	repo.EXPECT().BeginRevision(gomock.Any(), txID).Return(rtx, nil)
	rtx.EXPECT().Transaction().Return(existing)
	rtx.EXPECT().Stock().Return(int64(3))
	rtx.EXPECT().
		UpdateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *ledger.Transaction) error {
			assert.Equal(t, backdate, tx.CreatedAt)
			return nil
		})
	rtx.EXPECT().UpdateItemStock(gomock.Any(), int64(3)).Return(nil)
	rtx.EXPECT().Commit().Return(nil)
	rtx.EXPECT().Rollback().Return(errors.New("already committed"))

	svc := ledger.NewService(repo, nil)
	got, err := svc.Edit(context.Background(), txID, ledger.EditParams{
		Quantity:  3,
		CreatedAt: &backdate,
	})
	require.NoError(t, err)
	assert.Equal(t, backdate, got.CreatedAt)
}

func TestService_Delete(t *testing.T) {
	itemID := uuid.New()
	txID := uuid.New()

	type testCase struct {
		name      string
		existing  ledger.Transaction
		stock     int64
		wantStock int64
		wantErr   error
	}

	tests := []testCase{
		{
			// stock 2, delete OUT 5: 2 + 5 = 7
			name:      "DeleteOutboundRestoresStock",
			existing:  ledger.Transaction{ID: txID, ItemID: itemID, Type: ledger.TypeOut, Quantity: 5},
			stock:     2,
			wantStock: 7,
		},
		{
			// stock 3, delete IN 5: 3 - 5 = -2
			name:     "DeleteInboundAlreadyConsumed",
			existing: ledger.Transaction{ID: txID, ItemID: itemID, Type: ledger.TypeIn, Quantity: 5},
			stock:    3,
			wantErr:  ledger.ErrInsufficientStock,
		},
		{
			// stock 5, delete IN 5: 5 - 5 = 0
			name:      "DeleteInboundToExactZero",
			existing:  ledger.Transaction{ID: txID, ItemID: itemID, Type: ledger.TypeIn, Quantity: 5},
			stock:     5,
			wantStock: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			rtx := ledger.NewMockRevisionTx(ctrl)

			repo.EXPECT().BeginRevision(gomock.Any(), txID).Return(rtx, nil)
			rtx.EXPECT().Transaction().Return(&tt.existing)
			rtx.EXPECT().Stock().Return(tt.stock)

			if tt.wantErr != nil {
				rtx.EXPECT().Rollback().Return(nil)
			} else {
				rtx.EXPECT().DeleteTransaction(gomock.Any(), txID).Return(nil)
				rtx.EXPECT().UpdateItemStock(gomock.Any(), tt.wantStock).Return(nil)
				rtx.EXPECT().Commit().Return(nil)
				rtx.EXPECT().Rollback().Return(errors.New("already committed"))
			}

			svc := ledger.NewService(repo, nil)
			err := svc.Delete(context.Background(), txID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txID := uuid.New()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		BeginRevision(gomock.Any(), txID).
		Return(nil, ledger.ErrNotFound)

	svc := ledger.NewService(repo, nil)
	err := svc.Delete(context.Background(), txID)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestService_List_ClampsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo, nil)

	repo.EXPECT().
		ListTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter ledger.ListFilter) ([]*ledger.Transaction, error) {
			assert.Equal(t, 50, filter.Limit)
			return nil, nil
		}).
		Times(2)

	_, err := svc.List(context.Background(), ledger.ListFilter{})
	require.NoError(t, err)

	_, err = svc.List(context.Background(), ledger.ListFilter{Limit: 500})
	require.NoError(t, err)
}

func TestService_List_InvalidTypeFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo, nil)

	bad := ledger.Type("TRANSFER")
	_, err := svc.List(context.Background(), ledger.ListFilter{Type: &bad})
	assert.ErrorIs(t, err, ledger.ErrInvalidType)
}

func TestService_InvalidatorNotifiedAfterCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()

	repo := ledger.NewMockRepository(ctrl)
	mtx := ledger.NewMockMovementTx(ctrl)
	inv := ledger.NewMockInvalidator(ctrl)

	repo.EXPECT().BeginMovement(gomock.Any(), itemID).Return(mtx, nil)
	mtx.EXPECT().Stock().Return(int64(0))
	mtx.EXPECT().InsertTransactions(gomock.Any(), gomock.Any()).Return(nil)
	mtx.EXPECT().UpdateItemStock(gomock.Any(), int64(1)).Return(nil)
	mtx.EXPECT().Commit().Return(nil)
	mtx.EXPECT().Rollback().Return(errors.New("already committed"))
	inv.EXPECT().ItemChanged(gomock.Any(), itemID).Return(errors.New("redis down"))

	// An invalidation failure never surfaces to the caller.
	svc := ledger.NewService(repo, inv)
	_, err := svc.Record(context.Background(), ledger.RecordParams{
		ItemID:   itemID,
		Type:     ledger.TypeIn,
		Quantity: 1,
	})
	assert.NoError(t, err)
}
