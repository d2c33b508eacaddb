package payconfig_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/Yosefnago/emp-backend/internal/payconfig"
	payconfigerrors "github.com/Yosefnago/emp-backend/internal/payconfig/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakePayConfigRepository struct {
	withTxFn           func(tx *sql.Tx) payconfig.Repository
	createFn           func(ctx context.Context, cfg *payconfig.PayConfig) error
	findByPersonalIDFn func(ctx context.Context, username, personalID string) (*payconfig.PayConfig, error)
	findAllByOwnerFn   func(ctx context.Context, username string) ([]payconfig.PayConfig, error)
	updateFn           func(ctx context.Context, cfg *payconfig.PayConfig) error
	deleteFn           func(ctx context.Context, username, personalID string) error
}

func (f *fakePayConfigRepository) WithTx(tx *sql.Tx) payconfig.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePayConfigRepository) Create(ctx context.Context, cfg *payconfig.PayConfig) error {
	if f.createFn != nil {
		return f.createFn(ctx, cfg)
	}
	return nil
}

func (f *fakePayConfigRepository) FindByPersonalID(ctx context.Context, username, personalID string) (*payconfig.PayConfig, error) {
	if f.findByPersonalIDFn != nil {
		return f.findByPersonalIDFn(ctx, username, personalID)
	}
	return nil, nil
}

func (f *fakePayConfigRepository) FindAllByOwner(ctx context.Context, username string) ([]payconfig.PayConfig, error) {
	if f.findAllByOwnerFn != nil {
		return f.findAllByOwnerFn(ctx, username)
	}
	return nil, nil
}

func (f *fakePayConfigRepository) Update(ctx context.Context, cfg *payconfig.PayConfig) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, cfg)
	}
	return nil
}

func (f *fakePayConfigRepository) Delete(ctx context.Context, username, personalID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, username, personalID)
	}
	return nil
}

func newServiceWithMock(t *testing.T, repo payconfig.Repository) (payconfig.Service, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return payconfig.NewService(db, repo), mock
}

func TestPayConfigCreate(t *testing.T) {
	ctx := context.Background()
	req := payconfig.CreatePayConfigRequest{
		PersonalID:   "123456789",
		HourlyRate:   100,
		CreditPoints: 2.25,
		PensionFund:  "Menora",
	}

	t.Run("creates config with money stored as decimal", func(t *testing.T) {
		var saved *payconfig.PayConfig
		repo := &fakePayConfigRepository{
			createFn: func(ctx context.Context, cfg *payconfig.PayConfig) error {
				saved = cfg
				return nil
			},
		}

		svc, mock := newServiceWithMock(t, repo)
		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Create(ctx, "yossi", req)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
		assert.Equal(t, "100.00", resp.HourlyRate)
		assert.Equal(t, "2.25", resp.CreditPoints)

		if assert.NotNil(t, saved) {
			assert.Equal(t, "yossi", saved.Username)
			assert.True(t, saved.HourlyRate.Equal(decimal.RequireFromString("100")))
		}
	})

	t.Run("maps duplicate config to conflict", func(t *testing.T) {
		repo := &fakePayConfigRepository{
			createFn: func(ctx context.Context, cfg *payconfig.PayConfig) error {
				return errors.New(`duplicate key value violates unique constraint "uq_pay_config_owner_personal"`)
			},
		}

		svc, mock := newServiceWithMock(t, repo)
		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.Create(ctx, "yossi", req)

		assert.ErrorIs(t, err, payconfigerrors.ErrPayConfigAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPayConfigGetByPersonalID(t *testing.T) {
	ctx := context.Background()

	t.Run("missing config is a not found error", func(t *testing.T) {
		svc, _ := newServiceWithMock(t, &fakePayConfigRepository{})

		_, err := svc.GetByPersonalID(ctx, "yossi", "000000000")

		assert.ErrorIs(t, err, payconfigerrors.ErrPayConfigNotFound)
	})
}

func TestPayConfigUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("updates only the provided fields", func(t *testing.T) {
		existing := &payconfig.PayConfig{
			Username:     "yossi",
			PersonalID:   "123456789",
			HourlyRate:   decimal.RequireFromString("100"),
			CreditPoints: decimal.RequireFromString("2"),
			PensionFund:  "Menora",
		}

		var updated *payconfig.PayConfig
		repo := &fakePayConfigRepository{
			findByPersonalIDFn: func(ctx context.Context, username, personalID string) (*payconfig.PayConfig, error) {
				return existing, nil
			},
			updateFn: func(ctx context.Context, cfg *payconfig.PayConfig) error {
				updated = cfg
				return nil
			},
		}

		svc, mock := newServiceWithMock(t, repo)
		mock.ExpectBegin()
		mock.ExpectCommit()

		newRate := 120.0
		resp, err := svc.Update(ctx, "yossi", "123456789", payconfig.UpdatePayConfigRequest{HourlyRate: &newRate})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
		assert.Equal(t, "120.00", resp.HourlyRate)
		assert.Equal(t, "2.00", resp.CreditPoints)

		if assert.NotNil(t, updated) {
			assert.Equal(t, "Menora", updated.PensionFund)
		}
	})
}
