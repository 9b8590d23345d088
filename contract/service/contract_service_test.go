package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	dalMocks "github.com/gigfolio/console-api/contract/dal/mocks"
	"github.com/gigfolio/console-api/contract/domain"
	firmaMocks "github.com/gigfolio/console-api/firma/service/mocks"
	"github.com/gigfolio/console-api/logger"
)

type contractServiceFields struct {
	dal   *dalMocks.Contracts
	firma *firmaMocks.FirmaService
}

func TestContractService_Send(t *testing.T) {
	ctx := context.Background()

	var (
		contractID = "contract-id"
		firmaID    = "firma-id"
		testError  = errors.New("test error")
		snapshot   = map[string]interface{}{"id": firmaID, "status": "draft"}
	)

	type args struct {
		contractID string
	}

	tests := []struct {
		name        string
		args        args
		on          func(*contractServiceFields)
		wantErr     error
		wantSendErr *domain.SendError
	}{
		{
			name: "missing contract id",
			args: args{contractID: ""},

			wantErr: domain.ErrMissingContractID,
		},
		{
			name: "contract not found",
			args: args{contractID: contractID},
			on: func(f *contractServiceFields) {
				f.dal.On("Get", ctx, contractID).Return(nil, domain.ErrContractNotFound)
			},
			wantErr: domain.ErrContractNotFound,
		},
		{
			name: "send uses the stored firma id",
			args: args{contractID: contractID},
			on: func(f *contractServiceFields) {
				f.dal.On("Get", ctx, contractID).
					Return(&domain.Contract{ID: contractID, FirmaID: firmaID}, nil)
				f.firma.On("GetSigningRequest", ctx, firmaID).Return(snapshot, nil)
				f.firma.On("SendSigningRequest", ctx, firmaID).Return(nil)
			},
		},
		{
			name: "store unavailable falls back to the local id",
			args: args{contractID: contractID},
			on: func(f *contractServiceFields) {
				f.dal.On("Get", ctx, contractID).Return(nil, testError)
				f.firma.On("GetSigningRequest", ctx, contractID).Return(nil, testError)
				f.firma.On("SendSigningRequest", ctx, contractID).Return(nil)
			},
		},
		{
			name: "send failure carries the fetched snapshot",
			args: args{contractID: contractID},
			on: func(f *contractServiceFields) {
				f.dal.On("Get", ctx, contractID).
					Return(&domain.Contract{ID: contractID, FirmaID: firmaID}, nil)
				f.firma.On("GetSigningRequest", ctx, firmaID).Return(snapshot, nil)
				f.firma.On("SendSigningRequest", ctx, firmaID).Return(testError)
			},
			wantSendErr: &domain.SendError{Err: testError, SigningRequest: snapshot},
		},
		{
			name: "send failure with failed snapshot fetch carries an empty object",
			args: args{contractID: contractID},
			on: func(f *contractServiceFields) {
				f.dal.On("Get", ctx, contractID).
					Return(&domain.Contract{ID: contractID, FirmaID: firmaID}, nil)
				f.firma.On("GetSigningRequest", ctx, firmaID).Return(nil, testError)
				f.firma.On("SendSigningRequest", ctx, firmaID).Return(testError)
			},
			wantSendErr: &domain.SendError{Err: testError, SigningRequest: map[string]interface{}{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := contractServiceFields{
				dal:   &dalMocks.Contracts{},
				firma: &firmaMocks.FirmaService{},
			}

			if tt.on != nil {
				tt.on(&fields)
			}

			s := &ContractService{
				loggerProvider: logger.FromContext,
				dal:            fields.dal,
				firma:          fields.firma,
			}

			err := s.Send(ctx, tt.args.contractID)

			switch {
			case tt.wantSendErr != nil:
				var sendErr *domain.SendError
				assert.True(t, errors.As(err, &sendErr))
				assert.Equal(t, tt.wantSendErr.SigningRequest, sendErr.SigningRequest)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
			}

			fields.dal.AssertExpectations(t)
			fields.firma.AssertExpectations(t)
		})
	}
}

func TestContractService_BackfillOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("missing owner id", func(t *testing.T) {
		s := &ContractService{loggerProvider: logger.FromContext, dal: &dalMocks.Contracts{}}

		_, err := s.BackfillOwner(ctx, "")
		assert.ErrorIs(t, err, domain.ErrMissingOwnerID)
	})

	t.Run("delegates to the dal", func(t *testing.T) {
		dal := &dalMocks.Contracts{}
		dal.On("BackfillOwner", ctx, "owner-id").Return(3, nil)

		s := &ContractService{loggerProvider: logger.FromContext, dal: dal}

		updated, err := s.BackfillOwner(ctx, "owner-id")
		assert.NoError(t, err)
		assert.Equal(t, 3, updated)

		dal.AssertExpectations(t)
	})
}
