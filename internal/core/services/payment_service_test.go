package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/produce_ledger/internal/core/ports/services"
	"github.com/SscSPs/produce_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPaymentRepository
	service  portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPaymentRepository)
	suite.service = services.NewPaymentService(suite.mockRepo, services.WithClock(fixedClock))
}

func (suite *PaymentServiceTestSuite) TestApplyCharge_AdjustsBalance() {
	ctx := context.Background()
	updated := &domain.PendingPayment{VendorName: "B", TotalDueAmount: decimal.NewFromInt(125), LastTransactionDate: "2024-01-01"}
	suite.mockRepo.On("AdjustPendingBalance", ctx, "B", decimalEq(decimal.NewFromInt(125)), "2024-01-01").
		Return(updated, decimal.Zero, nil).Once()

	err := suite.service.ApplyCharge(ctx, "  B ", decimal.NewFromInt(125), "2024-01-01")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestApplyCharge_ReversalForUnknownVendorIsNoop() {
	ctx := context.Background()
	suite.mockRepo.On("AdjustPendingBalance", ctx, "Ghost", decimalEq(decimal.NewFromInt(-50)), "2024-01-01").
		Return(nil, decimal.Zero, apperrors.ErrNotFound).Once()

	err := suite.service.ApplyCharge(ctx, "Ghost", decimal.NewFromInt(-50), "2024-01-01")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePendingPayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestApplyCharge_RejectsMalformedDate() {
	ctx := context.Background()

	for _, date := range []string{"not-a-date", "", "2024-13-01", "01/02/2024"} {
		err := suite.service.ApplyCharge(ctx, "B", decimal.NewFromInt(10), date)
		suite.ErrorIs(err, apperrors.ErrValidation, date)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "AdjustPendingBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestApplyCharge_RequiresVendor() {
	err := suite.service.ApplyCharge(context.Background(), "   ", decimal.NewFromInt(10), "2024-01-01")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "AdjustPendingBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestApplyCharge_StoreError() {
	ctx := context.Background()
	suite.mockRepo.On("AdjustPendingBalance", ctx, "B", mock.Anything, "2024-01-01").
		Return(nil, decimal.Zero, apperrors.NewStoreError("boom", errors.New("conn reset"))).Once()

	err := suite.service.ApplyCharge(ctx, "B", decimal.NewFromInt(10), "2024-01-01")

	suite.ErrorIs(err, apperrors.ErrStore)
}

func (suite *PaymentServiceTestSuite) TestRecordPaymentReceived() {
	ctx := context.Background()

	_, err := suite.service.RecordPaymentReceived(ctx, "B", decimal.Zero)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.On("AdjustPendingBalance", ctx, "Nobody", decimalEq(decimal.NewFromInt(-10)), "2024-01-01").
		Return(nil, decimal.Zero, apperrors.ErrNotFound).Once()
	updated, err := suite.service.RecordPaymentReceived(ctx, "Nobody", decimal.NewFromInt(10))
	suite.Require().NoError(err)
	suite.Nil(updated)

	after := &domain.PendingPayment{VendorName: "B", TotalDueAmount: decimal.NewFromInt(25), LastTransactionDate: "2024-01-01"}
	suite.mockRepo.On("AdjustPendingBalance", ctx, "B", decimalEq(decimal.NewFromInt(-100)), "2024-01-01").
		Return(after, decimal.NewFromInt(125), nil).Once()

	updated, err = suite.service.RecordPaymentReceived(ctx, "B", decimal.NewFromInt(100))
	suite.Require().NoError(err)
	suite.True(updated.TotalDueAmount.Equal(decimal.NewFromInt(25)))
	suite.Equal("2024-01-01", updated.LastTransactionDate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPaymentReceived_Overpayment() {
	ctx := context.Background()
	after := &domain.PendingPayment{VendorName: "B", TotalDueAmount: decimal.Zero, LastTransactionDate: "2024-01-01"}
	suite.mockRepo.On("AdjustPendingBalance", ctx, "B", decimalEq(decimal.NewFromInt(-500)), "2024-01-01").
		Return(after, decimal.NewFromInt(30), nil).Once()

	updated, err := suite.service.RecordPaymentReceived(ctx, "B", decimal.NewFromInt(500))

	suite.Require().NoError(err)
	suite.True(updated.TotalDueAmount.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
