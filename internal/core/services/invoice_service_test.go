package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/inmatic/invoices_accounting_app/internal/apperrors"
	"github.com/inmatic/invoices_accounting_app/internal/core/domain"
	portsclients "github.com/inmatic/invoices_accounting_app/internal/core/ports/clients"
	portsrepo "github.com/inmatic/invoices_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/inmatic/invoices_accounting_app/internal/core/ports/services"
	"github.com/inmatic/invoices_accounting_app/internal/core/services"
	"github.com/inmatic/invoices_accounting_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpsertInvoices(ctx context.Context, invoices []domain.Invoice) error {
	args := m.Called(ctx, invoices)
	return args.Error(0)
}

// --- Mock PaymentAPIClient ---
type MockPaymentAPIClient struct {
	mock.Mock
}

var _ portsclients.PaymentAPIClient = (*MockPaymentAPIClient)(nil)

func (m *MockPaymentAPIClient) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockPaymentAPIClient) GetInvoice(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockPaymentAPIClient) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockPaymentAPIClient) UpdateInvoice(ctx context.Context, invoiceID int64, invoice domain.Invoice) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockPaymentAPIClient) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockPaymentAPIClient) FilterInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockPaymentAPIClient) GetAccountingEntries(ctx context.Context, invoiceID int64) ([]domain.AccountingEntry, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingEntry), args.Error(1)
}

// --- Helpers ---

func decimalPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func stringPtr(s string) *string {
	return &s
}

func paidInvoice(id int64) domain.Invoice {
	return domain.Invoice{
		ID:         id,
		Provider:   "Provider A",
		Concept:    "Product Purchase",
		BaseValue:  decimal.NewFromFloat(100.00),
		VAT:        decimal.NewFromFloat(21.00),
		TotalValue: decimal.NewFromFloat(121.00),
		Date:       time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC),
		State:      domain.StatePaid,
	}
}

// --- Test Suite ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockInvoiceRepository
	mockClient *MockPaymentAPIClient
	service    portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.mockClient = new(MockPaymentAPIClient)
	suite.service = services.NewInvoiceService(suite.mockRepo, suite.mockClient)
}

// --- CreateInvoice ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		Provider:   "Provider A",
		Concept:    "Product Purchase",
		BaseValue:  decimalPtr(100.00),
		VAT:        decimalPtr(21.00),
		TotalValue: decimalPtr(121.00),
		Date:       "2025-02-08",
		State:      "pending",
	}

	suite.mockRepo.On("CreateInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Provider == req.Provider &&
			inv.BaseValue.Equal(decimal.NewFromFloat(100.00)) &&
			inv.TotalValue.Equal(decimal.NewFromFloat(121.00)) &&
			inv.State == domain.StatePending &&
			inv.CreatedBy == creatorUserID
	})).Return(&domain.Invoice{ID: 1, Provider: req.Provider, State: domain.StatePending}, nil).Once()

	created, err := suite.service.CreateInvoice(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(int64(1), created.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DefaultsToDraft() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		Provider:   "Provider A",
		Concept:    "Product Purchase",
		BaseValue:  decimalPtr(100.00),
		VAT:        decimalPtr(21.00),
		TotalValue: decimalPtr(121.00),
		Date:       "2025-02-08",
	}

	suite.mockRepo.On("CreateInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.State == domain.StateDraft
	})).Return(&domain.Invoice{ID: 2, State: domain.StateDraft}, nil).Once()

	created, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.StateDraft, created.State)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_TotalMismatchRejected() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		Provider:   "Provider A",
		Concept:    "Product Purchase",
		BaseValue:  decimalPtr(100.00),
		VAT:        decimalPtr(21.00),
		TotalValue: decimalPtr(130.00),
		Date:       "2025-02-08",
	}

	created, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var verrs apperrors.ValidationErrors
	suite.Require().ErrorAs(err, &verrs)
	suite.Contains(verrs, "total_value")

	suite.mockRepo.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ZeroVATAccepted() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		Provider:   "Provider B",
		Concept:    "Exempt Purchase",
		BaseValue:  decimalPtr(50.00),
		VAT:        decimalPtr(0),
		TotalValue: decimalPtr(50.00),
		Date:       "2025-03-01",
	}

	suite.mockRepo.On("CreateInvoice", ctx, mock.AnythingOfType("domain.Invoice")).
		Return(&domain.Invoice{ID: 3}, nil).Once()

	_, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- UpdateInvoice ---

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_TotalOnlyChangeBreaksSum() {
	ctx := context.Background()
	existing := paidInvoice(1)

	suite.mockRepo.On("FindInvoiceByID", ctx, int64(1)).Return(&existing, nil).Once()

	req := dto.UpdateInvoiceRequest{TotalValue: decimalPtr(130.00)}
	updated, err := suite.service.UpdateInvoice(ctx, 1, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_ConsistentChangeSucceeds() {
	ctx := context.Background()
	existing := paidInvoice(1)
	updaterUserID := uuid.NewString()

	suite.mockRepo.On("FindInvoiceByID", ctx, int64(1)).Return(&existing, nil).Once()
	suite.mockRepo.On("UpdateInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.BaseValue.Equal(decimal.NewFromFloat(200.00)) &&
			inv.VAT.Equal(decimal.NewFromFloat(42.00)) &&
			inv.TotalValue.Equal(decimal.NewFromFloat(242.00)) &&
			inv.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	req := dto.UpdateInvoiceRequest{
		BaseValue:  decimalPtr(200.00),
		VAT:        decimalPtr(42.00),
		TotalValue: decimalPtr(242.00),
	}
	updated, err := suite.service.UpdateInvoice(ctx, 1, req, updaterUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.True(updated.TotalValue.Equal(decimal.NewFromFloat(242.00)))
	// Untouched fields keep their persisted values.
	suite.Equal(existing.Provider, updated.Provider)
	suite.Equal(existing.State, updated.State)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_StateTransition() {
	ctx := context.Background()
	existing := paidInvoice(1)
	existing.State = domain.StatePending

	suite.mockRepo.On("FindInvoiceByID", ctx, int64(1)).Return(&existing, nil).Once()
	suite.mockRepo.On("UpdateInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.State == domain.StatePaid
	})).Return(nil).Once()

	req := dto.UpdateInvoiceRequest{State: stringPtr("paid")}
	updated, err := suite.service.UpdateInvoice(ctx, 1, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.StatePaid, updated.State)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindInvoiceByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateInvoice(ctx, 99, dto.UpdateInvoiceRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- DeleteInvoice ---

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_Success() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteInvoice", ctx, int64(1)).Return(nil).Once()

	err := suite.service.DeleteInvoice(ctx, 1)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteInvoice", ctx, int64(99)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteInvoice(ctx, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- ListInvoices / external synchronization ---

func (suite *InvoiceServiceTestSuite) TestListInvoices_LocalDataSkipsUpstream() {
	ctx := context.Background()
	local := []domain.Invoice{paidInvoice(1), paidInvoice(2)}

	suite.mockRepo.On("FindInvoices", ctx, domain.InvoiceFilter{}).Return(local, nil).Once()

	invoices, err := suite.service.ListInvoices(ctx)

	suite.Require().NoError(err)
	suite.Len(invoices, 2)
	suite.mockClient.AssertNotCalled(suite.T(), "ListInvoices", mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_EmptyStoreSyncsFromUpstream() {
	ctx := context.Background()
	fetched := []domain.Invoice{paidInvoice(10), paidInvoice(11)}

	suite.mockRepo.On("FindInvoices", ctx, domain.InvoiceFilter{}).Return([]domain.Invoice{}, nil).Once()
	suite.mockClient.On("ListInvoices", ctx).Return(fetched, nil).Once()
	suite.mockRepo.On("UpsertInvoices", ctx, mock.MatchedBy(func(invs []domain.Invoice) bool {
		return len(invs) == 2 && invs[0].ID == 10 && invs[1].ID == 11
	})).Return(nil).Once()

	invoices, err := suite.service.ListInvoices(ctx)

	suite.Require().NoError(err)
	suite.Len(invoices, 2)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockClient.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_MissingStateDefaultsBeforeMirroring() {
	ctx := context.Background()
	fetched := []domain.Invoice{paidInvoice(10)}
	fetched[0].State = ""

	suite.mockRepo.On("FindInvoices", ctx, domain.InvoiceFilter{}).Return([]domain.Invoice{}, nil).Once()
	suite.mockClient.On("ListInvoices", ctx).Return(fetched, nil).Once()
	suite.mockRepo.On("UpsertInvoices", ctx, mock.MatchedBy(func(invs []domain.Invoice) bool {
		return len(invs) == 1 && invs[0].State == domain.StateDraft
	})).Return(nil).Once()

	invoices, err := suite.service.ListInvoices(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.StateDraft, invoices[0].State)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_InvalidUpstreamRecordRejectsBatch() {
	ctx := context.Background()
	bad := paidInvoice(10)
	bad.TotalValue = decimal.NewFromFloat(999.00)
	fetched := []domain.Invoice{paidInvoice(9), bad}

	suite.mockRepo.On("FindInvoices", ctx, domain.InvoiceFilter{}).Return([]domain.Invoice{}, nil).Once()
	suite.mockClient.On("ListInvoices", ctx).Return(fetched, nil).Once()

	invoices, err := suite.service.ListInvoices(ctx)

	suite.Require().Error(err)
	suite.Nil(invoices)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertInvoices", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_UpstreamFailureSurfaces() {
	ctx := context.Background()
	upstreamErr := apperrors.ErrUpstream

	suite.mockRepo.On("FindInvoices", ctx, domain.InvoiceFilter{}).Return([]domain.Invoice{}, nil).Once()
	suite.mockClient.On("ListInvoices", ctx).Return(nil, upstreamErr).Once()

	invoices, err := suite.service.ListInvoices(ctx)

	suite.Require().Error(err)
	suite.Nil(invoices)
	suite.ErrorIs(err, apperrors.ErrUpstream)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertInvoices", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_NoClientConfigured() {
	ctx := context.Background()
	service := services.NewInvoiceService(suite.mockRepo, nil)

	suite.mockRepo.On("FindInvoices", ctx, domain.InvoiceFilter{}).Return([]domain.Invoice{}, nil).Once()

	invoices, err := service.ListInvoices(ctx)

	suite.Require().NoError(err)
	suite.Empty(invoices)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- FilterInvoices ---

func (suite *InvoiceServiceTestSuite) TestFilterInvoices_ByState() {
	ctx := context.Background()
	paid := domain.StatePaid

	suite.mockRepo.On("FindInvoices", ctx, mock.MatchedBy(func(f domain.InvoiceFilter) bool {
		return f.State != nil && *f.State == paid && f.StartDate == nil && f.EndDate == nil
	})).Return([]domain.Invoice{paidInvoice(1)}, nil).Once()

	invoices, err := suite.service.FilterInvoices(ctx, "paid", "", "")

	suite.Require().NoError(err)
	suite.Len(invoices, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestFilterInvoices_UnknownStateRejected() {
	ctx := context.Background()

	invoices, err := suite.service.FilterInvoices(ctx, "InvalidState", "", "")

	suite.Require().Error(err)
	suite.Nil(invoices)
	suite.ErrorIs(err, apperrors.ErrInvalidFilter)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindInvoices", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestFilterInvoices_DateRangeApplied() {
	ctx := context.Background()

	suite.mockRepo.On("FindInvoices", ctx, mock.MatchedBy(func(f domain.InvoiceFilter) bool {
		return f.StartDate != nil && f.EndDate != nil &&
			f.StartDate.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			f.EndDate.Equal(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	})).Return([]domain.Invoice{}, nil).Once()

	_, err := suite.service.FilterInvoices(ctx, "", "2025-01-01", "2025-12-31")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestFilterInvoices_MalformedDatesIgnored() {
	ctx := context.Background()

	suite.mockRepo.On("FindInvoices", ctx, mock.MatchedBy(func(f domain.InvoiceFilter) bool {
		return f.StartDate == nil && f.EndDate == nil
	})).Return([]domain.Invoice{paidInvoice(1)}, nil).Once()

	invoices, err := suite.service.FilterInvoices(ctx, "", "not-a-date", "2025-12-31")

	suite.Require().NoError(err)
	suite.Len(invoices, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- GenerateAccountingEntries ---

func (suite *InvoiceServiceTestSuite) TestGenerateAccountingEntries_LocalPaidInvoice() {
	ctx := context.Background()
	inv := paidInvoice(1)

	suite.mockRepo.On("FindInvoiceByID", ctx, int64(1)).Return(&inv, nil).Once()

	entries, err := suite.service.GenerateAccountingEntries(ctx, 1)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)
	suite.Equal(domain.Purchases, entries[0].Account)
	suite.True(entries[0].Amount.Equal(decimal.NewFromFloat(100.00)))
	suite.Equal(domain.VATSupported, entries[1].Account)
	suite.True(entries[1].Amount.Equal(decimal.NewFromFloat(21.00)))
	suite.Equal(domain.Suppliers, entries[2].Account)
	suite.True(entries[2].Amount.Equal(decimal.NewFromFloat(121.00)))
	suite.mockClient.AssertNotCalled(suite.T(), "GetAccountingEntries", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestGenerateAccountingEntries_NotPaid() {
	ctx := context.Background()
	inv := paidInvoice(1)
	inv.State = domain.StatePending

	suite.mockRepo.On("FindInvoiceByID", ctx, int64(1)).Return(&inv, nil).Once()

	entries, err := suite.service.GenerateAccountingEntries(ctx, 1)

	suite.Require().Error(err)
	suite.Nil(entries)
	suite.ErrorIs(err, domain.ErrInvoiceNotPaid)
}

func (suite *InvoiceServiceTestSuite) TestGenerateAccountingEntries_FallsBackToUpstream() {
	ctx := context.Background()
	upstream := []domain.AccountingEntry{
		{Account: domain.Purchases, Description: domain.Purchases.Label(), Amount: decimal.NewFromFloat(100)},
		{Account: domain.VATSupported, Description: domain.VATSupported.Label(), Amount: decimal.NewFromFloat(21)},
		{Account: domain.Suppliers, Description: domain.Suppliers.Label(), Amount: decimal.NewFromFloat(121)},
	}

	suite.mockRepo.On("FindInvoiceByID", ctx, int64(42)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClient.On("GetAccountingEntries", ctx, int64(42)).Return(upstream, nil).Once()

	entries, err := suite.service.GenerateAccountingEntries(ctx, 42)

	suite.Require().NoError(err)
	suite.Len(entries, 3)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockClient.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestGenerateAccountingEntries_UnknownEverywhere() {
	ctx := context.Background()

	suite.mockRepo.On("FindInvoiceByID", ctx, int64(42)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClient.On("GetAccountingEntries", ctx, int64(42)).Return(nil, apperrors.ErrNotFound).Once()

	entries, err := suite.service.GenerateAccountingEntries(ctx, 42)

	suite.Require().Error(err)
	suite.Nil(entries)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestGenerateAccountingEntries_NoClientConfigured() {
	ctx := context.Background()
	service := services.NewInvoiceService(suite.mockRepo, nil)

	suite.mockRepo.On("FindInvoiceByID", ctx, int64(42)).Return(nil, apperrors.ErrNotFound).Once()

	entries, err := service.GenerateAccountingEntries(ctx, 42)

	suite.Require().Error(err)
	suite.Nil(entries)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- GetInvoice ---

func (suite *InvoiceServiceTestSuite) TestGetInvoice_Success() {
	ctx := context.Background()
	inv := paidInvoice(7)

	suite.mockRepo.On("FindInvoiceByID", ctx, int64(7)).Return(&inv, nil).Once()

	got, err := suite.service.GetInvoice(ctx, 7)

	suite.Require().NoError(err)
	suite.Equal(int64(7), got.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestGetInvoice_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindInvoiceByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetInvoice(ctx, 99)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
