package grpc

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	marketv1 "github.com/simaogato/marketfolio-backend/internal/adapter/grpc/market/v1"
	"github.com/simaogato/marketfolio-backend/internal/domain"
	"github.com/simaogato/marketfolio-backend/internal/usecase/dashboard"
	"github.com/simaogato/marketfolio-backend/internal/usecase/investment"
	"github.com/simaogato/marketfolio-backend/internal/usecase/market"
)

// Server implements the MarketService gRPC server
type Server struct {
	marketv1.UnimplementedMarketServiceServer

	MarketService     *market.MarketService
	InvestmentService *investment.InvestmentService
	DashboardService  *dashboard.DashboardService

	validate *validator.Validate
}

// NewServer creates a new gRPC server instance
func NewServer(
	marketService *market.MarketService,
	investmentService *investment.InvestmentService,
	dashboardService *dashboard.DashboardService,
) *Server {
	return &Server{
		MarketService:     marketService,
		InvestmentService: investmentService,
		DashboardService:  dashboardService,
		validate:          validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateAccount handles the CreateAccount RPC
func (s *Server) CreateAccount(ctx context.Context, req *marketv1.CreateAccountRequest) (*marketv1.CreateAccountResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	account, err := s.MarketService.CreateAccount(ctx, req.Name)
	if err != nil {
		return nil, mapError(err)
	}

	return &marketv1.CreateAccountResponse{AccountId: account.ID.String()}, nil
}

// GetMarket handles the GetMarket RPC
func (s *Server) GetMarket(ctx context.Context, req *marketv1.GetMarketRequest) (*marketv1.GetMarketResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	accountID, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	m, err := s.MarketService.GetMarket(ctx, accountID)
	if err != nil {
		return nil, mapError(err)
	}

	return &marketv1.GetMarketResponse{Market: toMarketMessage(m)}, nil
}

// AddEntry handles the AddEntry RPC
func (s *Server) AddEntry(ctx context.Context, req *marketv1.AddEntryRequest) (*marketv1.AddEntryResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	accountID, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	entry, err := parseEntry(req.EntryId, req.BoughtPrice, req.Quantity)
	if err != nil {
		return nil, err
	}

	created, err := s.MarketService.AddEntry(ctx, accountID, domain.ItemID(req.ItemId), entry)
	if err != nil {
		return nil, mapError(err)
	}

	return &marketv1.AddEntryResponse{Entry: toEntryMessage(created)}, nil
}

// EditEntry handles the EditEntry RPC
func (s *Server) EditEntry(ctx context.Context, req *marketv1.EditEntryRequest) (*marketv1.EditEntryResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	accountID, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	entry, err := parseEntry(req.EntryId, req.BoughtPrice, req.Quantity)
	if err != nil {
		return nil, err
	}

	if err := s.MarketService.EditEntry(ctx, accountID, domain.ItemID(req.ItemId), entry); err != nil {
		return nil, mapError(err)
	}

	return &marketv1.EditEntryResponse{}, nil
}

// RemoveEntry handles the RemoveEntry RPC
func (s *Server) RemoveEntry(ctx context.Context, req *marketv1.RemoveEntryRequest) (*marketv1.RemoveEntryResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	accountID, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	if err := s.MarketService.RemoveEntry(ctx, accountID, domain.ItemID(req.ItemId), req.EntryId); err != nil {
		return nil, mapError(err)
	}

	return &marketv1.RemoveEntryResponse{}, nil
}

// ToggleWishlist handles the ToggleWishlist RPC
func (s *Server) ToggleWishlist(ctx context.Context, req *marketv1.ToggleWishlistRequest) (*marketv1.ToggleWishlistResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	accountID, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	wishlisted, err := s.MarketService.ToggleWishlist(ctx, accountID, domain.ItemID(req.ItemId))
	if err != nil {
		return nil, mapError(err)
	}

	return &marketv1.ToggleWishlistResponse{Wishlisted: wishlisted}, nil
}

// OpenAddModal handles the OpenAddModal RPC
func (s *Server) OpenAddModal(ctx context.Context, req *marketv1.OpenAddModalRequest) (*marketv1.ModalResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	accountID, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	state, err := s.MarketService.OpenAddModal(ctx, accountID, domain.ItemID(req.ItemId))
	if err != nil {
		return nil, mapError(err)
	}

	return &marketv1.ModalResponse{Modal: toModalMessage(state)}, nil
}

// OpenEditModal handles the OpenEditModal RPC
func (s *Server) OpenEditModal(ctx context.Context, req *marketv1.OpenEditModalRequest) (*marketv1.ModalResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	accountID, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	state, err := s.MarketService.OpenEditModal(ctx, accountID, domain.ItemID(req.ItemId), req.EntryId)
	if err != nil {
		return nil, mapError(err)
	}

	return &marketv1.ModalResponse{Modal: toModalMessage(state)}, nil
}

// CloseModal handles the CloseModal RPC
func (s *Server) CloseModal(ctx context.Context, req *marketv1.CloseModalRequest) (*marketv1.ModalResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	accountID, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	s.MarketService.CloseModal(accountID)
	return &marketv1.ModalResponse{Modal: toModalMessage(s.MarketService.Modal(accountID))}, nil
}

// GetModal handles the GetModal RPC
func (s *Server) GetModal(ctx context.Context, req *marketv1.GetModalRequest) (*marketv1.ModalResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	accountID, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	return &marketv1.ModalResponse{Modal: toModalMessage(s.MarketService.Modal(accountID))}, nil
}

// SubmitModal handles the SubmitModal RPC
func (s *Server) SubmitModal(ctx context.Context, req *marketv1.SubmitModalRequest) (*marketv1.SubmitModalResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	accountID, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	// The entry ID comes from the modal state, not from the request
	values, err := parseEntry("", req.BoughtPrice, req.Quantity)
	if err != nil {
		return nil, err
	}

	entry, err := s.MarketService.SubmitModal(ctx, accountID, values.BoughtPrice, values.Quantity)
	if err != nil {
		return nil, mapError(err)
	}

	return &marketv1.SubmitModalResponse{Entry: toEntryMessage(entry)}, nil
}

// ListInvestmentRows handles the ListInvestmentRows RPC
func (s *Server) ListInvestmentRows(ctx context.Context, req *marketv1.ListInvestmentRowsRequest) (*marketv1.ListInvestmentRowsResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	accountID, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	rows, err := s.InvestmentService.ListInvestmentRows(ctx, accountID, language(req.Language))
	if err != nil {
		return nil, mapError(err)
	}

	resp := &marketv1.ListInvestmentRowsResponse{
		Rows: make([]*marketv1.InvestmentRow, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, toRowMessage(row))
	}
	return resp, nil
}

// GetInvestmentRow handles the GetInvestmentRow RPC
func (s *Server) GetInvestmentRow(ctx context.Context, req *marketv1.GetInvestmentRowRequest) (*marketv1.GetInvestmentRowResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	accountID, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	row, err := s.InvestmentService.GetInvestmentRow(ctx, accountID, domain.ItemID(req.ItemId), language(req.Language))
	if err != nil {
		return nil, mapError(err)
	}

	return &marketv1.GetInvestmentRowResponse{Row: toRowMessage(*row)}, nil
}

// ListItems handles the ListItems RPC
func (s *Server) ListItems(ctx context.Context, req *marketv1.ListItemsRequest) (*marketv1.ListItemsResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	accountID, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	items, err := s.MarketService.ListCatalog(ctx, accountID)
	if err != nil {
		return nil, mapError(err)
	}

	lang := language(req.Language)
	resp := &marketv1.ListItemsResponse{
		Items: make([]*marketv1.CatalogItem, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, toCatalogItemMessage(item, lang))
	}
	return resp, nil
}

// GetPortfolioSummary handles the GetPortfolioSummary RPC
func (s *Server) GetPortfolioSummary(ctx context.Context, req *marketv1.GetPortfolioSummaryRequest) (*marketv1.GetPortfolioSummaryResponse, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	accountID, err := parseAccountID(req.AccountId)
	if err != nil {
		return nil, err
	}

	summary, err := s.DashboardService.GetPortfolioSummary(ctx, accountID)
	if err != nil {
		return nil, mapError(err)
	}

	return &marketv1.GetPortfolioSummaryResponse{
		BoughtTotal:        summary.BoughtTotal.String(),
		GainTotal:          summary.GainTotal.String(),
		GainPercent:        nullString(summary.GainPercent),
		PricedCount:        int32(summary.PricedCount),
		PendingCount:       int32(summary.PendingCount),
		BoughtTotalDisplay: investment.FormatAmount(summary.BoughtTotal),
		GainTotalDisplay:   investment.FormatAmount(summary.GainTotal),
	}, nil
}

// check validates the struct tags of a request
func (s *Server) check(req any) error {
	if err := s.validate.Struct(req); err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}
	return nil
}

func language(lang string) string {
	if lang == "" {
		return domain.DefaultLanguage
	}
	return lang
}

func parseAccountID(id string) (uuid.UUID, error) {
	accountID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid account_id format: %v", err)
	}
	return accountID, nil
}

// parseEntry builds a domain entry from the decimal strings of a request
func parseEntry(id, boughtPrice, quantity string) (domain.InvestmentEntry, error) {
	price, err := decimal.NewFromString(boughtPrice)
	if err != nil {
		return domain.InvestmentEntry{}, status.Errorf(codes.InvalidArgument, "invalid bought_price format: %v", err)
	}

	qty, err := decimal.NewFromString(quantity)
	if err != nil {
		return domain.InvestmentEntry{}, status.Errorf(codes.InvalidArgument, "invalid quantity format: %v", err)
	}

	return domain.InvestmentEntry{ID: id, BoughtPrice: price, Quantity: qty}, nil
}

// mapError maps domain errors to gRPC status codes
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrInvestmentNotFound),
		errors.Is(err, domain.ErrEntryNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidEntry), errors.Is(err, domain.ErrInvalidAccount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrDuplicateEntry):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrModalClosed):
		return status.Error(codes.FailedPrecondition, err.Error())
	}

	log.Printf("internal error: %v", err)
	return status.Error(codes.Internal, "internal server error")
}
