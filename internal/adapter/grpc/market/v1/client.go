package marketv1

import (
	"context"

	"google.golang.org/grpc"
)

// MarketServiceClient is the client API for MarketService
type MarketServiceClient interface {
	CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*CreateAccountResponse, error)
	GetMarket(ctx context.Context, in *GetMarketRequest, opts ...grpc.CallOption) (*GetMarketResponse, error)
	AddEntry(ctx context.Context, in *AddEntryRequest, opts ...grpc.CallOption) (*AddEntryResponse, error)
	EditEntry(ctx context.Context, in *EditEntryRequest, opts ...grpc.CallOption) (*EditEntryResponse, error)
	RemoveEntry(ctx context.Context, in *RemoveEntryRequest, opts ...grpc.CallOption) (*RemoveEntryResponse, error)
	ToggleWishlist(ctx context.Context, in *ToggleWishlistRequest, opts ...grpc.CallOption) (*ToggleWishlistResponse, error)
	OpenAddModal(ctx context.Context, in *OpenAddModalRequest, opts ...grpc.CallOption) (*ModalResponse, error)
	OpenEditModal(ctx context.Context, in *OpenEditModalRequest, opts ...grpc.CallOption) (*ModalResponse, error)
	CloseModal(ctx context.Context, in *CloseModalRequest, opts ...grpc.CallOption) (*ModalResponse, error)
	GetModal(ctx context.Context, in *GetModalRequest, opts ...grpc.CallOption) (*ModalResponse, error)
	SubmitModal(ctx context.Context, in *SubmitModalRequest, opts ...grpc.CallOption) (*SubmitModalResponse, error)
	ListInvestmentRows(ctx context.Context, in *ListInvestmentRowsRequest, opts ...grpc.CallOption) (*ListInvestmentRowsResponse, error)
	GetInvestmentRow(ctx context.Context, in *GetInvestmentRowRequest, opts ...grpc.CallOption) (*GetInvestmentRowResponse, error)
	ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error)
	GetPortfolioSummary(ctx context.Context, in *GetPortfolioSummaryRequest, opts ...grpc.CallOption) (*GetPortfolioSummaryResponse, error)
}

type marketServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMarketServiceClient creates a client that speaks the JSON codec on cc
func NewMarketServiceClient(cc grpc.ClientConnInterface) MarketServiceClient {
	return &marketServiceClient{cc: cc}
}

func (c *marketServiceClient) CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*CreateAccountResponse, error) {
	return invoke[CreateAccountResponse](ctx, c.cc, "CreateAccount", in, opts)
}

func (c *marketServiceClient) GetMarket(ctx context.Context, in *GetMarketRequest, opts ...grpc.CallOption) (*GetMarketResponse, error) {
	return invoke[GetMarketResponse](ctx, c.cc, "GetMarket", in, opts)
}

func (c *marketServiceClient) AddEntry(ctx context.Context, in *AddEntryRequest, opts ...grpc.CallOption) (*AddEntryResponse, error) {
	return invoke[AddEntryResponse](ctx, c.cc, "AddEntry", in, opts)
}

func (c *marketServiceClient) EditEntry(ctx context.Context, in *EditEntryRequest, opts ...grpc.CallOption) (*EditEntryResponse, error) {
	return invoke[EditEntryResponse](ctx, c.cc, "EditEntry", in, opts)
}

func (c *marketServiceClient) RemoveEntry(ctx context.Context, in *RemoveEntryRequest, opts ...grpc.CallOption) (*RemoveEntryResponse, error) {
	return invoke[RemoveEntryResponse](ctx, c.cc, "RemoveEntry", in, opts)
}

func (c *marketServiceClient) ToggleWishlist(ctx context.Context, in *ToggleWishlistRequest, opts ...grpc.CallOption) (*ToggleWishlistResponse, error) {
	return invoke[ToggleWishlistResponse](ctx, c.cc, "ToggleWishlist", in, opts)
}

func (c *marketServiceClient) OpenAddModal(ctx context.Context, in *OpenAddModalRequest, opts ...grpc.CallOption) (*ModalResponse, error) {
	return invoke[ModalResponse](ctx, c.cc, "OpenAddModal", in, opts)
}

func (c *marketServiceClient) OpenEditModal(ctx context.Context, in *OpenEditModalRequest, opts ...grpc.CallOption) (*ModalResponse, error) {
	return invoke[ModalResponse](ctx, c.cc, "OpenEditModal", in, opts)
}

func (c *marketServiceClient) CloseModal(ctx context.Context, in *CloseModalRequest, opts ...grpc.CallOption) (*ModalResponse, error) {
	return invoke[ModalResponse](ctx, c.cc, "CloseModal", in, opts)
}

func (c *marketServiceClient) GetModal(ctx context.Context, in *GetModalRequest, opts ...grpc.CallOption) (*ModalResponse, error) {
	return invoke[ModalResponse](ctx, c.cc, "GetModal", in, opts)
}

func (c *marketServiceClient) SubmitModal(ctx context.Context, in *SubmitModalRequest, opts ...grpc.CallOption) (*SubmitModalResponse, error) {
	return invoke[SubmitModalResponse](ctx, c.cc, "SubmitModal", in, opts)
}

func (c *marketServiceClient) ListInvestmentRows(ctx context.Context, in *ListInvestmentRowsRequest, opts ...grpc.CallOption) (*ListInvestmentRowsResponse, error) {
	return invoke[ListInvestmentRowsResponse](ctx, c.cc, "ListInvestmentRows", in, opts)
}

func (c *marketServiceClient) GetInvestmentRow(ctx context.Context, in *GetInvestmentRowRequest, opts ...grpc.CallOption) (*GetInvestmentRowResponse, error) {
	return invoke[GetInvestmentRowResponse](ctx, c.cc, "GetInvestmentRow", in, opts)
}

func (c *marketServiceClient) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error) {
	return invoke[ListItemsResponse](ctx, c.cc, "ListItems", in, opts)
}

func (c *marketServiceClient) GetPortfolioSummary(ctx context.Context, in *GetPortfolioSummaryRequest, opts ...grpc.CallOption) (*GetPortfolioSummaryResponse, error) {
	return invoke[GetPortfolioSummaryResponse](ctx, c.cc, "GetPortfolioSummary", in, opts)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
