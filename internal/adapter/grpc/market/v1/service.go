package marketv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully-qualified gRPC service name
const ServiceName = "marketfolio.market.v1.MarketService"

// MarketServiceServer is the server API for MarketService
type MarketServiceServer interface {
	CreateAccount(context.Context, *CreateAccountRequest) (*CreateAccountResponse, error)
	GetMarket(context.Context, *GetMarketRequest) (*GetMarketResponse, error)
	AddEntry(context.Context, *AddEntryRequest) (*AddEntryResponse, error)
	EditEntry(context.Context, *EditEntryRequest) (*EditEntryResponse, error)
	RemoveEntry(context.Context, *RemoveEntryRequest) (*RemoveEntryResponse, error)
	ToggleWishlist(context.Context, *ToggleWishlistRequest) (*ToggleWishlistResponse, error)
	OpenAddModal(context.Context, *OpenAddModalRequest) (*ModalResponse, error)
	OpenEditModal(context.Context, *OpenEditModalRequest) (*ModalResponse, error)
	CloseModal(context.Context, *CloseModalRequest) (*ModalResponse, error)
	GetModal(context.Context, *GetModalRequest) (*ModalResponse, error)
	SubmitModal(context.Context, *SubmitModalRequest) (*SubmitModalResponse, error)
	ListInvestmentRows(context.Context, *ListInvestmentRowsRequest) (*ListInvestmentRowsResponse, error)
	GetInvestmentRow(context.Context, *GetInvestmentRowRequest) (*GetInvestmentRowResponse, error)
	ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error)
	GetPortfolioSummary(context.Context, *GetPortfolioSummaryRequest) (*GetPortfolioSummaryResponse, error)
}

// UnimplementedMarketServiceServer must be embedded to have forward compatible implementations
type UnimplementedMarketServiceServer struct{}

func (UnimplementedMarketServiceServer) CreateAccount(context.Context, *CreateAccountRequest) (*CreateAccountResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateAccount not implemented")
}
func (UnimplementedMarketServiceServer) GetMarket(context.Context, *GetMarketRequest) (*GetMarketResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMarket not implemented")
}
func (UnimplementedMarketServiceServer) AddEntry(context.Context, *AddEntryRequest) (*AddEntryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddEntry not implemented")
}
func (UnimplementedMarketServiceServer) EditEntry(context.Context, *EditEntryRequest) (*EditEntryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EditEntry not implemented")
}
func (UnimplementedMarketServiceServer) RemoveEntry(context.Context, *RemoveEntryRequest) (*RemoveEntryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveEntry not implemented")
}
func (UnimplementedMarketServiceServer) ToggleWishlist(context.Context, *ToggleWishlistRequest) (*ToggleWishlistResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleWishlist not implemented")
}
func (UnimplementedMarketServiceServer) OpenAddModal(context.Context, *OpenAddModalRequest) (*ModalResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OpenAddModal not implemented")
}
func (UnimplementedMarketServiceServer) OpenEditModal(context.Context, *OpenEditModalRequest) (*ModalResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OpenEditModal not implemented")
}
func (UnimplementedMarketServiceServer) CloseModal(context.Context, *CloseModalRequest) (*ModalResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CloseModal not implemented")
}
func (UnimplementedMarketServiceServer) GetModal(context.Context, *GetModalRequest) (*ModalResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetModal not implemented")
}
func (UnimplementedMarketServiceServer) SubmitModal(context.Context, *SubmitModalRequest) (*SubmitModalResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitModal not implemented")
}
func (UnimplementedMarketServiceServer) ListInvestmentRows(context.Context, *ListInvestmentRowsRequest) (*ListInvestmentRowsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListInvestmentRows not implemented")
}
func (UnimplementedMarketServiceServer) GetInvestmentRow(context.Context, *GetInvestmentRowRequest) (*GetInvestmentRowResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetInvestmentRow not implemented")
}
func (UnimplementedMarketServiceServer) ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListItems not implemented")
}
func (UnimplementedMarketServiceServer) GetPortfolioSummary(context.Context, *GetPortfolioSummaryRequest) (*GetPortfolioSummaryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPortfolioSummary not implemented")
}

// RegisterMarketServiceServer registers srv on s
func RegisterMarketServiceServer(s grpc.ServiceRegistrar, srv MarketServiceServer) {
	s.RegisterService(&MarketService_ServiceDesc, srv)
}

// MarketService_ServiceDesc is the grpc.ServiceDesc for MarketService
var MarketService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MarketServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("CreateAccount", MarketServiceServer.CreateAccount),
		unaryMethod("GetMarket", MarketServiceServer.GetMarket),
		unaryMethod("AddEntry", MarketServiceServer.AddEntry),
		unaryMethod("EditEntry", MarketServiceServer.EditEntry),
		unaryMethod("RemoveEntry", MarketServiceServer.RemoveEntry),
		unaryMethod("ToggleWishlist", MarketServiceServer.ToggleWishlist),
		unaryMethod("OpenAddModal", MarketServiceServer.OpenAddModal),
		unaryMethod("OpenEditModal", MarketServiceServer.OpenEditModal),
		unaryMethod("CloseModal", MarketServiceServer.CloseModal),
		unaryMethod("GetModal", MarketServiceServer.GetModal),
		unaryMethod("SubmitModal", MarketServiceServer.SubmitModal),
		unaryMethod("ListInvestmentRows", MarketServiceServer.ListInvestmentRows),
		unaryMethod("GetInvestmentRow", MarketServiceServer.GetInvestmentRow),
		unaryMethod("ListItems", MarketServiceServer.ListItems),
		unaryMethod("GetPortfolioSummary", MarketServiceServer.GetPortfolioSummary),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "marketfolio/market/v1",
}

// FullMethod returns the gRPC method path of a MarketService method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unaryMethod[Req, Resp any](name string, call func(MarketServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(MarketServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(MarketServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
