package grpc

// proto.go defines the gRPC server interface derived from bmb/finance/v1/finance.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is run,
// replace this file with the import from github.com/riderbookmybike-blip/bookmy.bike-sub007/api/gen/go/bmb/finance/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/application/dto"
)

// Wire messages. The JSON codec serialises the DTOs directly, mirroring the
// field layout the proto definitions will carry.
type (
	CreateSchemeRequest     = dto.CreateSchemeRequest
	UpdateSchemeRequest     = dto.UpdateSchemeRequest
	GetSchemeRequest        = dto.GetSchemeRequest
	ListSchemesRequest      = dto.ListSchemesRequest
	ActivateSchemeRequest   = dto.ActivateSchemeRequest
	DeactivateSchemeRequest = dto.DeactivateSchemeRequest
	SimulateSchemeRequest   = dto.SimulateSchemeRequest
	SchemeResponse          = dto.SchemeResponse
	ListSchemesResponse     = dto.ListSchemesResponse
	SimulationResponse      = dto.SimulationResponse
)

// FinanceServiceServer is the server API for FinanceService.
// It mirrors the proto-generated interface from bmb.finance.v1.FinanceService.
type FinanceServiceServer interface {
	CreateScheme(context.Context, *CreateSchemeRequest) (*SchemeResponse, error)
	UpdateScheme(context.Context, *UpdateSchemeRequest) (*SchemeResponse, error)
	GetScheme(context.Context, *GetSchemeRequest) (*SchemeResponse, error)
	ListSchemes(context.Context, *ListSchemesRequest) (*ListSchemesResponse, error)
	ActivateScheme(context.Context, *ActivateSchemeRequest) (*SchemeResponse, error)
	DeactivateScheme(context.Context, *DeactivateSchemeRequest) (*SchemeResponse, error)
	SimulateScheme(context.Context, *SimulateSchemeRequest) (*SimulationResponse, error)
	mustEmbedUnimplementedFinanceServiceServer()
}

// UnimplementedFinanceServiceServer provides forward-compatible default implementations.
type UnimplementedFinanceServiceServer struct{}

func (UnimplementedFinanceServiceServer) CreateScheme(context.Context, *CreateSchemeRequest) (*SchemeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateScheme not implemented")
}
func (UnimplementedFinanceServiceServer) UpdateScheme(context.Context, *UpdateSchemeRequest) (*SchemeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateScheme not implemented")
}
func (UnimplementedFinanceServiceServer) GetScheme(context.Context, *GetSchemeRequest) (*SchemeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetScheme not implemented")
}
func (UnimplementedFinanceServiceServer) ListSchemes(context.Context, *ListSchemesRequest) (*ListSchemesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSchemes not implemented")
}
func (UnimplementedFinanceServiceServer) ActivateScheme(context.Context, *ActivateSchemeRequest) (*SchemeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ActivateScheme not implemented")
}
func (UnimplementedFinanceServiceServer) DeactivateScheme(context.Context, *DeactivateSchemeRequest) (*SchemeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeactivateScheme not implemented")
}
func (UnimplementedFinanceServiceServer) SimulateScheme(context.Context, *SimulateSchemeRequest) (*SimulationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SimulateScheme not implemented")
}
func (UnimplementedFinanceServiceServer) mustEmbedUnimplementedFinanceServiceServer() {}

// RegisterFinanceServiceServer registers the FinanceServiceServer with the gRPC server.
func RegisterFinanceServiceServer(s *grpclib.Server, srv FinanceServiceServer) {
	s.RegisterService(&_FinanceService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _FinanceService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "bmb.finance.v1.FinanceService",
	HandlerType: (*FinanceServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreateScheme", Handler: _FinanceService_CreateScheme_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "UpdateScheme", Handler: _FinanceService_UpdateScheme_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "GetScheme", Handler: _FinanceService_GetScheme_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "ListSchemes", Handler: _FinanceService_ListSchemes_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "ActivateScheme", Handler: _FinanceService_ActivateScheme_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "DeactivateScheme", Handler: _FinanceService_DeactivateScheme_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "SimulateScheme", Handler: _FinanceService_SimulateScheme_Handler},     //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _FinanceService_CreateScheme_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateSchemeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinanceServiceServer).CreateScheme(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bmb.finance.v1.FinanceService/CreateScheme",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinanceServiceServer).CreateScheme(ctx, req.(*CreateSchemeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinanceService_UpdateScheme_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateSchemeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinanceServiceServer).UpdateScheme(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bmb.finance.v1.FinanceService/UpdateScheme",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinanceServiceServer).UpdateScheme(ctx, req.(*UpdateSchemeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinanceService_GetScheme_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSchemeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinanceServiceServer).GetScheme(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bmb.finance.v1.FinanceService/GetScheme",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinanceServiceServer).GetScheme(ctx, req.(*GetSchemeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinanceService_ListSchemes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSchemesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinanceServiceServer).ListSchemes(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bmb.finance.v1.FinanceService/ListSchemes",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinanceServiceServer).ListSchemes(ctx, req.(*ListSchemesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinanceService_ActivateScheme_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ActivateSchemeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinanceServiceServer).ActivateScheme(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bmb.finance.v1.FinanceService/ActivateScheme",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinanceServiceServer).ActivateScheme(ctx, req.(*ActivateSchemeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinanceService_DeactivateScheme_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeactivateSchemeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinanceServiceServer).DeactivateScheme(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bmb.finance.v1.FinanceService/DeactivateScheme",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinanceServiceServer).DeactivateScheme(ctx, req.(*DeactivateSchemeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _FinanceService_SimulateScheme_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SimulateSchemeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinanceServiceServer).SimulateScheme(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/bmb.finance.v1.FinanceService/SimulateScheme",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FinanceServiceServer).SimulateScheme(ctx, req.(*SimulateSchemeRequest))
	}
	return interceptor(ctx, in, info, handler)
}
