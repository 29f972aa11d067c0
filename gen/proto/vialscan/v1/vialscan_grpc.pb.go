// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: vialscan/v1/vialscan.proto

package vialscanv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	CaptureService_StartSession_FullMethodName   = "/vialscan.v1.CaptureService/StartSession"
	CaptureService_ScanDocument_FullMethodName   = "/vialscan.v1.CaptureService/ScanDocument"
	CaptureService_GetRecord_FullMethodName      = "/vialscan.v1.CaptureService/GetRecord"
	CaptureService_UpdateField_FullMethodName    = "/vialscan.v1.CaptureService/UpdateField"
	CaptureService_ResolveRx_FullMethodName      = "/vialscan.v1.CaptureService/ResolveRx"
	CaptureService_SetAttestation_FullMethodName = "/vialscan.v1.CaptureService/SetAttestation"
	CaptureService_SaveRecord_FullMethodName     = "/vialscan.v1.CaptureService/SaveRecord"
)

// CaptureServiceClient is the client API for CaptureService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CaptureService drives one vial capture session: scan documents, reconcile
// the prescription number, correct fields, attest, and save.
type CaptureServiceClient interface {
	StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionResponse, error)
	ScanDocument(ctx context.Context, in *ScanDocumentRequest, opts ...grpc.CallOption) (*ScanDocumentResponse, error)
	GetRecord(ctx context.Context, in *GetRecordRequest, opts ...grpc.CallOption) (*GetRecordResponse, error)
	UpdateField(ctx context.Context, in *UpdateFieldRequest, opts ...grpc.CallOption) (*UpdateFieldResponse, error)
	ResolveRx(ctx context.Context, in *ResolveRxRequest, opts ...grpc.CallOption) (*ResolveRxResponse, error)
	SetAttestation(ctx context.Context, in *SetAttestationRequest, opts ...grpc.CallOption) (*SetAttestationResponse, error)
	SaveRecord(ctx context.Context, in *SaveRecordRequest, opts ...grpc.CallOption) (*SaveRecordResponse, error)
}

type captureServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCaptureServiceClient(cc grpc.ClientConnInterface) CaptureServiceClient {
	return &captureServiceClient{cc}
}

func (c *captureServiceClient) StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StartSessionResponse)
	err := c.cc.Invoke(ctx, CaptureService_StartSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *captureServiceClient) ScanDocument(ctx context.Context, in *ScanDocumentRequest, opts ...grpc.CallOption) (*ScanDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScanDocumentResponse)
	err := c.cc.Invoke(ctx, CaptureService_ScanDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *captureServiceClient) GetRecord(ctx context.Context, in *GetRecordRequest, opts ...grpc.CallOption) (*GetRecordResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetRecordResponse)
	err := c.cc.Invoke(ctx, CaptureService_GetRecord_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *captureServiceClient) UpdateField(ctx context.Context, in *UpdateFieldRequest, opts ...grpc.CallOption) (*UpdateFieldResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateFieldResponse)
	err := c.cc.Invoke(ctx, CaptureService_UpdateField_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *captureServiceClient) ResolveRx(ctx context.Context, in *ResolveRxRequest, opts ...grpc.CallOption) (*ResolveRxResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResolveRxResponse)
	err := c.cc.Invoke(ctx, CaptureService_ResolveRx_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *captureServiceClient) SetAttestation(ctx context.Context, in *SetAttestationRequest, opts ...grpc.CallOption) (*SetAttestationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetAttestationResponse)
	err := c.cc.Invoke(ctx, CaptureService_SetAttestation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *captureServiceClient) SaveRecord(ctx context.Context, in *SaveRecordRequest, opts ...grpc.CallOption) (*SaveRecordResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SaveRecordResponse)
	err := c.cc.Invoke(ctx, CaptureService_SaveRecord_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CaptureServiceServer is the server API for CaptureService service.
// All implementations must embed UnimplementedCaptureServiceServer
// for forward compatibility.
//
// CaptureService drives one vial capture session: scan documents, reconcile
// the prescription number, correct fields, attest, and save.
type CaptureServiceServer interface {
	StartSession(context.Context, *StartSessionRequest) (*StartSessionResponse, error)
	ScanDocument(context.Context, *ScanDocumentRequest) (*ScanDocumentResponse, error)
	GetRecord(context.Context, *GetRecordRequest) (*GetRecordResponse, error)
	UpdateField(context.Context, *UpdateFieldRequest) (*UpdateFieldResponse, error)
	ResolveRx(context.Context, *ResolveRxRequest) (*ResolveRxResponse, error)
	SetAttestation(context.Context, *SetAttestationRequest) (*SetAttestationResponse, error)
	SaveRecord(context.Context, *SaveRecordRequest) (*SaveRecordResponse, error)
	mustEmbedUnimplementedCaptureServiceServer()
}

// UnimplementedCaptureServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCaptureServiceServer struct{}

func (UnimplementedCaptureServiceServer) StartSession(context.Context, *StartSessionRequest) (*StartSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartSession not implemented")
}
func (UnimplementedCaptureServiceServer) ScanDocument(context.Context, *ScanDocumentRequest) (*ScanDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScanDocument not implemented")
}
func (UnimplementedCaptureServiceServer) GetRecord(context.Context, *GetRecordRequest) (*GetRecordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRecord not implemented")
}
func (UnimplementedCaptureServiceServer) UpdateField(context.Context, *UpdateFieldRequest) (*UpdateFieldResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateField not implemented")
}
func (UnimplementedCaptureServiceServer) ResolveRx(context.Context, *ResolveRxRequest) (*ResolveRxResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveRx not implemented")
}
func (UnimplementedCaptureServiceServer) SetAttestation(context.Context, *SetAttestationRequest) (*SetAttestationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetAttestation not implemented")
}
func (UnimplementedCaptureServiceServer) SaveRecord(context.Context, *SaveRecordRequest) (*SaveRecordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveRecord not implemented")
}
func (UnimplementedCaptureServiceServer) mustEmbedUnimplementedCaptureServiceServer() {}
func (UnimplementedCaptureServiceServer) testEmbeddedByValue()                        {}

// UnsafeCaptureServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CaptureServiceServer will
// result in compilation errors.
type UnsafeCaptureServiceServer interface {
	mustEmbedUnimplementedCaptureServiceServer()
}

func RegisterCaptureServiceServer(s grpc.ServiceRegistrar, srv CaptureServiceServer) {
	// If the following call pancis, it indicates UnimplementedCaptureServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CaptureService_ServiceDesc, srv)
}

func _CaptureService_StartSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptureServiceServer).StartSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptureService_StartSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptureServiceServer).StartSession(ctx, req.(*StartSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaptureService_ScanDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScanDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptureServiceServer).ScanDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptureService_ScanDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptureServiceServer).ScanDocument(ctx, req.(*ScanDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaptureService_GetRecord_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptureServiceServer).GetRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptureService_GetRecord_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptureServiceServer).GetRecord(ctx, req.(*GetRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaptureService_UpdateField_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateFieldRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptureServiceServer).UpdateField(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptureService_UpdateField_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptureServiceServer).UpdateField(ctx, req.(*UpdateFieldRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaptureService_ResolveRx_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveRxRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptureServiceServer).ResolveRx(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptureService_ResolveRx_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptureServiceServer).ResolveRx(ctx, req.(*ResolveRxRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaptureService_SetAttestation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetAttestationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptureServiceServer).SetAttestation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptureService_SetAttestation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptureServiceServer).SetAttestation(ctx, req.(*SetAttestationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CaptureService_SaveRecord_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CaptureServiceServer).SaveRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CaptureService_SaveRecord_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CaptureServiceServer).SaveRecord(ctx, req.(*SaveRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CaptureService_ServiceDesc is the grpc.ServiceDesc for CaptureService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CaptureService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "vialscan.v1.CaptureService",
	HandlerType: (*CaptureServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StartSession",
			Handler:    _CaptureService_StartSession_Handler,
		},
		{
			MethodName: "ScanDocument",
			Handler:    _CaptureService_ScanDocument_Handler,
		},
		{
			MethodName: "GetRecord",
			Handler:    _CaptureService_GetRecord_Handler,
		},
		{
			MethodName: "UpdateField",
			Handler:    _CaptureService_UpdateField_Handler,
		},
		{
			MethodName: "ResolveRx",
			Handler:    _CaptureService_ResolveRx_Handler,
		},
		{
			MethodName: "SetAttestation",
			Handler:    _CaptureService_SetAttestation_Handler,
		},
		{
			MethodName: "SaveRecord",
			Handler:    _CaptureService_SaveRecord_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vialscan/v1/vialscan.proto",
}

const (
	InventoryService_ListVials_FullMethodName   = "/vialscan.v1.InventoryService/ListVials"
	InventoryService_ExportVials_FullMethodName = "/vialscan.v1.InventoryService/ExportVials"
)

// InventoryServiceClient is the client API for InventoryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// InventoryService reads back saved vials.
type InventoryServiceClient interface {
	ListVials(ctx context.Context, in *ListVialsRequest, opts ...grpc.CallOption) (*ListVialsResponse, error)
	ExportVials(ctx context.Context, in *ExportVialsRequest, opts ...grpc.CallOption) (*ExportVialsResponse, error)
}

type inventoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryServiceClient(cc grpc.ClientConnInterface) InventoryServiceClient {
	return &inventoryServiceClient{cc}
}

func (c *inventoryServiceClient) ListVials(ctx context.Context, in *ListVialsRequest, opts ...grpc.CallOption) (*ListVialsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListVialsResponse)
	err := c.cc.Invoke(ctx, InventoryService_ListVials_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryServiceClient) ExportVials(ctx context.Context, in *ExportVialsRequest, opts ...grpc.CallOption) (*ExportVialsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportVialsResponse)
	err := c.cc.Invoke(ctx, InventoryService_ExportVials_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InventoryServiceServer is the server API for InventoryService service.
// All implementations must embed UnimplementedInventoryServiceServer
// for forward compatibility.
//
// InventoryService reads back saved vials.
type InventoryServiceServer interface {
	ListVials(context.Context, *ListVialsRequest) (*ListVialsResponse, error)
	ExportVials(context.Context, *ExportVialsRequest) (*ExportVialsResponse, error)
	mustEmbedUnimplementedInventoryServiceServer()
}

// UnimplementedInventoryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInventoryServiceServer struct{}

func (UnimplementedInventoryServiceServer) ListVials(context.Context, *ListVialsRequest) (*ListVialsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListVials not implemented")
}
func (UnimplementedInventoryServiceServer) ExportVials(context.Context, *ExportVialsRequest) (*ExportVialsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportVials not implemented")
}
func (UnimplementedInventoryServiceServer) mustEmbedUnimplementedInventoryServiceServer() {}
func (UnimplementedInventoryServiceServer) testEmbeddedByValue()                          {}

// UnsafeInventoryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InventoryServiceServer will
// result in compilation errors.
type UnsafeInventoryServiceServer interface {
	mustEmbedUnimplementedInventoryServiceServer()
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	// If the following call pancis, it indicates UnimplementedInventoryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InventoryService_ServiceDesc, srv)
}

func _InventoryService_ListVials_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListVialsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ListVials(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_ListVials_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).ListVials(ctx, req.(*ListVialsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryService_ExportVials_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportVialsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryServiceServer).ExportVials(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryService_ExportVials_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryServiceServer).ExportVials(ctx, req.(*ExportVialsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InventoryService_ServiceDesc is the grpc.ServiceDesc for InventoryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InventoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "vialscan.v1.InventoryService",
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListVials",
			Handler:    _InventoryService_ListVials_Handler,
		},
		{
			MethodName: "ExportVials",
			Handler:    _InventoryService_ExportVials_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vialscan/v1/vialscan.proto",
}
