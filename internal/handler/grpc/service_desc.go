package grpc

import (
	"context"

	"github.com/MKhiriev/go-leave-tracker/models"
	"google.golang.org/grpc"
)

// LeaveServiceName is the fully-qualified gRPC service name.
const LeaveServiceName = "leave.v1.LeaveService"

// Full method names of the leave service.
const (
	ListLeavesMethod  = "/" + LeaveServiceName + "/ListLeaves"
	CreateLeaveMethod = "/" + LeaveServiceName + "/CreateLeave"
	DeleteLeaveMethod = "/" + LeaveServiceName + "/DeleteLeave"
)

// ListLeavesRequest is the empty request of ListLeaves.
type ListLeavesRequest struct{}

// ListLeavesResponse carries every stored leave request.
type ListLeavesResponse struct {
	Leaves []models.LeaveRequest `json:"leaves"`
}

// LeaveServer is the server API of leave.v1.LeaveService.
type LeaveServer interface {
	ListLeaves(ctx context.Context, req *ListLeavesRequest) (*ListLeavesResponse, error)
	CreateLeave(ctx context.Context, req *models.CreateLeaveRequest) (*models.LeaveRequest, error)
	DeleteLeave(ctx context.Context, req *models.DeleteLeaveRequest) (*models.LeaveRequest, error)
}

// LeaveServiceDesc describes leave.v1.LeaveService for grpc.Server.RegisterService.
var LeaveServiceDesc = grpc.ServiceDesc{
	ServiceName: LeaveServiceName,
	HandlerType: (*LeaveServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListLeaves", Handler: listLeavesHandler},
		{MethodName: "CreateLeave", Handler: createLeaveHandler},
		{MethodName: "DeleteLeave", Handler: deleteLeaveHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "leave/v1/leave.json",
}

func listLeavesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListLeavesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LeaveServer).ListLeaves(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListLeavesMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LeaveServer).ListLeaves(ctx, req.(*ListLeavesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func createLeaveHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.CreateLeaveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LeaveServer).CreateLeave(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CreateLeaveMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LeaveServer).CreateLeave(ctx, req.(*models.CreateLeaveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func deleteLeaveHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.DeleteLeaveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LeaveServer).DeleteLeave(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DeleteLeaveMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LeaveServer).DeleteLeave(ctx, req.(*models.DeleteLeaveRequest))
	}
	return interceptor(ctx, in, info, handler)
}
