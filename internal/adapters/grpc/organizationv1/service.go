// Package organizationv1 は api/proto/organization/v1/organization.proto に対応する gRPC のサービス定義です。
// メッセージは protobuf の既知型のみを使うため、サービス記述子を直接定義しています。
package organizationv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName           = "organization.v1.OrganizationService"
	AnalyzeFullMethodName = "/" + ServiceName + "/Analyze"
)

// OrganizationServiceServer はサーバー側の実装が満たすインターフェースです。
type OrganizationServiceServer interface {
	Analyze(ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error)
}

// RegisterOrganizationServiceServer はサービスを登録します。
func RegisterOrganizationServiceServer(s grpc.ServiceRegistrar, srv OrganizationServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// ServiceDesc は OrganizationService の記述子です。
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*OrganizationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Analyze",
			Handler:    analyzeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "organization/v1/organization.proto",
}

func analyzeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrganizationServiceServer).Analyze(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AnalyzeFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(OrganizationServiceServer).Analyze(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// OrganizationServiceClient は OrganizationService のクライアントです。
type OrganizationServiceClient interface {
	Analyze(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type organizationServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewOrganizationServiceClient はクライアントを生成します。
func NewOrganizationServiceClient(cc grpc.ClientConnInterface) OrganizationServiceClient {
	return &organizationServiceClient{cc: cc}
}

func (c *organizationServiceClient) Analyze(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, AnalyzeFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
