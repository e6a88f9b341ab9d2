package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "arena.v1alpha1.ArenaService"

// Full method names
const (
	FightFullMethod        = "/" + ServiceName + "/Fight"
	GetBattleFullMethod    = "/" + ServiceName + "/GetBattle"
	VerifyBattleFullMethod = "/" + ServiceName + "/VerifyBattle"
)

// ArenaServiceServer is the server API for the arena service.
// Payloads are google.protobuf.Struct documents shaped like the request and
// response types in messages.go.
type ArenaServiceServer interface {
	Fight(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	VerifyBattle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// RegisterArenaServiceServer registers srv with the gRPC server
func RegisterArenaServiceServer(s grpc.ServiceRegistrar, srv ArenaServiceServer) {
	s.RegisterService(&ArenaServiceDesc, srv)
}

type unaryMethod func(srv ArenaServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ArenaServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ArenaServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ArenaServiceDesc is the grpc.ServiceDesc for the arena service
var ArenaServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ArenaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Fight",
			Handler:    unaryHandler(FightFullMethod, ArenaServiceServer.Fight),
		},
		{
			MethodName: "GetBattle",
			Handler:    unaryHandler(GetBattleFullMethod, ArenaServiceServer.GetBattle),
		},
		{
			MethodName: "VerifyBattle",
			Handler:    unaryHandler(VerifyBattleFullMethod, ArenaServiceServer.VerifyBattle),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "arena/v1alpha1/arena.proto",
}

// ArenaServiceClient is the client API for the arena service
type ArenaServiceClient interface {
	Fight(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetBattle(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	VerifyBattle(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type arenaServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewArenaServiceClient creates a client over an established connection
func NewArenaServiceClient(cc grpc.ClientConnInterface) ArenaServiceClient {
	return &arenaServiceClient{cc: cc}
}

func (c *arenaServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *arenaServiceClient) Fight(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, FightFullMethod, in, opts...)
}

func (c *arenaServiceClient) GetBattle(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetBattleFullMethod, in, opts...)
}

func (c *arenaServiceClient) VerifyBattle(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, VerifyBattleFullMethod, in, opts...)
}
