package hostgrpc

import (
	"context"

	"google.golang.org/grpc"
)

// serviceName is this service's wire identity, in lieu of a .proto
// package/service declaration.
const serviceName = "colony.host.Engine"

// Server is the narrow interface the generated-style handlers below
// dispatch to; hostServer (server.go) is the real implementation
// wrapping a domain/host.Engine.
type Server interface {
	Terrain(context.Context, *terrainRequest) (*terrainResponse, error)
	Time(context.Context, *empty) (*timeResponse, error)
	DescribeExits(context.Context, *exitsRequest) (*exitsResponse, error)
	SpawnBody(context.Context, *spawnBodyRequest) (*spawnBodyResponse, error)
	MoveAgent(context.Context, *moveAgentRequest) (*empty, error)
	Transfer(context.Context, *transferRequest) (*empty, error)
	Harvest(context.Context, *harvestRequest) (*empty, error)
	Upgrade(context.Context, *upgradeRequest) (*empty, error)
	Build(context.Context, *buildRequest) (*empty, error)
}

// RegisterServer attaches a Server implementation to a grpc.Server.
func RegisterServer(s *grpc.Server, srv Server) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*Server)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Terrain", Handler: methodHandler(func(s Server, ctx context.Context, r *terrainRequest) (any, error) { return s.Terrain(ctx, r) })},
		{MethodName: "Time", Handler: methodHandler(func(s Server, ctx context.Context, r *empty) (any, error) { return s.Time(ctx, r) })},
		{MethodName: "DescribeExits", Handler: methodHandler(func(s Server, ctx context.Context, r *exitsRequest) (any, error) { return s.DescribeExits(ctx, r) })},
		{MethodName: "SpawnBody", Handler: methodHandler(func(s Server, ctx context.Context, r *spawnBodyRequest) (any, error) { return s.SpawnBody(ctx, r) })},
		{MethodName: "MoveAgent", Handler: methodHandler(func(s Server, ctx context.Context, r *moveAgentRequest) (any, error) { return s.MoveAgent(ctx, r) })},
		{MethodName: "Transfer", Handler: methodHandler(func(s Server, ctx context.Context, r *transferRequest) (any, error) { return s.Transfer(ctx, r) })},
		{MethodName: "Harvest", Handler: methodHandler(func(s Server, ctx context.Context, r *harvestRequest) (any, error) { return s.Harvest(ctx, r) })},
		{MethodName: "Upgrade", Handler: methodHandler(func(s Server, ctx context.Context, r *upgradeRequest) (any, error) { return s.Upgrade(ctx, r) })},
		{MethodName: "Build", Handler: methodHandler(func(s Server, ctx context.Context, r *buildRequest) (any, error) { return s.Build(ctx, r) })},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hostgrpc.service",
}

func methodHandler[Req any](method func(Server, context.Context, *Req) (any, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		req := new(Req)
		if err := dec(req); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return method(srv.(Server), ctx, req)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: serviceName}
		handler := func(ctx context.Context, req any) (any, error) {
			return method(srv.(Server), ctx, req.(*Req))
		}
		return interceptor(ctx, req, info, handler)
	}
}
