package hostgrpc

import (
	"context"

	"github.com/ShadyMccoy/colony-controller/internal/domain/host"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// hostServer adapts a domain/host.Engine to the Server interface the
// grpc service descriptor dispatches to, the inverse of Client.
type hostServer struct {
	engine host.Engine
}

// NewServer wraps a host.Engine implementation for serving over grpc.
func NewServer(engine host.Engine) Server {
	return hostServer{engine: engine}
}

func (s hostServer) Terrain(_ context.Context, r *terrainRequest) (*terrainResponse, error) {
	return &terrainResponse{Terrain: s.engine.Terrain(r.Room, r.X, r.Y)}, nil
}

func (s hostServer) Time(_ context.Context, _ *empty) (*timeResponse, error) {
	return &timeResponse{Tick: s.engine.Time()}, nil
}

func (s hostServer) DescribeExits(_ context.Context, r *exitsRequest) (*exitsResponse, error) {
	return &exitsResponse{Exits: s.engine.DescribeExits(r.Room)}, nil
}

func (s hostServer) SpawnBody(_ context.Context, r *spawnBodyRequest) (*spawnBodyResponse, error) {
	res, err := s.engine.SpawnBody(r.SpawnID, r.Parts, r.Name, r.Role)
	if err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return &spawnBodyResponse{Result: res}, nil
}

func (s hostServer) MoveAgent(_ context.Context, r *moveAgentRequest) (*empty, error) {
	if err := s.engine.MoveAgent(r.AgentID, r.Room, r.X, r.Y); err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return &empty{}, nil
}

func (s hostServer) Transfer(_ context.Context, r *transferRequest) (*empty, error) {
	if err := s.engine.Transfer(r.AgentID, r.TargetID, r.Resource, r.Quantity); err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return &empty{}, nil
}

func (s hostServer) Harvest(_ context.Context, r *harvestRequest) (*empty, error) {
	if err := s.engine.Harvest(r.AgentID, r.SourceID); err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return &empty{}, nil
}

func (s hostServer) Upgrade(_ context.Context, r *upgradeRequest) (*empty, error) {
	if err := s.engine.Upgrade(r.AgentID, r.ControllerID); err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return &empty{}, nil
}

func (s hostServer) Build(_ context.Context, r *buildRequest) (*empty, error) {
	if err := s.engine.Build(r.AgentID, r.SiteID); err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return &empty{}, nil
}
