package hostgrpc

import (
	"context"
	"fmt"

	"github.com/ShadyMccoy/colony-controller/internal/domain/host"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client implements domain/host.Engine over grpc, the counterpart to
// cmd/host-gateway's server. Grounded on the teacher's
// adapters/grpc/daemon_client_grpc.go: a thin struct wrapping a
// *grpc.ClientConn, one method per RPC, context.Background() per call
// since host.Engine carries no context parameter of its own.
type Client struct {
	cc *grpc.ClientConn
}

// Dial connects to a host-gateway server at addr.
func Dial(addr string) (*Client, error) {
	cc, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("hostgrpc: dial %s: %w", addr, err)
	}
	return &Client{cc: cc}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error { return c.cc.Close() }

func fullMethod(name string) string {
	return "/" + serviceName + "/" + name
}

func invoke(cc *grpc.ClientConn, method string, req, resp any) error {
	return cc.Invoke(context.Background(), fullMethod(method), req, resp, grpc.CallContentSubtype(codecName))
}

func (c *Client) Terrain(room string, x, y int) host.Terrain {
	resp := new(terrainResponse)
	if err := invoke(c.cc, "Terrain", &terrainRequest{Room: room, X: x, Y: y}, resp); err != nil {
		return host.TerrainWall // fail closed: an unreachable host reports impassable terrain
	}
	return resp.Terrain
}

func (c *Client) Time() int64 {
	resp := new(timeResponse)
	if err := invoke(c.cc, "Time", &empty{}, resp); err != nil {
		return 0
	}
	return resp.Tick
}

func (c *Client) DescribeExits(room string) host.Exits {
	resp := new(exitsResponse)
	if err := invoke(c.cc, "DescribeExits", &exitsRequest{Room: room}, resp); err != nil {
		return host.Exits{}
	}
	return resp.Exits
}

func (c *Client) SpawnBody(spawnID string, parts []string, name string, role string) (host.SpawnResult, error) {
	resp := new(spawnBodyResponse)
	req := &spawnBodyRequest{SpawnID: spawnID, Parts: parts, Name: name, Role: role}
	if err := invoke(c.cc, "SpawnBody", req, resp); err != nil {
		return host.SpawnResult{}, err
	}
	return resp.Result, nil
}

func (c *Client) MoveAgent(agentID string, room string, x, y int) error {
	return invoke(c.cc, "MoveAgent", &moveAgentRequest{AgentID: agentID, Room: room, X: x, Y: y}, new(empty))
}

func (c *Client) Transfer(agentID, targetID, resource string, quantity int) error {
	req := &transferRequest{AgentID: agentID, TargetID: targetID, Resource: resource, Quantity: quantity}
	return invoke(c.cc, "Transfer", req, new(empty))
}

func (c *Client) Harvest(agentID, sourceID string) error {
	return invoke(c.cc, "Harvest", &harvestRequest{AgentID: agentID, SourceID: sourceID}, new(empty))
}

func (c *Client) Upgrade(agentID, controllerID string) error {
	return invoke(c.cc, "Upgrade", &upgradeRequest{AgentID: agentID, ControllerID: controllerID}, new(empty))
}

func (c *Client) Build(agentID, siteID string) error {
	return invoke(c.cc, "Build", &buildRequest{AgentID: agentID, SiteID: siteID}, new(empty))
}

var _ host.Engine = (*Client)(nil)
