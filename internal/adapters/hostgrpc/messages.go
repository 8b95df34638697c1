package hostgrpc

import "github.com/ShadyMccoy/colony-controller/internal/domain/host"

// The request/response pairs below are this service's wire contract —
// the JSON codec's equivalent of a .proto message set. One pair per
// host.Engine method, named the way the teacher's pkg/proto/daemon
// messages are, just without the generated accessors.

type terrainRequest struct {
	Room string
	X    int
	Y    int
}

type terrainResponse struct {
	Terrain host.Terrain
}

type timeResponse struct {
	Tick int64
}

type exitsRequest struct {
	Room string
}

type exitsResponse struct {
	Exits host.Exits
}

type spawnBodyRequest struct {
	SpawnID string
	Parts   []string
	Name    string
	Role    string
}

type spawnBodyResponse struct {
	Result host.SpawnResult
}

type moveAgentRequest struct {
	AgentID string
	Room    string
	X       int
	Y       int
}

type transferRequest struct {
	AgentID  string
	TargetID string
	Resource string
	Quantity int
}

type harvestRequest struct {
	AgentID  string
	SourceID string
}

type upgradeRequest struct {
	AgentID      string
	ControllerID string
}

type buildRequest struct {
	AgentID string
	SiteID  string
}

// empty is the response for commands that only report an error; grpc's
// own status package carries the failure, so no extra wire field is
// needed for it.
type empty struct{}
