// Package hostgrpc carries the domain/host.Engine port over the wire,
// so the tick driver and the host process (likely a Screeps-hosted
// script) can run in separate processes, per spec.md §6's external
// interface. Grounded on the teacher's adapters/grpc daemon
// client/server pair, generalized from the daemon's command RPCs to
// the host engine's terrain/command RPCs.
//
// The retrieval pack carries no generated *.pb.go for the teacher's own
// grpc services (they're build artifacts, not checked in), so this
// package can't regenerate wire-compatible protobuf code without
// running protoc. Instead it leans on grpc-go's pluggable codec
// extension point (google.golang.org/grpc/encoding) and marshals plain
// Go structs as JSON — a real, documented grpc-go mechanism, not a
// protocol of our own invention.
package hostgrpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

const codecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec satisfies google.golang.org/grpc/encoding.Codec, letting
// plain structs cross the wire without a protoc-generated message type.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return codecName }
