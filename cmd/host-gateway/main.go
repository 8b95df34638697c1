// Command host-gateway serves domain/host.Engine over grpc. It wraps
// hostmock's deterministic fixture engine — the retrieval pack carries
// no real Screeps client to front, so this binary is the reference
// host implementation colony-daemon and scenario-eval both dial
// against, the same role the teacher's cmd/routing-service plays for
// the routing port.
package main

import (
	"flag"
	"fmt"
	"log"
	"net"

	"github.com/ShadyMccoy/colony-controller/internal/adapters/hostgrpc"
	"github.com/ShadyMccoy/colony-controller/internal/adapters/hostmock"
	"github.com/ShadyMccoy/colony-controller/internal/domain/host"
	"google.golang.org/grpc"
)

func main() {
	addr := flag.String("addr", "localhost:50060", "listen address")
	rooms := flag.Int("rooms", 9, "number of plain rooms to seed in a 3x3 grid fixture")
	flag.Parse()

	engine := hostmock.New()
	seedGrid(engine, *rooms)

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("host-gateway: listen %s: %v", *addr, err)
	}

	s := grpc.NewServer()
	hostgrpc.RegisterServer(s, hostgrpc.NewServer(engine))

	log.Printf("host-gateway: serving on %s", *addr)
	if err := s.Serve(lis); err != nil {
		log.Fatalf("host-gateway: %v", err)
	}
}

// seedGrid lays out an n-room-ish square grid of all-plain rooms with
// exits wired to their cardinal neighbors, enough for the spatial core
// to run a real distance transform against.
func seedGrid(engine *hostmock.Engine, rooms int) {
	side := 1
	for side*side < rooms {
		side++
	}
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			var room hostmock.Room
			for i := range room.Terrain {
				room.Terrain[i] = host.TerrainPlain
			}
			room.Exits = host.Exits{
				Top:    neighborID(x, y-1, side),
				Right:  neighborID(x+1, y, side),
				Bottom: neighborID(x, y+1, side),
				Left:   neighborID(x-1, y, side),
			}
			engine.AddRoom(roomID(x, y), room)
		}
	}
}

func roomID(x, y int) string { return fmt.Sprintf("%d_%d", x, y) }

func neighborID(x, y, side int) string {
	if x < 0 || y < 0 || x >= side || y >= side {
		return ""
	}
	return roomID(x, y)
}
