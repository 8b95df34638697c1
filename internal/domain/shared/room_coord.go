package shared

import "fmt"

// RoomCoord is a value object identifying one 50x50 room in the world
// grid. The core only needs equality, ordering, and the four cardinal
// neighbors — the host engine owns the human-facing room-name scheme.
type RoomCoord struct {
	X int
	Y int
}

// NewRoomCoord creates a RoomCoord value object.
func NewRoomCoord(x, y int) RoomCoord {
	return RoomCoord{X: x, Y: y}
}

// String returns a deterministic textual form used to build node/edge ids.
func (r RoomCoord) String() string {
	return fmt.Sprintf("%d_%d", r.X, r.Y)
}

// Equals reports whether two RoomCoords name the same room.
func (r RoomCoord) Equals(other RoomCoord) bool {
	return r.X == other.X && r.Y == other.Y
}

// Less provides a total order over RoomCoords for deterministic iteration.
func (r RoomCoord) Less(other RoomCoord) bool {
	if r.X != other.X {
		return r.X < other.X
	}
	return r.Y < other.Y
}

// Exit enumerates the four cardinal exits of a room, matching the host
// engine's describeExits contract (§6).
type Exit int

const (
	ExitTop Exit = iota
	ExitRight
	ExitBottom
	ExitLeft
)

// Offset returns the coordinate delta for a given exit.
func (e Exit) Offset() (dx, dy int) {
	switch e {
	case ExitTop:
		return 0, -1
	case ExitRight:
		return 1, 0
	case ExitBottom:
		return 0, 1
	case ExitLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// IsSourceKeeperRoom reports whether this room follows the conventional
// source-keeper coordinate heuristic: both |X mod 10| and |Y mod 10| fall
// in [4,6] except the exact center (5,5) of that decade, per spec.md §9
// Open Question #2.
func (r RoomCoord) IsSourceKeeperRoom() bool {
	mx, my := mod10(r.X), mod10(r.Y)
	inBand := func(v int) bool { return v >= 4 && v <= 6 }
	if !inBand(mx) || !inBand(my) {
		return false
	}
	return !(mx == 5 && my == 5)
}

func mod10(v int) int {
	m := v % 10
	if m < 0 {
		m += 10
	}
	return m
}
