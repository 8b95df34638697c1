// Package scenario loads a declarative fixture describing a starting
// set of corps and runs it against a Driver for a fixed number of
// ticks, offline — spec.md §8's end-to-end scenarios need a runner
// that doesn't require a live host process. Grounded on the teacher's
// configuration loading idiom (struct + validator tags), reused here
// for scenario files instead of server config.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/ShadyMccoy/colony-controller/internal/application/tick"
	"github.com/ShadyMccoy/colony-controller/internal/domain/corp"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spawnorder"
	"github.com/ShadyMccoy/colony-controller/internal/domain/variant"
)

// Scenario is one fixture: a handful of corps to seed and how long to
// run them for.
type Scenario struct {
	Name  string     `json:"name" validate:"required"`
	Ticks int64      `json:"ticks" validate:"required,gt=0"`
	Corps []CorpSpec `json:"corps" validate:"required,dive"`
}

// CorpSpec is one corp to construct before the run starts. Only the
// fields its Type needs are read; the rest are ignored.
type CorpSpec struct {
	ID           string   `json:"id" validate:"required"`
	Type         string   `json:"type" validate:"required,oneof=harvest upgrade haul scout bootstrap"`
	SourceID     string   `json:"sourceId,omitempty"`
	DeliveryTile string   `json:"deliveryTile,omitempty"`
	SinkTile     string   `json:"sinkTile,omitempty"`
	Resource     string   `json:"resource,omitempty"`
	Throughput   float64  `json:"throughput,omitempty"`
	WorkParts    int      `json:"workParts,omitempty"`
	HomeRoom     string   `json:"homeRoom,omitempty"`
	TargetRooms  []string `json:"targetRooms,omitempty"`
	RoomID       string   `json:"roomId,omitempty"`
	SourceIDs    []string `json:"sourceIds,omitempty"`
}

var validate = validator.New()

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("scenario: invalid %s: %w", path, err)
	}
	return &s, nil
}

// BuildCorps constructs the scenario's corps against a driver's own
// collaborators (minter, intel sink, spawn queue), returning them
// ready for AddCorp.
func BuildCorps(s *Scenario, d *tick.Driver) ([]corp.Corp, error) {
	queue := spawnorder.NewQueue()
	evaluator := variant.NewEvaluator()

	corps := make([]corp.Corp, 0, len(s.Corps))
	for _, spec := range s.Corps {
		c, err := buildOne(spec, d, queue, evaluator)
		if err != nil {
			return nil, err
		}
		corps = append(corps, c)
	}
	return corps, nil
}

func buildOne(spec CorpSpec, d *tick.Driver, queue *spawnorder.Queue, evaluator *variant.Evaluator) (corp.Corp, error) {
	switch spec.Type {
	case "harvest":
		return corp.NewHarvest(spec.ID, spec.SourceID, spec.DeliveryTile, variant.Terrain{}, variant.Constraints{}, evaluator, queue), nil
	case "upgrade":
		return corp.NewUpgrade(spec.ID, spec.DeliveryTile, spec.WorkParts, d.Accountant()), nil
	case "haul":
		return corp.NewHaul(spec.ID, spec.SourceID, spec.SinkTile, spec.Resource, spec.Throughput, queue), nil
	case "scout":
		return corp.NewScout(spec.ID, spec.HomeRoom, spec.TargetRooms, d.Intel()), nil
	case "bootstrap":
		return corp.NewBootstrap(spec.ID, spec.RoomID, spec.SourceIDs, queue), nil
	default:
		return nil, fmt.Errorf("scenario: unknown corp type %q", spec.Type)
	}
}

// Run seeds the scenario's corps into driver and steps it for the
// scenario's configured tick count. advance is called once per tick
// before Step, so the caller's tick source (a mock counter, or a
// hostmock engine's own clock) moves in lockstep with the driver.
func Run(s *Scenario, d *tick.Driver, advance func()) error {
	corps, err := BuildCorps(s, d)
	if err != nil {
		return err
	}
	for _, c := range corps {
		d.AddCorp(c)
	}
	for i := int64(0); i < s.Ticks; i++ {
		advance()
		d.Step()
	}
	return nil
}
