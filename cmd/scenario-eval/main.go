// Command scenario-eval runs a declarative scenario file against an
// in-memory hostmock engine for a fixed number of ticks and prints the
// resulting persistence snapshot (tick, nodes, corps and ledger; no
// market state) as JSON — spec.md §8's end-to-end
// scenarios, runnable without a live host process. Grounded on the
// teacher's cmd/*-cli pattern: a single cobra.Command with flags, no
// subcommand tree needed for one verb.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShadyMccoy/colony-controller/internal/adapters/hostmock"
	"github.com/ShadyMccoy/colony-controller/internal/application/persistence"
	"github.com/ShadyMccoy/colony-controller/internal/application/scenario"
	"github.com/ShadyMccoy/colony-controller/internal/application/tick"
	"github.com/ShadyMccoy/colony-controller/internal/domain/host"
	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
)

func main() {
	var scenarioPath string
	var rooms int

	root := &cobra.Command{
		Use:   "scenario-eval",
		Short: "Run a colony scenario file offline and report the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(scenarioPath, rooms)
		},
	}
	root.Flags().StringVar(&scenarioPath, "scenario", "", "path to scenario JSON file")
	root.Flags().IntVar(&rooms, "rooms", 9, "number of plain rooms to seed in the fixture")
	_ = root.MarkFlagRequired("scenario")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runScenario(scenarioPath string, rooms int) error {
	s, err := scenario.Load(scenarioPath)
	if err != nil {
		return err
	}

	engine := hostmock.New()
	seedGrid(engine, rooms)

	ticks := shared.NewMockTickSource(0)
	driver := tick.NewDriver(tick.Config{
		Ticks:               ticks,
		Engine:              engine,
		SpatialStarts:       []shared.RoomCoord{shared.NewRoomCoord(0, 0)},
		SummaryCadenceTicks: 1,
	})

	if err := scenario.Run(s, driver, func() { ticks.Advance(1) }); err != nil {
		return err
	}

	snap, err := persistence.Encode(ticks.Now(), driver.Registry(), driver.Corps(), driver.Book())
	if err != nil {
		return err
	}
	fmt.Println(string(snap))
	return nil
}

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
