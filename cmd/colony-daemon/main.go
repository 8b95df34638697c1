// Command colony-daemon is the long-running process that owns a
// colony's simulation: it dials the host engine over grpc, builds a
// tick.Driver, and steps it on a fixed interval until asked to stop.
// Grounded on the teacher's cmd/spacetraders-daemon main.go: config
// load, pidfile acquire, signal-driven graceful shutdown, one
// top-level ticker loop.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ShadyMccoy/colony-controller/internal/adapters/hostgrpc"
	"github.com/ShadyMccoy/colony-controller/internal/application/tick"
	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
	"github.com/ShadyMccoy/colony-controller/internal/infrastructure/config"
	"github.com/ShadyMccoy/colony-controller/internal/infrastructure/pidfile"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	cfg := config.MustLoadConfig(*configPath)

	pf := pidfile.New(cfg.Daemon.PIDFile)
	if err := pf.Acquire(); err != nil {
		log.Fatalf("colony-daemon: %v", err)
	}
	defer pf.Release()

	client, err := hostgrpc.Dial(cfg.Daemon.HostAddress)
	if err != nil {
		log.Fatalf("colony-daemon: %v", err)
	}
	defer client.Close()

	ticks := shared.NewRealTickSource(client.Time)
	driver := tick.NewDriver(tick.Config{
		Ticks:               ticks,
		Engine:              client,
		SpatialStarts:       []shared.RoomCoord{shared.NewRoomCoord(0, 0)},
		SummaryCadenceTicks: cfg.Logging.SummaryCadenceTicks,
		Logger:              log.Default(),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	run(ctx, driver, cfg.Daemon.TickInterval, cfg.Daemon.ShutdownTimeout)
}

func run(ctx context.Context, driver *tick.Driver, interval, shutdownTimeout time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("colony-daemon: running, tick interval %s", interval)
	for {
		select {
		case <-ctx.Done():
			log.Printf("colony-daemon: shutdown requested, draining within %s", shutdownTimeout)
			return
		case <-ticker.C:
			driver.Step()
		}
	}
}
