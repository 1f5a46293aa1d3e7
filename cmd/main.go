package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/M0r13n/battleships/pkg/comms"
	"github.com/M0r13n/battleships/pkg/config"
	"github.com/M0r13n/battleships/pkg/game"
	"github.com/M0r13n/battleships/pkg/ui"
)

var (
	configPath = flag.String("config", getEnvOrDefault("BATTLESHIPS_CONFIG", "config.yml"), "Path to the YAML config file")
	host       = flag.String("host", "", "Host to connect or bind to (overrides config)")
	port       = flag.Int("port", 0, "Port to connect or bind to (overrides config)")
	listen     = flag.Bool("listen", false, "Wait for the opponent instead of connecting to one")
	useWS      = flag.Bool("ws", false, "Carry the game over websocket instead of raw TCP")
	logFile    = flag.String("log", "", "Log file path (overrides config)")
)

// getEnvOrDefault tries to get an Environment variable or returns a default
// if it doesn't exist
func getEnvOrDefault(key, def string) string {
	if env, ok := os.LookupEnv(key); ok {
		return env
	}
	return def
}

// newLogger logs to a file at debug level so the terminal stays free for
// the boards.
func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

// connect establishes the single game connection in the requested role.
func connect(cfg config.Config, listen bool) (comms.Conn, error) {
	addr := cfg.Address()
	switch cfg.Transport {
	case config.TransportTCP:
		if listen {
			fmt.Printf("Waiting for the opponent on %s...\n", addr)
			return comms.Listen(addr)
		}
		return comms.Dial(addr)
	case config.TransportWebsocket:
		if listen {
			fmt.Printf("Waiting for the opponent on ws://%s...\n", addr)
			return comms.ListenWS(addr)
		}
		return comms.DialWS(addr)
	}
	return nil, fmt.Errorf("unknown transport %q", cfg.Transport)
}

func fatal(log *zap.Logger, msg string, err error) {
	log.Error(msg, zap.Error(err))
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *host != "" {
		cfg.Host = *host
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *useWS {
		cfg.Transport = config.TransportWebsocket
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	log, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Unable to open log file:", err)
		os.Exit(1)
	}
	defer log.Sync()
	log = log.With(zap.String("session", uuid.NewString()))

	fleet, err := cfg.FleetClasses()
	if err != nil {
		fatal(log, "Invalid fleet", err)
	}

	conn, err := connect(cfg, *listen)
	if err != nil {
		fatal(log, "Unable to reach the opponent", err)
	}
	log.Info("connected",
		zap.String("address", cfg.Address()),
		zap.String("transport", cfg.Transport),
		zap.Bool("listen", *listen))

	var own, enemy game.Board
	prompter := ui.NewPrompter()
	view := ui.NewRenderer()

	quit, err := prompter.PlaceFleet(&own, &enemy, fleet, view)
	if err != nil {
		conn.Close()
		fatal(log, "Reading placements failed", err)
	}
	if quit {
		// The game never started; there is no verdict to print.
		conn.Close()
		return
	}

	session := game.NewSession(conn, &own, &enemy, prompter, view, !*listen, log)
	verdict, err := session.Run()
	conn.Close()
	if err != nil {
		fatal(log, "Game ended abnormally", err)
	}

	if verdict == game.PeerForfeited {
		fmt.Println("You won!")
	} else {
		fmt.Println("You lost!")
	}
}
