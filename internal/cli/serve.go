package cli

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pulpworks/pulpstore/internal/api"
	"github.com/pulpworks/pulpstore/internal/daemon"
	"github.com/pulpworks/pulpstore/internal/domain"
	"github.com/pulpworks/pulpstore/internal/infra/slot"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("config", "c", "", "Path to config.toml (default ~/.pulpstore/config.toml)")
	serveCmd.Flags().String("listen", "", "Override the listen address, e.g. 0.0.0.0:8640")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the storefront API server",
	Long: `Start the HTTP server. Cart slots persist to the configured backend
("file" writes one JSON file per session under the data directory,
"sqlite" keeps all slots in a single database).`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg daemon.Config
	var err error
	if configPath != "" {
		cfg, err = daemon.LoadFile(configPath)
	} else {
		cfg, err = daemon.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
		host, port, err := net.SplitHostPort(listen)
		if err != nil {
			return fmt.Errorf("parse --listen %q: %w", listen, err)
		}
		cfg.Server.Host = host
		cfg.Server.Port, err = strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("parse --listen port %q: %w", port, err)
		}
	}

	rules, err := cfg.Cart.Rules()
	if err != nil {
		return fmt.Errorf("cart pricing config: %w", err)
	}

	slots, closeSlots, err := slotFactory(cfg.Cart)
	if err != nil {
		return err
	}
	defer closeSlots()

	sessions := api.NewSessionManager(slots, rules)
	srv := api.NewServer(cfg, rules, sessions)

	addr := cfg.Server.Addr()
	fmt.Fprintf(os.Stdout, "pulpstore %s listening on %s (slots: %s)\n", Version, addr, cfg.Cart.SlotBackend)
	return http.ListenAndServe(addr, srv.Handler())
}

// slotFactory builds the session slot factory for the configured backend
// and returns a close func for whatever it holds open.
func slotFactory(cfg daemon.CartConfig) (api.SlotFactory, func(), error) {
	dir := cfg.ResolvedDataDir()

	switch cfg.SlotBackend {
	case "", "file":
		return func(key string) domain.Slot {
			return slot.NewFileSlot(dir, key)
		}, func() {}, nil
	case "sqlite":
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, nil, fmt.Errorf("create data directory: %w", err)
		}
		db, err := slot.OpenDB(filepath.Join(dir, "slots.db"))
		if err != nil {
			return nil, nil, err
		}
		return func(key string) domain.Slot {
			return db.Slot(key)
		}, func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown slot backend %q (want file or sqlite)", cfg.SlotBackend)
	}
}
