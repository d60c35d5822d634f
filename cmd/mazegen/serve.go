package main

import (
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazegen/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagSSHAnimate  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the maze SSH server",
	Long: `Start an SSH server that shows every connection its own maze viewer.

Each session gets an independent maze sized to its terminal. Saving PNGs is
disabled for remote sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mazegen/host_key

Examples:
  mazegen serve                           # Listen on :23235 with auto-generated key
  mazegen serve --ssh :2222               # Listen on port 2222
  mazegen serve --host-key ./my_host_key  # Use specific host key
  mazegen serve --animate                 # Animate each session's first maze

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagSSHAnimate, "animate", false, "Animate the first maze of every session")
	serveCmd.Flags().BoolVar(&flagCompact, "compact", false, "Use one character per cell and wall")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Animate = flagSSHAnimate
	cfg.Text = textOptions()
	cfg.Logger = logger.WithPrefix("mazegen-ssh")

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	if _, port, err := net.SplitHostPort(server.Addr()); err == nil {
		logger.Info("connect with", "cmd", "ssh localhost -p "+port)
	}
	return server.ListenAndServe()
}
