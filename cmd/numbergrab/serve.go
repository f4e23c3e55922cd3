package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/number-grab/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Number Grab SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Clients with a terminal see the
match setup menu first; plain "ssh host -p port" commands without a
terminal play against the computer line by line. The game flags
(--length, --max, --time, --difficulty, ...) set the rules offered to
every session. Results are stored per-server in the --db ledger.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.numbergrab/host_key

Examples:
  numbergrab serve                           # Listen on :23234 with auto-generated key
  numbergrab serve --ssh :2222               # Listen on port 2222
  numbergrab serve --host-key ./my_host_key  # Use specific host key
  numbergrab serve --ai --difficulty hard    # Offer hard games by default

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	s := mustLoadSettings(cmd)

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		s.SSH.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		s.SSH.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		s.SSH.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	cfg := tui.SSHServerConfig{
		Address:     s.SSH.Address,
		HostKeyPath: s.SSH.HostKeyPath,
		IdleTimeout: s.SSH.IdleTimeout,
		Settings:    s,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Number Grab SSH server on %s\n", server.Addr())
	if _, port, splitErr := net.SplitHostPort(server.Addr()); splitErr == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
