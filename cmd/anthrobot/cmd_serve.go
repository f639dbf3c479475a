package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"anthrobot/internal/logging"
	"anthrobot/internal/mcp"
	"anthrobot/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the engine as an MCP stdio server",
	Long: `Reads newline-delimited JSON-RPC 2.0 messages from stdin and writes
responses to stdout. Logs go to stderr. Terminates when stdin closes or on
SIGINT/SIGTERM.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logging.Get(logging.CategoryServer)

	server := mcp.NewServer(registry, cfg.Name, cfg.Version)

	if cfg.Store.Enabled {
		invLog, err := store.Open(cfg.Store.DatabasePath)
		if err != nil {
			return err
		}
		defer invLog.Close()
		server.SetRecorder(invLog)
		log.Infof("recording invocations to %s", cfg.Store.DatabasePath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := serveLoop(ctx, server, os.Stdin, os.Stdout); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

// serveLoop runs the read loop plus a watcher that closes the input on
// cancellation. The read loop cancels the shared context when it returns, so
// a clean EOF also releases the watcher; without that, Wait would block on
// the watcher forever after the client disconnects.
func serveLoop(ctx context.Context, server *mcp.Server, in io.ReadCloser, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return server.Serve(ctx, in, out)
	})
	g.Go(func() error {
		<-ctx.Done()
		// The read loop blocks inside Scan; closing the input unblocks it
		// after a signal.
		return in.Close()
	})

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}
