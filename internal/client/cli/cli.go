// Package cli implements the refkeeper command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/refkeeper/refkeeper/internal/client/auth"
	"github.com/refkeeper/refkeeper/internal/client/data"
	"github.com/refkeeper/refkeeper/internal/client/iocli"
	"github.com/refkeeper/refkeeper/internal/client/sync"
)

// Cli bundles the services the commands operate on.
type Cli struct {
	io      iocli.IO
	session *auth.Session
	data    *data.Service
	sync    *sync.Service
}

// New creates the command handler.
func New(io iocli.IO, session *auth.Session, dataService *data.Service, syncService *sync.Service) *Cli {
	return &Cli{
		io:      io,
		session: session,
		data:    dataService,
		sync:    syncService,
	}
}

// Run dispatches one command invocation.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "sync":
		return c.runSync(ctx, args)
	case "add":
		return c.runAdd(ctx, args)
	case "list":
		return c.runList(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "update":
		return c.runUpdate(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage prints command help.
func (c *Cli) PrintUsage() {
	c.io.Println("refkeeper - reference manager with offline-first sync")
	c.io.Println("")
	c.io.Println("Usage: refkeeper [flags] <command> [args]")
	c.io.Println("")
	c.io.Println("Commands:")
	c.io.Println("  register                       Create an account on the sync server")
	c.io.Println("  login                          Authenticate with the sync server")
	c.io.Println("  logout                         Remove the stored session")
	c.io.Println("  status                         Show sync status and pending changes")
	c.io.Println("  sync [--full]                  Synchronize with the server")
	c.io.Println("  add paper|collection|annotation ...")
	c.io.Println("  list papers|collections|annotations")
	c.io.Println("  get paper <id>")
	c.io.Println("  update paper <id> [flags]")
	c.io.Println("  delete paper|collection|annotation <id>")
	c.io.Println("")
	c.io.Println("Flags:")
	c.io.Println("  --server URL   Sync server base URL")
	c.io.Println("  --db PATH      Local database path")
	c.io.Println("  --offline      Disable remote sync")
}
