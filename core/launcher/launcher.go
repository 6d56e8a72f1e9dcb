package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"tiengow-preview/core/browser"
	"tiengow-preview/core/config"
	"tiengow-preview/core/loader"
	"tiengow-preview/core/server"
	"tiengow-preview/core/site"
	"tiengow-preview/feature/static"

	"go.uber.org/zap"
)

// DefaultFarewell is printed after an interrupt stops the server.
const DefaultFarewell = "👋 Thanks for using!"

// Result describes how a run ended.
type Result struct {
	State   State
	Root    string
	Missing []string
	Port    int
}

// Launcher orchestrates startup: enter the site root, precheck, bind,
// open the browser, serve.
type Launcher struct {
	cfg    *config.Config
	out    io.Writer
	logger *zap.Logger

	// Open is called with the local URL once the port is bound.
	Open func(url string) error
	// Farewell is printed after a graceful stop.
	Farewell string

	state State
}

// lockedWriter serializes writes from the serve path and the browser goroutine.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}

// New creates a launcher writing operator-facing text to out.
func New(cfg *config.Config, out io.Writer, logger *zap.Logger) *Launcher {
	return &Launcher{
		cfg:      cfg,
		out:      &lockedWriter{w: out},
		logger:   logger,
		Open:     browser.Open,
		Farewell: DefaultFarewell,
	}
}

// State returns the current lifecycle state.
func (l *Launcher) State() State {
	return l.state
}

func (l *Launcher) transition(s State) {
	l.logger.Debug("Launcher state", zap.Stringer("from", l.state), zap.Stringer("to", s))
	l.state = s
}

// Run blocks until ctx is cancelled or startup fails. Missing files yield
// an Aborted result with a *site.PreconditionError; bind and serve failures
// yield Failed. A cancelled ctx while serving is a clean stop.
func (l *Launcher) Run(ctx context.Context) (Result, error) {
	l.transition(Init)
	res := Result{Port: l.cfg.Server.Port}

	root, err := site.ResolveRoot(l.cfg.Site.Root)
	if err != nil {
		return l.fail(res, err)
	}
	if err := os.Chdir(root); err != nil {
		return l.fail(res, fmt.Errorf("failed to enter site root: %w", err))
	}
	res.Root = root

	printBanner(l.out, l.cfg.Site.Title, root, l.cfg.Server.Port)

	l.transition(Prechecking)
	if err := site.Check(root, l.cfg.Site.Required()); err != nil {
		var pe *site.PreconditionError
		if errors.As(err, &pe) {
			res.Missing = pe.Missing
		}
		printMissing(l.out, l.cfg.Site.Title, res.Missing)
		l.logger.Warn("Required files missing", zap.Strings("missing", res.Missing))
		l.transition(Aborted)
		res.State = Aborted
		return res, err
	}
	fmt.Fprintln(l.out, "✅ All required files are present")

	mgr := loader.NewManager()
	mgr.Register(static.NewFeature(root, l.logger))
	srv, err := server.New(l.logger, mgr)
	if err != nil {
		return l.fail(res, err)
	}

	ln, err := server.Listen(l.cfg.Server)
	if err != nil {
		printBindError(l.out, l.cfg.Server.Port, errors.Is(err, server.ErrPortInUse), err)
		return l.fail(res, err)
	}
	res.Port = server.Port(ln)
	url := fmt.Sprintf("http://localhost:%d", res.Port)

	printRunning(l.out, res.Port, url)
	if l.cfg.Server.OpenBrowser && l.Open != nil {
		// Browser launchers may wait for the browser to exit; never hold up Serve.
		go l.openBrowser(url)
	}
	fmt.Fprintln(l.out, "\n⏹️  Press Ctrl+C to stop the server")
	fmt.Fprintln(l.out, rule)

	l.transition(ServerRunning)
	l.logger.Info("Serving site", zap.String("root", root), zap.Int("port", res.Port))
	if err := srv.Serve(ctx, ln); err != nil {
		fmt.Fprintf(l.out, "❌ Server error: %v\n", err)
		return l.fail(res, err)
	}

	fmt.Fprintln(l.out, "\n\n🛑 Server stopped")
	if l.Farewell != "" {
		fmt.Fprintln(l.out, l.Farewell)
	}
	l.transition(Stopped)
	res.State = Stopped
	return res, nil
}

func (l *Launcher) openBrowser(url string) {
	if err := l.Open(url); err != nil {
		fmt.Fprintln(l.out, "   Could not open a browser automatically, open the URL above manually.")
		l.logger.Debug("Browser launch failed", zap.Error(err))
	}
}

func (l *Launcher) fail(res Result, err error) (Result, error) {
	l.transition(Failed)
	res.State = Failed
	return res, err
}
