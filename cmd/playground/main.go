// Command playground is a manual testing tool.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"runtime/trace"
	"time"

	"github.com/joho/godotenv"

	"github.com/rusq/e2ekit"
)

var _ = godotenv.Load()

var (
	baseURL   = flag.String("url", envOr("E2E_BASE_URL", "http://localhost:8181"), "server base `url`")
	query     = flag.String("q", "", "search `query` to submit")
	play      = flag.String("play", "", "exploration `title` to play")
	mobile    = flag.Bool("mobile", false, "emulate a mobile device")
	bundled   = flag.Bool("bundled", false, "force using a bundled browser")
	headless  = flag.Bool("headless", false, "run the browser headless")
	isDebug   = flag.Bool("d", os.Getenv("DEBUG") == "1", "enable debug")
	traceFile = flag.String("trace", "", "trace `filename`")
)

func main() {
	flag.Parse()
	if *isDebug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	if *traceFile != "" {
		f, err := os.Create(*traceFile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := trace.Start(f); err != nil {
			return err
		}
		defer trace.Stop()
	}

	if b, err := e2ekit.ListBrowsers(); err != nil {
		slog.Warn("no browsers found on the system, using built-in", "err", err)
	} else {
		fmt.Println("Available browsers on the system:")
		for _, br := range b {
			fmt.Printf("%s:\t%s\n", br.Name, br.Path)
		}
	}

	s, err := initSession(*baseURL)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, task := trace.NewTask(ctx, "playground")
	defer task.End()
	ctx, cancel := context.WithTimeoutCause(ctx, 180*time.Second, errors.New("playground took too long"))
	defer cancel()

	if err := s.Start(ctx); err != nil {
		return err
	}
	lp, err := s.LibraryPage()
	if err != nil {
		return err
	}
	start := time.Now()
	if err := lp.Open(ctx); err != nil {
		return err
	}
	slog.Info("library page loaded", "url", lp.URL(), "d", time.Since(start))

	if *query != "" {
		if err := lp.FindExploration(ctx, s.Mode(), *query); err != nil {
			return err
		}
		slog.Info("search submitted", "query", *query, "mode", s.Mode())
	}
	if *play != "" {
		if err := lp.ExpectExplorationToBeVisible(ctx, *play); err != nil {
			return err
		}
		objective, err := lp.GetExplorationObjective(ctx, *play)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", *play, objective)
		if err := lp.PlayExploration(ctx, *play); err != nil {
			return err
		}
		slog.Info("exploration opened", "title", *play)
	}
	return nil
}

func initSession(uri string) (*e2ekit.Session, error) {
	mode := e2ekit.Desktop
	if *mobile {
		mode = e2ekit.Mobile
	}
	var opts = []e2ekit.Option{
		e2ekit.WithDebug(*isDebug),
		e2ekit.WithDeviceMode(mode),
		e2ekit.WithHeadless(*headless),
		e2ekit.WithLogger(slog.Default()),
	}
	if *bundled {
		opts = append(opts, e2ekit.WithBundledBrowser())
	}
	if v := os.Getenv("E2E_SESSION_COOKIE"); v != "" {
		u, err := url.Parse(uri)
		if err != nil {
			return nil, err
		}
		opts = append(opts, e2ekit.WithCookie(&http.Cookie{Name: "session", Value: v, Domain: u.Hostname(), Path: "/"}))
	}
	return e2ekit.New(uri, opts...)
}

func envOr(env, def string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}
