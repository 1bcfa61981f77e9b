// Skinviewd - the go-skinview preview server.
//
// Runs the pose engine at a fixed frame rate and streams pose frames to
// browser viewers over websocket.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/lumaworks/go-skinview/internal/config"
	"github.com/lumaworks/go-skinview/internal/log"
	"github.com/lumaworks/go-skinview/pkg/anim"
	"github.com/lumaworks/go-skinview/pkg/player"
	"github.com/lumaworks/go-skinview/pkg/web"
)

func main() {
	cfgPath := flag.String("config", "skinview.yaml", "path to config file")
	flag.Parse()

	if err := run(*cfgPath); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	log.Init(cfg.LogLevel)

	mode, err := anim.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	var state *anim.State
	if cfg.Seed != 0 {
		state = anim.NewSeededState(mode, cfg.Speed, cfg.Seed)
	} else {
		state = anim.NewState(mode, cfg.Speed)
	}

	pl := player.New(state, cfg.TickInterval(), cfg.Cape)
	srv := web.NewServer(cfg.Port, cfg.StaticDir, pl)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pl.Run()
		return nil
	})
	g.Go(srv.Start)
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		pl.Stop()
		return srv.Shutdown()
	})

	return g.Wait()
}
