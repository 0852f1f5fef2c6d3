package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-ledpulse/config"
)

const DFLT_FPS = 100

func main() {
	cfgPath := flag.String("config", "ledpulse.yaml", "path to effect config")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	if _, err := host.Init(); err != nil {
		log.Fatal().Err(err).Msg("host init")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *cfgPath).Msg("load config")
	}
	p, err := cfg.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("build effect")
	}
	defer p.Stop()

	fps := cfg.FPS
	if fps <= 0 {
		fps = DFLT_FPS
	}

	ctx := context.Background()

	wg := &sync.WaitGroup{}
	wg.Add(1)

	// trap Ctrl+C and call cancel on the context
	ctx, cancel := context.WithCancel(ctx)
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()

	go func(cc context.Context) {
		delta := time.Second / time.Duration(fps)
		ticker := time.NewTicker(delta)
		defer ticker.Stop()
		defer wg.Done()

		for {
			select {
			case <-ticker.C:
				if !p.Tick() {
					log.Info().Msg("effect finished")
					cancel()
					return
				}

			case sig := <-c:
				log.Info().Str("signal", sig.String()).Msg("aborting")
				cancel()
				return

			case <-cc.Done():
				return
			}
		}
	}(ctx)

	wg.Wait()
}
