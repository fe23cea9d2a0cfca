package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/securebank/securebank"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg securebank.Config
	cfp := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()
	cfgfl, err := os.Open(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Msg("error opening config file")
	}
	if err = yaml.NewDecoder(cfgfl).Decode(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("error decoding config file")
	}

	endpt, err := securebank.NewFileEndpoint(cfg.Store.Path, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error opening local store")
	}

	svc, err := securebank.NewService(endpt, cfg, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting service")
	}

	var wired securebank.Service = svc
	for _, mw := range []securebank.Middleware{
		securebank.NewInstrumentMiddleware(securebank.NewMetrics()),
		securebank.NewLimitMiddleware(securebank.NewServiceLimits(cfg)),
		securebank.NewValidationMiddleware(),
	} {
		wired = mw(wired)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", securebank.NewHTTPHandler(wired, &logger))

	listen := cfg.Listen
	if listen == "" {
		listen = ":3000"
	}
	logger.Info().Str("listen", listen).Msg("starting server")
	if err = http.ListenAndServe(listen, mux); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
