package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"medvirkning/internal/clients"
	"medvirkning/internal/clients/azuread"
	"medvirkning/internal/clients/dokarkiv"
	"medvirkning/internal/clients/elector"
	"medvirkning/internal/clients/pdfgen"
	"medvirkning/internal/clients/pdl"
	"medvirkning/internal/cronjob"
	"medvirkning/internal/events"
	httpapi "medvirkning/internal/http"
	"medvirkning/internal/identhendelse"
	"medvirkning/internal/journalforing"
	jwttoken "medvirkning/internal/jwt_token"
	"medvirkning/internal/platform/config"
	"medvirkning/internal/platform/httpserver"
	"medvirkning/internal/platform/kafka"
	"medvirkning/internal/platform/metrics"
	"medvirkning/internal/platform/postgres"
	"medvirkning/internal/platform/redis"
	"medvirkning/internal/varsel"
	"medvirkning/internal/vurdering/handler"
	vurderingmetrics "medvirkning/internal/vurdering/metrics"
	"medvirkning/internal/vurdering/service"
	"medvirkning/internal/vurdering/store"
)

const electorTimeout = 10 * time.Second

func runServe(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}

	producerClient, err := kafka.NewClient(cfg.Kafka)
	if err != nil {
		return err
	}
	defer producerClient.Close()
	if cfg.Kafka.CreateTopics {
		if err := kafka.EnsureTopics(ctx, producerClient, logger,
			cfg.Kafka.VurderingTopic, cfg.Kafka.VarselTopic, cfg.Kafka.IdenthendelseTopic); err != nil {
			return err
		}
	}
	consumerClient, err := kafka.NewClient(cfg.Kafka, identhendelse.ConsumerOpts(cfg.Kafka)...)
	if err != nil {
		return err
	}
	defer consumerClient.Close()

	clientMetrics := clients.NewMetrics()
	pdlClient := pdl.New(cfg.Clients.PDL.BaseURL,
		azuread.HTTPClient(ctx, cfg.Clients.AzureAD, cfg.Clients.PDL.Scope, cfg.Clients.PDL.Timeout),
		cfg.Clients.PDL.Timeout, clientMetrics)
	var names pdl.Names = pdlClient
	cache, err := redis.Open(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.Close()
		names = pdl.NewCachedNames(pdlClient, cache, cfg.Redis.NameTTL, logger)
	}

	archive := dokarkiv.New(cfg.Clients.Dokarkiv.BaseURL,
		azuread.HTTPClient(ctx, cfg.Clients.AzureAD, cfg.Clients.Dokarkiv.Scope, cfg.Clients.Dokarkiv.Timeout),
		cfg.Clients.Dokarkiv.Timeout, clientMetrics, logger)
	renderer := pdfgen.NewRenderer(
		pdfgen.New(cfg.Clients.PdfGen.BaseURL, nil, cfg.Clients.PdfGen.Timeout, clientMetrics),
		names)

	journalforingOpts := []journalforing.Option{
		journalforing.WithLogger(logger),
		journalforing.WithMetrics(journalforing.NewMetrics()),
	}
	if !cfg.Cronjob.JournalforingRetryEnabled {
		journalforingOpts = append(journalforingOpts, journalforing.WithRetryDisabled())
	}
	journalforer := journalforing.New(names, archive, journalforingOpts...)

	eventMetrics := events.NewMetrics()
	vurderingStore := store.New(db)
	vurderingService := service.New(vurderingStore, renderer, journalforer,
		events.NewVurderingProducer(producerClient, cfg.Kafka.VurderingTopic, eventMetrics),
		service.WithLogger(logger),
		service.WithMetrics(vurderingmetrics.New()),
	)
	varselService := varsel.NewService(vurderingStore,
		events.NewVarselProducer(producerClient, cfg.Kafka.VarselTopic, eventMetrics),
		logger)

	jwtService := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	ready := func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("database: %w", err)
		}
		if cache != nil {
			if err := cache.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("redis: %w", err)
			}
		}
		return nil
	}
	router := httpapi.NewRouter(logger, metrics.New(), ready,
		handler.New(vurderingService, jwttoken.NewJWTServiceAdapter(jwtService), logger),
	)

	var leader cronjob.LeaderElector = elector.AlwaysLeader{}
	if cfg.ElectorPath != "" {
		leader = elector.New(cfg.ElectorPath, electorTimeout)
	} else {
		logger.WarnContext(ctx, "ELECTOR_PATH not set, this pod runs every cronjob")
	}
	runner := cronjob.NewRunner(leader, cronjob.WithLogger(logger), cronjob.WithMetrics(cronjob.NewMetrics()))
	jobs := []cronjob.Job{cronjob.PublishForhandsvarsel(varselService, logger)}
	if cfg.Cronjob.JournalforingEnabled {
		jobs = append(jobs, cronjob.JournalforVurderinger(vurderingService, logger))
	}

	consumer := identhendelse.NewConsumer(consumerClient,
		identhendelse.NewService(vurderingStore, logger),
		cfg.Kafka.ErrorBackoff, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpserver.Run(gctx, httpserver.New(cfg.Server.Addr, router), cfg.Server.ShutdownTimeout, logger)
	})
	g.Go(func() error {
		runner.StartAll(gctx, jobs...)
		return nil
	})
	g.Go(func() error {
		return consumer.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	logger.InfoContext(ctx, "shutdown complete")
	return nil
}
