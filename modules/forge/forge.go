package forge

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/common/errs"
	"github.com/gaze-network/orb-forge/core/worker"
	"github.com/gaze-network/orb-forge/internal/config"
	"github.com/gaze-network/orb-forge/internal/postgres"
	"github.com/gaze-network/orb-forge/modules/forge/api/httphandler"
	"github.com/gaze-network/orb-forge/modules/forge/bridge"
	forgeconfig "github.com/gaze-network/orb-forge/modules/forge/config"
	"github.com/gaze-network/orb-forge/modules/forge/datagateway"
	"github.com/gaze-network/orb-forge/modules/forge/events"
	"github.com/gaze-network/orb-forge/modules/forge/oracle"
	"github.com/gaze-network/orb-forge/modules/forge/repository/badgerdb"
	forgepostgres "github.com/gaze-network/orb-forge/modules/forge/repository/postgres"
	"github.com/gaze-network/orb-forge/modules/forge/tokenledger"
	"github.com/gaze-network/orb-forge/modules/forge/usecase"
	"github.com/gaze-network/orb-forge/pkg/logger"
	"github.com/gaze-network/orb-forge/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
)

// New builds the forge module: storage, external clients, the HTTP API and the background
// workers that deliver bridge dispatches and claim events.
func New(injector do.Injector) (worker.Worker, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	forgeConf := conf.Modules.Forge

	group := worker.NewGroup()

	dg, err := newDataGateway(ctx, forgeConf, group)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	oracleClient, err := oracle.New(forgeConf.Oracle.URL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid authenticity oracle configuration")
	}
	var authenticityOracle datagateway.AuthenticityOracle = oracleClient
	if forgeConf.Oracle.CacheTTL > 0 {
		authenticityOracle = oracle.NewCachedOracle(oracleClient, forgeConf.Oracle.CacheTTL)
	}

	ledgerClient, err := tokenledger.New(forgeConf.TokenLedger.URL, forgeConf.TokenLedger.APIKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token ledger configuration")
	}

	relay, err := bridge.NewRelayClient(forgeConf.Bridge.RelayURL, forgeConf.Bridge.APIKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid bridge relay configuration")
	}
	dispatcher := bridge.NewDispatcher(dg, relay, forgeConf.Bridge)

	bus := events.NewBus()
	group.OnShutdown(func(context.Context) error { return bus.Close() })
	if forgeConf.Events.RedisURL != "" {
		sink, err := events.NewRedisSink(bus, forgeConf.Events.RedisURL, forgeConf.Events.Channel)
		if err != nil {
			return nil, errors.Wrap(err, "invalid claim events configuration")
		}
		group.OnShutdown(func(context.Context) error { return sink.Close() })
		group.Go("redis_sink", sink)
	}
	group.Go("bridge_dispatcher", dispatcher)

	forgeUsecase := usecase.New(dg, authenticityOracle, ledgerClient, bus, dispatcher)

	// Mount API
	httpServer := do.MustInvoke[*fiber.App](injector)
	forgeHTTPHandler := httphandler.New(forgeUsecase, forgeConf)
	if err := forgeHTTPHandler.Mount(httpServer); err != nil {
		return nil, errors.Wrap(err, "can't mount Forge API")
	}
	logger.InfoContext(ctx, "Mounted HTTP handler", slogx.Bool("requireSignatures", forgeConf.API.RequireSignatures))

	return group, nil
}

func newDataGateway(ctx context.Context, conf forgeconfig.Config, group *worker.Group) (datagateway.ForgeDataGateway, error) {
	switch strings.ToLower(conf.Database) {
	case "postgresql", "postgres", "pg":
		pg, err := postgres.NewPool(ctx, conf.Postgres)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "Invalid Postgres configuration for forge")
			}
			return nil, errors.Wrap(err, "can't create Postgres connection pool")
		}
		group.OnShutdown(func(context.Context) error {
			pg.Close()
			return nil
		})
		return forgepostgres.NewRepository(pg), nil
	case forgeconfig.DatabaseBadger:
		repo, err := badgerdb.Open(conf.Badger.Dir, conf.Badger.InMemory)
		if err != nil {
			return nil, errors.Wrap(err, "can't open badger store")
		}
		group.OnShutdown(func(context.Context) error { return repo.Close() })
		return repo, nil
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q database for forge is not supported", conf.Database)
	}
}
