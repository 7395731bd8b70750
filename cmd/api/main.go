package main

import (
	"context"
	"os"
	"os/signal"
	"path"
	"runtime"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nexscore-api/infrastructure/database"
	"github.com/vfg2006/nexscore-api/infrastructure/repository"
	"github.com/vfg2006/nexscore-api/internal/api"
	"github.com/vfg2006/nexscore-api/internal/config"
	"github.com/vfg2006/nexscore-api/internal/scheduler"
	"github.com/vfg2006/nexscore-api/internal/usecases/marketregion"
	"github.com/vfg2006/nexscore-api/internal/usecases/scoring"
	"github.com/vfg2006/nexscore-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	// Encerra com SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	nexScoreRepo := repository.NewNexScoreRepository(conn)

	scoringService := scoring.NewService(nexScoreRepo)
	dropdownService := marketregion.NewDropdownService(nexScoreRepo)
	freshnessService := scheduler.NewFreshnessCheckService(nexScoreRepo, cfg)

	server, err := api.New(cfg, scoringService, dropdownService, freshnessService)
	if err != nil {
		logrus.Fatal(err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(gctx)
	})

	g.Go(func() error {
		if err := freshnessService.Start(gctx); err != nil {
			// O job é auxiliar: a API continua no ar sem ele
			logrus.WithError(err).Error("Erro ao iniciar o agendador da verificação de atualização")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource aponta o diretório de trabalho para cmd/api, onde o .env local é procurado
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)
}

// dbconn abre a conexão com o banco e cria o schema quando configurado
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	if dbConfig.AutoMigrate {
		if err := database.EnsureSchema(ctx, conn); err != nil {
			logrus.WithError(err).Fatal("Erro ao criar o schema do banco de dados")
		}
	}

	logrus.WithField("driver", conn.Driver).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
