package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"assettransfer/cmd"
	"assettransfer/internal/adapters/in/chaincode"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var configFile string

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "assettransfer",
		Short:        "Ledger of assets, orders, distributions and sales",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json or toml)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP gateway and the scheduled jobs",
			RunE: func(c *cobra.Command, _ []string) error {
				return serve(c.Context())
			},
		},
		&cobra.Command{
			Use:   "chaincode",
			Short: "Run as Fabric chaincode",
			Long: `Run as Fabric chaincode. With CHAINCODE_ID and CHAINCODE_SERVER_ADDRESS set
the chaincode runs as an external service; otherwise the peer launches it.`,
			RunE: func(*cobra.Command, []string) error {
				return runChaincode()
			},
		},
	)
	return root
}

func setup() (cmd.Config, *slog.Logger, error) {
	config, err := cmd.LoadConfig(configFile)
	if err != nil {
		return cmd.Config{}, nil, err
	}
	if err = config.Validate(); err != nil {
		return cmd.Config{}, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := cmd.ParseLogLevel(config.LogLevel)
	logger := cmd.NewLogger(os.Stderr, level)
	slog.SetDefault(logger)
	return config, logger, nil
}

func serve(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, logger, err := setup()
	if err != nil {
		return err
	}
	app, err := cmd.NewCompositionRoot(ctx, config, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(context.Background()); err != nil {
			logger.Error("Failed to close resources", "error", err)
		}
	}()

	jobManager, err := app.NewJobManager(ctx)
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := app.NewServer().Router(ctx)
	if err != nil {
		return err
	}
	level, _ := cmd.ParseLogLevel(config.LogLevel)
	e.Logger.SetLevel(cmd.EchoLogLevel(level))

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func runChaincode() error {
	config, logger, err := setup()
	if err != nil {
		return err
	}
	app, err := cmd.NewChaincodeRoot(config, logger)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(context.Background()) }()

	cc, err := chaincode.NewChaincode(app.ChaincodeHandlers())
	if err != nil {
		return err
	}

	if config.ChaincodeID == "" || config.ChaincodeServerAddress == "" {
		logger.Info("Starting chaincode")
		return cc.Start()
	}

	server := &shim.ChaincodeServer{
		CCID:     config.ChaincodeID,
		Address:  config.ChaincodeServerAddress,
		CC:       cc,
		TLSProps: shim.TLSProperties{Disabled: true},
	}
	logger.Info("Starting chaincode server", "address", config.ChaincodeServerAddress)
	return server.Start()
}
