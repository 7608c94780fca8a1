package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/briandowns/spinner"
	"github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/younsl/amireport/internal/app"
	"github.com/younsl/amireport/internal/config"
	"github.com/younsl/amireport/internal/logging"
	"github.com/younsl/amireport/internal/version"
	awsclient "github.com/younsl/amireport/pkg/aws"
	"github.com/younsl/amireport/pkg/inventory"
	"github.com/younsl/amireport/pkg/utils"
)

const (
	// Environment variables read by the entry point only
	envConfigPath  = "AMIREPORT_CONFIG"
	envProfile     = "AWS_ENVIRONMENT"
	envLogLevel    = "AMIREPORT_LOG_LEVEL"
	envLambdaName  = "AWS_LAMBDA_FUNCTION_NAME"
	defaultConfig  = "config.yaml"
	metadataWindow = 2 * time.Second
)

var (
	configPath  string
	profile     string
	regions     []string
	timeout     time.Duration
	dryRun      bool
	logLevel    string
	showVersion bool
)

// options are the per-run overrides on top of the config file
type options struct {
	configPath string
	profile    string
	regions    []string
	timeout    time.Duration
	dryRun     bool
	logLevel   string
	logOut     io.Writer
	interact   bool
}

func main() {
	if os.Getenv(envLambdaName) != "" {
		lambda.Start(handler)
		return
	}

	rootCmd := &cobra.Command{
		Use:   "amireport",
		Short: "Report the age of the AMIs backing your EC2 instances",
		Long: `amireport walks every enabled region, joins each instance's boot volume
to the snapshot and AMI built from it, and mails a report of instances
whose newest image is 0-30 or 31-99 days old.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Println(version.Get().String())
				return nil
			}
			_, err := run(cmd.Context(), options{
				configPath: configPath,
				profile:    profile,
				regions:    regions,
				timeout:    timeout,
				dryRun:     dryRun,
				logLevel:   logLevel,
				logOut:     os.Stderr,
				interact:   true,
			})
			return err
		},
	}

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", envOr(envConfigPath, defaultConfig),
		"Path to the config file (yaml, toml or json)")
	rootCmd.Flags().StringVarP(&profile, "profile", "p", os.Getenv(envProfile),
		fmt.Sprintf("Config profile to use (falls back to %q)", config.DefaultProfile))
	rootCmd.Flags().StringSliceVarP(&regions, "regions", "r", nil,
		"AWS regions to check (comma separated, default: all enabled regions)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0,
		fmt.Sprintf("Per-region collection timeout (default from config, else %s)", config.DefaultRegionTimeout))
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the report instead of sending it")
	rootCmd.Flags().StringVar(&logLevel, "log-level", envOr(envLogLevel, logging.DefaultLevel),
		"Log level (debug, info, warn, error, crit)")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// handler is the scheduled Lambda entry point. A returned error marks the invocation failed.
func handler(ctx context.Context) error {
	_, err := run(ctx, options{
		configPath: envOr(envConfigPath, defaultConfig),
		profile:    os.Getenv(envProfile),
		logLevel:   envOr(envLogLevel, logging.DefaultLevel),
		logOut:     os.Stdout,
	})
	return err
}

func run(ctx context.Context, opts options) (app.Outcome, error) {
	logger, err := logging.New(opts.logLevel, opts.logOut)
	if err != nil {
		return app.Outcome{}, err
	}
	logger, runID := logging.WithRunID(logger)
	logger.Info("starting amireport", version.Get().Ctx()...)

	cfg, err := config.Load(opts.configPath, opts.profile)
	if err != nil {
		logger.Error("invalid configuration", "path", opts.configPath, "err", err)
		return app.Outcome{}, err
	}
	if len(opts.regions) > 0 {
		cfg.Regions = opts.regions
	}
	if opts.timeout > 0 {
		cfg.RegionTimeout = opts.timeout
	}
	logger = logger.New("profile", cfg.Profile)

	region := defaultRegion(ctx, cfg, logger)
	awsCfg, err := awsclient.LoadConfig(ctx, region, cfg.AWSProfile)
	if err != nil {
		logger.Error("could not load AWS configuration", "region", region, "err", err)
		return app.Outcome{}, err
	}

	if account, err := awsclient.GetAccountID(ctx, awsclient.NewSTSClient(awsCfg)); err != nil {
		logger.Warn("could not identify account", "err", err)
	} else {
		logger.Info("using account", "account", account, "region", region)
	}

	factory := func(_ context.Context, region string) (inventory.Lister, error) {
		return awsclient.NewEC2Client(awsCfg, region), nil
	}

	runner := &app.Runner{
		Config:  cfg,
		Regions: awsclient.NewEC2Client(awsCfg, region),
		Collector: inventory.NewCollector(factory, logger, inventory.Options{
			Filter:        cfg.Filter,
			RegionTimeout: cfg.RegionTimeout,
		}),
		Mailer: awsclient.NewSESMailer(awsCfg),
		Log:    logger,
		RunID:  runID,
		Out:    os.Stdout,
		DryRun: opts.dryRun,
	}
	if opts.interact {
		runner.Progress = &spinnerProgress{}
	}

	return runner.Run(ctx)
}

// defaultRegion picks the region for global calls: the profile's, then the
// instance metadata region, then the environment default.
func defaultRegion(ctx context.Context, cfg config.Config, logger log15.Logger) string {
	if cfg.DefaultRegion != "" {
		return cfg.DefaultRegion
	}

	ctx, cancel := context.WithTimeout(ctx, metadataWindow)
	defer cancel()
	region, err := awsclient.DetectRegion(ctx, awsclient.NewIMDSClient())
	if err == nil && region != "" {
		return region
	}
	logger.Debug("instance metadata region unavailable", "err", err)
	return utils.GetDefaultRegion()
}

// spinnerProgress shows collection progress on stderr
type spinnerProgress struct {
	s *spinner.Spinner
}

func (p *spinnerProgress) Start(message string) {
	p.s = spinner.New(spinner.CharSets[9], 200*time.Millisecond, spinner.WithWriter(os.Stderr))
	p.s.Suffix = message
	p.s.Start()
}

func (p *spinnerProgress) Stop(final string) {
	if p.s == nil {
		return
	}
	p.s.FinalMSG = final
	p.s.Stop()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
