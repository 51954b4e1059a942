// Package cmd implements the s3cognito command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/famproperties/s3cognito"
	"github.com/famproperties/s3cognito/configuration"
	"github.com/famproperties/s3cognito/options"
	"github.com/famproperties/s3cognito/transfer"
)

const defaultConfigPath = "~/awsconfiguration.json"

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

// app holds what the subcommands share.
type app struct {
	v       *viper.Viper
	adapter []options.NewAdapterOption[transfer.Adapter]
}

// NewRootCmd builds the command tree. Extra adapter options are applied after the ones derived
// from flags.
func NewRootCmd(extra ...options.NewAdapterOption[transfer.Adapter]) *cobra.Command {
	a := &app{v: viper.New(), adapter: extra}

	root := &cobra.Command{
		Use:   "s3cognito",
		Short: "Upload, download and delete S3 objects with Cognito user credentials",
		Long: `s3cognito moves files to and from an S3 bucket using temporary credentials
issued by a Cognito identity pool for a user-pool id token.

Pools, bucket and regions are read from an awsconfiguration.json file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", defaultConfigPath, "Path to awsconfiguration.json")
	flags.String("config-name", configuration.DefaultName, "Configuration name inside the file")
	flags.StringP("token", "t", "", "Cognito user pool id token")
	flags.StringP("bucket", "b", "", "Bucket override")
	flags.StringP("region", "r", "", "Bucket region override (US_EAST_1 or us-east-1)")
	flags.String("endpoint", "", "Custom S3 endpoint")
	flags.Bool("path-style", false, "Use path-style addressing")
	flags.String("url-style", string(transfer.VirtualHosted), "Upload URL style (virtual-hosted, region-path)")
	flags.StringP("log-level", "l", "warn", "Log level (debug, info, warn, error)")

	_ = a.v.BindPFlags(flags)
	a.v.SetEnvPrefix(configuration.EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(a.uploadCmd(), a.downloadCmd(), a.deleteCmd(), regionsCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		// failures were already reported on their result line
		var f *s3cognito.Failure
		if !errors.As(err, &f) {
			fmt.Fprintln(os.Stderr, red("error:"), err)
		}
		stop()
		os.Exit(1)
	}
}

// newAdapter loads the configuration and builds an Adapter from the flags.
func (a *app) newAdapter(cmd *cobra.Command) (*transfer.Adapter, error) {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	level, err := logrus.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)

	conf, err := configuration.Load(a.v.GetString("config"), configuration.WithName(a.v.GetString("config-name")))
	if err != nil {
		return nil, err
	}

	opts := transfer.Options{
		Endpoint:       a.v.GetString("endpoint"),
		ForcePathStyle: a.v.GetBool("path-style"),
		URLStyle:       transfer.ParseURLStyle(a.v.GetString("url-style")),
	}

	adapterOpts := append([]options.NewAdapterOption[transfer.Adapter]{
		transfer.WithOptions(opts),
		transfer.WithLogger(logger),
	}, a.adapter...)
	return transfer.NewAdapter(conf, adapterOpts...), nil
}

// request builds the Request shared by every subcommand from the persistent flags.
func (a *app) request(op s3cognito.Operation, filePath, key string) s3cognito.Request {
	return s3cognito.Request{
		Operation: op,
		FilePath:  filePath,
		Key:       key,
		Bucket:    a.v.GetString("bucket"),
		Region:    a.v.GetString("region"),
		AuthToken: a.v.GetString("token"),
	}
}

// printOutcome writes one result line and returns the failure, if any.
func printOutcome(cmd *cobra.Command, o s3cognito.Outcome) error {
	out := cmd.OutOrStdout()
	if o.OK() {
		_, _ = fmt.Fprintf(out, "%s %s %s\n", green("ok"), o.Operation, o.Value)
		return nil
	}
	_, _ = fmt.Fprintf(out, "%s %s %s [%s] %s\n", red("failed"), o.Operation, o.Key, yellow(o.Failure.Category.Code()), o.Failure.Message)
	return o.Failure
}
