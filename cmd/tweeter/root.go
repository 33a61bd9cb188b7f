package main

import (
	"flag"
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/EmilyShepherd/go-tweeter/pkg/client"
	"github.com/EmilyShepherd/go-tweeter/pkg/config"
	"github.com/EmilyShepherd/go-tweeter/pkg/credentials"
	"github.com/EmilyShepherd/go-tweeter/pkg/tweeter"
)

var (
	// Global flags
	cfgFile string
	output  string
)

var rootCmd = &cobra.Command{
	Use:   "tweeter",
	Short: "Query the REST and streaming APIs from the command line",
	Long: `tweeter signs requests with the OAuth1 credentials from the config file
or the APP_KEY, APP_KEY_SECRET, ACCESS_TOKEN and ACCESS_TOKEN_SECRET
environment variables.

Examples:
  tweeter me
  tweeter timeline --count 5 -o yaml
  tweeter search golang --result-type recent
  tweeter filter --track golang,gopher --limit 10`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if output != "json" && output != "yaml" {
			return fmt.Errorf("unknown output format %q, must be json or yaml", output)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.config/tweeter/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "json", "Output format (json, yaml)")

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)
}

// app is everything a command needs to talk to the API.
type app struct {
	*tweeter.Tweeter
	callOpts []client.CallOption
	creds    credentials.Provider
}

func newApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	log := klog.Background()

	creds, err := cfg.Provider(log)
	if err != nil {
		return nil, err
	}

	session, err := cfg.Session()
	if err != nil {
		_ = config.Close(creds)
		return nil, err
	}

	return &app{
		Tweeter: tweeter.New(session, creds,
			tweeter.WithLogger(log),
			tweeter.WithURLs(cfg.APIURL, cfg.StreamURL, cfg.APIv2URL),
		),
		callOpts: cfg.CallOptions(),
		creds:    creds,
	}, nil
}

func (a *app) Close() error {
	err := a.Tweeter.Close()
	if cerr := config.Close(a.creds); err == nil {
		err = cerr
	}
	return err
}

// withApp runs fn with a ready app and closes it afterwards.
func withApp(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd, args, a)
	}
}
