package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/henry-deangelis/clfparse"
)

var (
	inFile       string
	outFile      string
	maxClientIPs int
	maxPaths     int
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "clfparse",
	Short: "Validate and summarize Common Log Format access logs",
	Long: `clfparse reads an access log in the Common Log Format, such as the
logs written by the nginx load balancer, validates every line field by
field, and writes a JSON summary ranking the busiest client IPs and the
request paths with the largest average response size.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&inFile, "in", "i", "", "input log file (nginx log entries)")
	rootCmd.Flags().StringVarP(&outFile, "out", "o", "", "output JSON file")
	rootCmd.Flags().IntVarP(&maxClientIPs, "max-client-ips", "c", 10, "maximum number of results in the top_client_ips field")
	rootCmd.Flags().IntVarP(&maxPaths, "max-paths", "p", 10, "maximum number of results in the top_path_avg_response_size field")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug output (overrides any value of the THELOGLEVEL env variable)")
	rootCmd.MarkFlagRequired("in")
	rootCmd.MarkFlagRequired("out")

	viper.BindEnv("loglevel", "THELOGLEVEL")
	viper.BindEnv("statsd_server", "STATSD_SERVER")
}

// newLogger builds the process logger. The level comes from the THELOGLEVEL
// env variable, defaulting to INFO; the verbose flag forces DEBUG.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch name := viper.GetString("loglevel"); name {
	case "":
		fmt.Fprintln(os.Stderr, "THELOGLEVEL env variable is not set. Defaulting to INFO.")
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR", "CRITICAL":
		level = slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "Value of %q in THELOGLEVEL env variable is not a valid log level. Defaulting to INFO.\n", name)
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	if verbose && viper.GetString("loglevel") != "" {
		logger.Warn("log level forced to DEBUG by the verbose flag, overriding THELOGLEVEL")
	}
	return logger
}

// newSink builds the metrics sink from the STATSD_SERVER env variable, or
// returns nil when no server is configured or reachable. Metrics are
// best-effort: every problem here is logged and the run continues.
func newSink(logger *slog.Logger) *clfparse.StatsdSink {
	env := viper.GetString("statsd_server")
	if env == "" {
		logger.Info("no STATSD_SERVER env variable found, continuing without statsd")
		return nil
	}
	addr, ok := clfparse.StatsdAddr(env)
	if !ok {
		logger.Error("STATSD_SERVER value is not a valid host:port, continuing without statsd", "value", env)
		return nil
	}
	sink, err := clfparse.NewStatsdSink(addr)
	if err != nil {
		logger.Error("could not create statsd client, continuing without statsd", "error", err)
		return nil
	}
	logger.Info("sending metrics to statsd", "server", addr)
	return sink
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	slog.SetDefault(logger)

	if maxClientIPs < 0 || maxClientIPs > 10000 {
		return fmt.Errorf("value of %d for max-client-ips is not between 0 and 10000", maxClientIPs)
	}
	if maxPaths < 0 || maxPaths > 10000 {
		return fmt.Errorf("value of %d for max-paths is not between 0 and 10000", maxPaths)
	}
	if _, err := os.Stat(outFile); err == nil {
		logger.Warn("output file already exists and will be overwritten", "file", outFile)
	}
	out, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("output file cannot be opened for writing: %w", err)
	}
	defer out.Close()

	sink := newSink(logger)
	opt := clfparse.Options{
		MaxClientIPs: maxClientIPs,
		MaxPaths:     maxPaths,
		Logger:       logger,
	}
	if sink != nil {
		opt.Metrics = sink
		defer sink.Close()
	}

	logger.Info("parsing input file", "file", inFile)
	report, err := clfparse.SummarizeFile(inFile, opt)
	if err != nil {
		return err
	}

	doc, err := report.JSON()
	if err != nil {
		return err
	}
	if _, err := out.Write(append(doc, '\n')); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	logger.Info("report written", "file", outFile)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
