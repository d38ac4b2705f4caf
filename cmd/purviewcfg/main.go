package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KarlGW/purviewcfg"
	"github.com/KarlGW/purviewcfg/azure/cloud"
	"github.com/KarlGW/purviewcfg/version"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// envFiles collects repeated -env-file flags.
type envFiles []string

func (f *envFiles) String() string {
	return strings.Join(*f, ",")
}

func (f *envFiles) Set(s string) error {
	*f = append(*f, s)
	return nil
}

// output is the printed form of a configuration. The client secret
// is redacted.
type output struct {
	TenantID           string   `json:"tenantId" yaml:"tenantId"`
	ClientID           string   `json:"clientId" yaml:"clientId"`
	ClientSecret       string   `json:"clientSecret" yaml:"clientSecret"`
	Account            string   `json:"account" yaml:"account"`
	EntityGUID         string   `json:"entityGuid" yaml:"entityGuid"`
	Classification     string   `json:"classification" yaml:"classification"`
	Cloud              string   `json:"cloud" yaml:"cloud"`
	CatalogURL         string   `json:"catalogUrl" yaml:"catalogUrl"`
	ClassificationsURL string   `json:"classificationsUrl" yaml:"classificationsUrl"`
	Placeholders       []string `json:"placeholders,omitempty" yaml:"placeholders,omitempty"`
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("purviewcfg", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var files envFiles
	fs.Var(&files, "env-file", "env file to read credentials from (repeatable)")
	account := fs.String("account", purviewcfg.DefaultAccount, "Purview account name")
	entity := fs.String("entity-guid", purviewcfg.DefaultEntityGUID, "GUID of the target entity")
	classification := fs.String("classification", purviewcfg.DefaultClassification, "classification name")
	cl := fs.String("cloud", string(cloud.AzurePublic), "Azure cloud (public, government, china)")
	format := fs.String("output", "yaml", "output format (yaml, json)")
	logFormat := fs.String("log-format", "console", "log format (console, json)")
	validate := fs.Bool("validate", false, "exit with an error if the configuration is not valid")
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "purviewcfg %s %s\n", version.Version(), version.Commit())
		return nil
	}

	log, err := newLogger(*logFormat, stderr)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := purviewcfg.Load(
		purviewcfg.WithEnvFile(files...),
		purviewcfg.WithAccount(*account),
		purviewcfg.WithEntityGUID(*entity),
		purviewcfg.WithClassification(*classification),
		purviewcfg.WithCloud(cloud.Parse(*cl)),
		purviewcfg.WithLogger(log),
	)
	if err != nil {
		return err
	}
	log.Debug("configuration loaded", zap.Object("config", cfg))

	if err := write(stdout, *format, newOutput(cfg)); err != nil {
		return err
	}

	if *validate {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// newOutput creates the printed form of cfg.
func newOutput(cfg purviewcfg.Config) output {
	secret := ""
	if len(cfg.ClientSecret) > 0 {
		secret = "[REDACTED]"
	}
	return output{
		TenantID:           cfg.TenantID,
		ClientID:           cfg.ClientID,
		ClientSecret:       secret,
		Account:            cfg.Account,
		EntityGUID:         cfg.EntityGUID,
		Classification:     cfg.Classification,
		Cloud:              string(cfg.Cloud),
		CatalogURL:         cfg.CatalogURL(),
		ClassificationsURL: cfg.ClassificationsURL(),
		Placeholders:       cfg.Placeholders(),
	}
}

// write encodes out to w in the provided format.
func write(w io.Writer, format string, out output) error {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// newLogger creates a logger writing to w in the provided format.
func newLogger(format string, w io.Writer) (*zap.Logger, error) {
	var cfg zap.Config
	var enc zapcore.Encoder
	switch strings.ToLower(format) {
	case "json":
		cfg = zap.NewProductionConfig()
		enc = zapcore.NewJSONEncoder(cfg.EncoderConfig)
	case "console":
		cfg = zap.NewDevelopmentConfig()
		enc = zapcore.NewConsoleEncoder(cfg.EncoderConfig)
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}
	ws := zapcore.AddSync(w)
	return zap.New(zapcore.NewCore(enc, ws, cfg.Level), zap.AddCaller(), zap.ErrorOutput(ws)), nil
}
