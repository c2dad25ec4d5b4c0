/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/taxodb/internal/iofs"
	"github.com/gnames/taxodb/internal/iologger"
	taxodb "github.com/gnames/taxodb/pkg"
	"github.com/gnames/taxodb/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command when called without any
// subcommands.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", taxodb.Version, taxodb.Build),
		Use:     "taxodb",
		Short:   "Taxodb queries the EBI taxonomy flat file",
		Long: `Taxodb loads the EBI taxonomy flat file (taxonomy.dat) into memory and
answers questions about it: lineages, children and family trees of taxa,
and names that match a pattern. It can also look up taxa in the Ensembl
REST service and open taxon pages of UniProt.

The flat file is downloaded once to ~/.cache/taxodb/corpus and reused.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (TAXODB_*)
  3. Config file (~/.config/taxodb/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (tree.limit -> TAXODB_TREE_LIMIT).

  Examples:
    TAXODB_CORPUS_URL       URL or path of the flat file
    TAXODB_TREE_LIMIT       Edges limit of family trees
    TAXODB_LOOKUP_URL       Ensembl REST URL
    TAXODB_LOG_LEVEL        Log level (debug/info/warn/error)
    TAXODB_JOBS_NUMBER      Number of parsing workers`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "taxodb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for taxodb")

	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "format", "f", "text",
		"output format: text, json or yaml",
	)
	rootCmd.PersistentFlags().IntP(
		"jobs", "j", 0,
		"number of parsing workers (0 = from config)",
	)
	rootCmd.PersistentFlags().BoolP(
		"quiet", "q", false,
		"do not show progress bars",
	)

	rootCmd.AddCommand(
		getFetchCmd(),
		getLoadCmd(),
		getLineageCmd(),
		getChildrenCmd(),
		getTreeCmd(),
		getSearchCmd(),
		getLookupCmd(),
		getWebCmd(),
		getServeCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, _ []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// flags have the highest precedence
	cfg.Update(globalFlagOptions(cmd))

	// Reconfigure logging with user's settings, the log file started
	// above is continued.
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := getRootCmd().ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("TAXODB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	keys := []string{
		// Corpus configuration
		"corpus.url",
		"corpus.file_name",

		// Family tree configuration
		"tree.limit",
		"tree.method",

		// Remote services
		"lookup.url",
		"lookup.timeout",
		"web.url",

		// HTTP API
		"server.port",

		// Log configuration
		"log.level",
		"log.format",
		"log.destination",

		// General configuration
		"jobs_number",
		"with_progress",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	v.AutomaticEnv()
}
