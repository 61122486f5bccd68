package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cognicore/text2features/pkg/text2features/config"
)

const envPrefix = "TEXT2FEATURES"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
}

func newApp() *app {
	a := &app{v: viper.New(), log: logrus.New()}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	return a
}

// newRootCmd builds the command tree. Each call gets its own viper instance
// so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "text2features",
		Short: "Extract keywords from documents for boolean feature datasets",
		Long: `text2features ranks the lemmas of each document with TextRank and keeps
the best ones as keywords. The keyword rows of a batch can then be turned
into a boolean document/feature dataset.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log.SetOutput(cmd.ErrOrStderr())
			level, err := logrus.ParseLevel(a.v.GetString("log_level"))
			if err != nil {
				return err
			}
			a.log.SetLevel(level)
			return nil
		},
	}

	root.PersistentFlags().String("config", "", "YAML configuration file (or set TEXT2FEATURES_CONFIG)")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	a.bind(root.PersistentFlags().Lookup("config"), "config")
	a.bind(root.PersistentFlags().Lookup("log-level"), "log_level")

	root.AddCommand(a.extractCmd(), a.datasetCmd(), a.runsCmd())
	return root
}

// bind ties a flag to a viper key. A nil flag is a programming error.
func (a *app) bind(f *pflag.Flag, key string) {
	if err := a.v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

// bindFlags binds the running command's flags, keyed by viper key. Binding
// happens at run time because subcommands reuse keys such as "output".
func (a *app) bindFlags(cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		a.bind(cmd.Flags().Lookup(name), key)
	}
}

// loadConfig resolves the extraction configuration: defaults, then the
// --config file, then explicitly set flags and TEXT2FEATURES_* variables.
func (a *app) loadConfig() (config.Config, error) {
	cfg := config.Default()
	if path := a.v.GetString("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("load config: %w", err)
		}
	}

	if a.v.IsSet("algorithm") {
		cfg.Algorithm = a.v.GetString("algorithm")
	}
	if a.v.IsSet("stopwords") {
		cfg.Stopwords = append(cfg.Stopwords, a.v.GetStringSlice("stopwords")...)
	}
	if a.v.IsSet("stoplist") {
		cfg.StoplistPath = a.v.GetString("stoplist")
	}
	if a.v.IsSet("lexicon") {
		cfg.LexiconPath = a.v.GetString("lexicon")
	}
	if a.v.IsSet("stemming") {
		cfg.Stemming = a.v.GetBool("stemming")
	}
	if a.v.IsSet("candidate_pos") {
		cfg.CandidatePOS = a.v.GetStringSlice("candidate_pos")
	}
	if a.v.IsSet("ignore_words_len") {
		cfg.IgnoreWordsLen = a.v.GetIntSlice("ignore_words_len")
	}
	if a.v.IsSet("window_size") {
		cfg.WindowSize = a.v.GetInt("window_size")
	}
	if a.v.IsSet("min_score") {
		cfg.MinScore = a.v.GetFloat64("min_score")
	}
	if a.v.IsSet("min_number") {
		cfg.MinNumber = a.v.GetInt("min_number")
	}
	if a.v.IsSet("max_number") {
		cfg.MaxNumber = a.v.GetInt("max_number")
	}

	return cfg, cfg.Validate()
}
