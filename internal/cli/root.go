package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/cagridemirci1MIS/codemix/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "codemix",
	Short: "Codemix - code-mixing analysis for bilingual social-media corpora",
	Long: `Codemix analyzes Turkish-English code-mixing in social-media text.

It computes the code-mixing ratio (CMR, the fraction of word tokens of
English origin), extracts the English roots appearing in hybrid forms
like "like'lamak", calculates YouTube engagement rates, and produces
exploratory statistics over a text dataset.

Classification is transparent: a token counts as English only through a
direct lexicon match, a hybrid-root match, or a stemmed match against the
same lexicon. The heuristics make no claim of perfect language
identification and should be interpreted accordingly.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Codemix.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("codemix v0.3.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.codemix/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.codemix")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match CODEMIX_*
	viper.SetEnvPrefix("CODEMIX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setConfigDefaults()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setConfigDefaults seeds viper with the built-in defaults so the config
// file and CODEMIX_* environment variables can override them key by key.
func setConfigDefaults() {
	def := model.DefaultConfig()

	viper.SetDefault("classifier.case_sensitive", def.Classifier.CaseSensitive)
	viper.SetDefault("classifier.stemming", def.Classifier.Stemming)
	viper.SetDefault("classifier.min_token_length", def.Classifier.MinTokenLength)
	viper.SetDefault("classifier.lexicon", def.Classifier.Lexicon)

	viper.SetDefault("concurrency.workers", def.Concurrency.Workers)

	viper.SetDefault("output.include_footer", def.Output.IncludeFooter)

	viper.SetDefault("llm.provider", def.LLM.Provider)
	viper.SetDefault("llm.model", def.LLM.Model)
	viper.SetDefault("llm.base_url", def.LLM.BaseURL)
	viper.SetDefault("llm.timeout", def.LLM.Timeout)
	viper.SetDefault("llm.max_tokens", def.LLM.MaxTokens)
	viper.SetDefault("llm.requests_per_second", def.LLM.RequestsPerSecond)
	viper.SetDefault("llm.burst_size", def.LLM.BurstSize)
}

// configFromViper assembles the runtime configuration from viper's merged
// view: defaults, then config file, then CODEMIX_* environment variables.
func configFromViper() *model.Config {
	cfg := model.DefaultConfig()

	cfg.Classifier.CaseSensitive = viper.GetBool("classifier.case_sensitive")
	cfg.Classifier.Stemming = viper.GetBool("classifier.stemming")
	cfg.Classifier.MinTokenLength = viper.GetInt("classifier.min_token_length")
	cfg.Classifier.Lexicon = viper.GetString("classifier.lexicon")

	cfg.Concurrency.Workers = viper.GetInt("concurrency.workers")

	cfg.Output.IncludeFooter = viper.GetBool("output.include_footer")
	cfg.Output.Verbose = viper.GetBool("verbose")

	cfg.LLM.Provider = viper.GetString("llm.provider")
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Timeout = viper.GetInt("llm.timeout")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")
	cfg.LLM.RequestsPerSecond = viper.GetFloat64("llm.requests_per_second")
	cfg.LLM.BurstSize = viper.GetInt("llm.burst_size")

	return cfg
}
