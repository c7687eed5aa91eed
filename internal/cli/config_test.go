package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	setConfigDefaults()
	t.Cleanup(viper.Reset)
}

func TestConfigFromViper_Defaults(t *testing.T) {
	resetViper(t)

	cfg := configFromViper()

	if cfg.Classifier.MinTokenLength != 2 {
		t.Errorf("MinTokenLength = %d, want 2", cfg.Classifier.MinTokenLength)
	}
	if !cfg.Classifier.Stemming {
		t.Error("Stemming default should be true")
	}
	if cfg.Classifier.CaseSensitive {
		t.Error("CaseSensitive default should be false")
	}
	if cfg.LLM.Provider != "" {
		t.Errorf("LLM.Provider = %q, want disabled", cfg.LLM.Provider)
	}
	if cfg.LLM.Timeout != 30 {
		t.Errorf("LLM.Timeout = %d, want 30", cfg.LLM.Timeout)
	}
}

func TestConfigFromViper_SettingsTakeEffect(t *testing.T) {
	// Keys set through viper (config file or CODEMIX_* env) must reach the
	// runtime configuration.
	resetViper(t)
	viper.Set("classifier.min_token_length", 3)
	viper.Set("classifier.case_sensitive", true)
	viper.Set("classifier.stemming", false)
	viper.Set("concurrency.workers", 2)
	viper.Set("llm.model", "llama3.1:8b")

	cfg := configFromViper()

	if cfg.Classifier.MinTokenLength != 3 {
		t.Errorf("MinTokenLength = %d, want 3", cfg.Classifier.MinTokenLength)
	}
	if !cfg.Classifier.CaseSensitive {
		t.Error("CaseSensitive not picked up")
	}
	if cfg.Classifier.Stemming {
		t.Error("Stemming not picked up")
	}
	if cfg.Concurrency.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Concurrency.Workers)
	}
	if cfg.LLM.Model != "llama3.1:8b" {
		t.Errorf("LLM.Model = %q", cfg.LLM.Model)
	}
}

func TestBuildConfig_FlagBeatsConfigFile(t *testing.T) {
	resetViper(t)
	viper.Set("classifier.min_token_length", 3)
	viper.Set("classifier.stemming", false)

	cmd := &cobra.Command{Use: "cmr"}
	addClassifierFlags(cmd)
	addLLMFlags(cmd)

	if err := cmd.Flags().Set("min-token-len", "4"); err != nil {
		t.Fatal(err)
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}

	// Explicitly set flag wins over the config file.
	if cfg.Classifier.MinTokenLength != 4 {
		t.Errorf("MinTokenLength = %d, want flag value 4", cfg.Classifier.MinTokenLength)
	}
	// Untouched flag leaves the config-file value in force.
	if cfg.Classifier.Stemming {
		t.Error("Stemming should keep the config-file value false")
	}
	// LLM stays disabled without --llm, whatever the config says.
	if cfg.LLM.Provider != "" {
		t.Errorf("LLM.Provider = %q, want disabled without --llm", cfg.LLM.Provider)
	}
}
