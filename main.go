package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version = "dev"
)

var (
	cfgFile string
	debug   bool
	cfg     *viper.Viper
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "launchweek",
		Short:   "Launch tracker, content assistant and launch-week showcase",
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
			cfg = loadConfig(cfgFile)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(launchesCmd())
	rootCmd.AddCommand(activityCmd())
	rootCmd.AddCommand(generateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.type", "sqlite")
	v.SetDefault("db.uri", "launchweek.db")
	v.SetDefault("db.showSQL", false)
	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.maxTokens", 1000)
	v.SetDefault("llm.timeout", "60s")
	v.SetDefault("mcp.listen", "")
	v.SetDefault("mcp.auth.enabled", false)
	v.SetDefault("mcp.auth.type", "token")
	v.SetDefault("web.enabled", true)
}

func loadConfig(cfgFile string) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".configs"))
		}
		v.AddConfigPath("./configs")
		ex, err := os.Executable()
		if err == nil {
			exPath := filepath.Dir(ex)
			v.AddConfigPath(filepath.Join(exPath, "configs"))
		}
		v.SetConfigName("launchweek")
	}
	v.SetEnvPrefix("LAUNCHWEEK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	} else if cfgFile != "" {
		log.Warnf("read config %s failed: %s", cfgFile, err.Error())
	}
	return v
}
