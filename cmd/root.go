package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wcfm-radio/wcfm/internal/utils"
	"github.com/wcfm-radio/wcfm/pkg/crawler"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `	           __
	__      __/ _| ___ ___
	\ \ /\ / / |_ / __| '_ ` + "`" + ` _ \
	 \ V  V /|  _| (__| | | | | |
	  \_/\_/ |_|  \___|_| |_| |_|

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wcfm",
	Short: "A schedule browser for WCFM 91.9 FM, Williamstown.",
	Long: LOGO + `wcfm crawls the WCFM website, keeps a local copy of the weekly show
schedule, and lets you search it, check what's on air, and manage show
subscriptions from your command line.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wcfm.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("dbpath", "", "", "SQLite database path (default is $HOME/.config/wcfm/wcfm.sqlite)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".wcfm")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.wcfm.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default empty values for all keys
	viper.SetDefault("schedule.url", crawler.DefaultScheduleURL)
	viper.SetDefault("db.path", "")
	viper.SetDefault("server.listen", ":8080")
	viper.SetDefault("server.username", "")
	viper.SetDefault("server.password", "")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}
