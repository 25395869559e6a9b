package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wcfm-radio/wcfm/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the stored schedule over a JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr, _ := cmd.Flags().GetString("listen")
		if listenAddr == "" {
			listenAddr = viper.GetString("server.listen")
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		srv := server.New(db, viper.GetString("server.username"), viper.GetString("server.password"))
		return srv.Start(listenAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", "", "HTTP listen address (default from config, :8080)")
}
