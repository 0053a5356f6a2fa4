package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	geoweb "github.com/gerayyy/qingflow-geo-web"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	configFile string
	addr       string
)

var rootCmd = &cobra.Command{
	Use:   "geoweb",
	Short: "Structured content publishing and rendering service",
	Long: `geoweb serves block-structured articles published through an
authenticated webhook, rendered with Schema.org structured data.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := geoweb.LoadConfig(configFile)
		if err != nil {
			return err
		}
		if addr != "" {
			cfg.Addr = addr
		}
		app := geoweb.New(cfg)
		defer app.Close()
		log.Printf("geoweb %s listening on %s", version, cfg.Addr)
		return app.Start()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the geoweb version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("geoweb %s\n", version)
	},
}

func init() {
	serveCmd.Flags().StringVar(&configFile, "config", "", "Path to YAML config file (optional)")
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	rootCmd.AddCommand(serveCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
