package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "opm-material",
	Short: "Black-oil PVT property engine",
	Long: `Computes pressure-volume-temperature properties of the oil, gas and
water phases of a black-oil reservoir fluid model from a YAML fluid deck.
The correlation family used per phase is selected from which tables the
deck carries.`,
}

// Execute runs the root command; called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Float64("surfacePressure", 101325.0, "reference surface pressure [Pa]")
	rootCmd.PersistentFlags().Float64("surfaceTemperature", 273.15+15.56, "reference surface temperature [K]")

	viper.SetEnvPrefix("OPM")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("surfacePressure", rootCmd.PersistentFlags().Lookup("surfacePressure"))
	_ = viper.BindPFlag("surfaceTemperature", rootCmd.PersistentFlags().Lookup("surfaceTemperature"))
}
