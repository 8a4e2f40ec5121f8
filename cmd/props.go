package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joakim-hove/opm-material/blackoilpvt"
	"github.com/joakim-hove/opm-material/deck"
)

type propsQuery struct {
	DeckFile    string
	Region      int
	Temperature float64
	Pressure    float64
	XoG         float64
	XgO         float64
}

// propsCmd evaluates the phase properties of a fluid deck at one state point.
var propsCmd = &cobra.Command{
	Use:   "props",
	Short: "Evaluate PVT properties of a fluid deck at a state point",
	Long: `Evaluate density, viscosity, formation volume factor, the
dissolution/vaporization factors and (where applicable) the saturation
pressure for all three phases of a YAML fluid deck at a given region,
temperature, pressure and composition.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			q   propsQuery
			err error
		)
		if q.DeckFile, err = cmd.Flags().GetString("deckFile"); err != nil {
			panic(err)
		}
		q.Region, _ = cmd.Flags().GetInt("region")
		q.Temperature, _ = cmd.Flags().GetFloat64("temperature")
		q.Pressure, _ = cmd.Flags().GetFloat64("pressure")
		q.XoG, _ = cmd.Flags().GetFloat64("xog")
		q.XgO, _ = cmd.Flags().GetFloat64("xgo")

		if err = runProps(&q); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(propsCmd)
	propsCmd.Flags().StringP("deckFile", "f", "fluid.yaml", "YAML fluid deck to load")
	propsCmd.Flags().IntP("region", "r", 0, "PVT region index")
	propsCmd.Flags().Float64P("temperature", "T", 300.0, "temperature [K]")
	propsCmd.Flags().Float64P("pressure", "p", 1e7, "phase pressure [Pa]")
	propsCmd.Flags().Float64("xog", 0.0, "mass fraction of gas dissolved in oil")
	propsCmd.Flags().Float64("xgo", 0.0, "mass fraction of oil vaporized in gas")
}

func runProps(q *propsQuery) error {
	data, err := os.ReadFile(q.DeckFile)
	if err != nil {
		return err
	}

	var d deck.Deck
	if err = d.Parse(data); err != nil {
		return err
	}

	surface := blackoilpvt.SurfaceConditions{
		Pressure:    viper.GetFloat64("surfacePressure"),
		Temperature: viper.GetFloat64("surfaceTemperature"),
	}
	pvt, err := d.Build(surface)
	if err != nil {
		return err
	}
	if q.Region < 0 || q.Region >= pvt.NumRegions {
		return fmt.Errorf("region %d out of range: deck has %d PVT regions", q.Region, pvt.NumRegions)
	}

	if d.Title != "" {
		fmt.Printf("\"%s\"\n", d.Title)
	}
	fmt.Printf("[%d]\t\t= PVT regions (oil: %s, gas: %s, water: %s)\n",
		pvt.NumRegions, pvt.Oil.Approach(), pvt.Gas.Approach(), pvt.Water.Approach())
	fmt.Printf("%8.5g\t= temperature [K]\n", q.Temperature)
	fmt.Printf("%8.5g\t= pressure [Pa]\n", q.Pressure)

	r, T, p := q.Region, q.Temperature, q.Pressure

	fmt.Printf("oil   (XoG=%g):\trho=%.6g kg/m^3\tmu=%.6g Pa.s\tB=%.6g\tRs=%.6g\n",
		q.XoG,
		pvt.Oil.Density(r, T, p, q.XoG),
		pvt.Oil.Viscosity(r, T, p, q.XoG),
		pvt.Oil.FormationVolumeFactor(r, T, p, q.XoG),
		pvt.Oil.GasDissolutionFactor(r, T, p))
	oilPSat, oilPSatErr := pvt.Oil.SaturationPressure(r, T, q.XoG)
	printSaturationPressure("oil", oilPSat, oilPSatErr)

	fmt.Printf("gas   (XgO=%g):\trho=%.6g kg/m^3\tmu=%.6g Pa.s\tB=%.6g\tRv=%.6g\n",
		q.XgO,
		pvt.Gas.Density(r, T, p, q.XgO),
		pvt.Gas.Viscosity(r, T, p, q.XgO),
		pvt.Gas.FormationVolumeFactor(r, T, p, q.XgO),
		pvt.Gas.OilVaporizationFactor(r, T, p))
	gasPSat, gasPSatErr := pvt.Gas.SaturationPressure(r, T, q.XgO)
	printSaturationPressure("gas", gasPSat, gasPSatErr)

	fmt.Printf("water:\t\trho=%.6g kg/m^3\tmu=%.6g Pa.s\tB=%.6g\n",
		pvt.Water.Density(r, T, p),
		pvt.Water.Viscosity(r, T, p),
		pvt.Water.FormationVolumeFactor(r, T, p))

	return nil
}

func printSaturationPressure(phase string, pSat float64, err error) {
	switch {
	case err == nil:
		fmt.Printf("%s saturation pressure: %.6g Pa\n", phase, pSat)
	case errors.Is(err, blackoilpvt.ErrNotApplicable):
		// nothing dissolved in this phase, no pressure to report
	default:
		fmt.Printf("%s saturation pressure: %v\n", phase, err)
	}
}
