/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/ghodss/yaml"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/shockphys/goshock/export"
	"github.com/shockphys/goshock/graphics"
	"github.com/shockphys/goshock/hugoniot"
	"github.com/shockphys/goshock/materials"
	"github.com/shockphys/goshock/mixture"
)

type ModelMix struct {
	DeckFile   string
	Graph      bool
	ExportFile string
	Profile    bool
}

// DeckComponent selects one mixture component: either a catalog material by
// name, or inline custom Hugoniot parameters.
type DeckComponent struct {
	Material       string  `yaml:"Material"` // catalog entry; empty for custom
	Name           string  `yaml:"Name"`
	Rho0           float64 `yaml:"Rho0"`
	C0             float64 `yaml:"C0"`
	S              float64 `yaml:"S"`
	VolumeFraction float64 `yaml:"VolumeFraction"`
}

// MixDeck is the YAML input deck for the mix command.
type MixDeck struct {
	Title      string          `yaml:"Title"`
	Components []DeckComponent `yaml:"Components"`
	UpMin      float64         `yaml:"UpMin"`
	UpMax      float64         `yaml:"UpMax"`
	NumPoints  int             `yaml:"NumPoints"`
}

func (md *MixDeck) Parse(data []byte) error {
	return yaml.Unmarshal(data, md)
}

func (md *MixDeck) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", md.Title)
	fmt.Printf("%8.5f\t\t= UpMin (km/s)\n", md.UpMin)
	fmt.Printf("%8.5f\t\t= UpMax (km/s)\n", md.UpMax)
	fmt.Printf("[%d]\t\t\t= NumPoints\n", md.NumPoints)
	for i, c := range md.Components {
		if c.Material != "" {
			fmt.Printf("Component[%d] = %s, vfrac = %g\n", i, c.Material, c.VolumeFraction)
		} else {
			fmt.Printf("Component[%d] = %s (custom: Rho0 = %g, C0 = %g, S = %g), vfrac = %g\n",
				i, c.Name, c.Rho0, c.C0, c.S, c.VolumeFraction)
		}
	}
}

// mixCmd represents the mix command
var mixCmd = &cobra.Command{
	Use:   "mix",
	Short: "Derive the effective Hugoniot of a material mixture",
	Long: `Derive the effective Hugoniot of a material mixture from a YAML input deck,

goshock mix -I mixture.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		mm := &ModelMix{}
		if mm.DeckFile, err = cmd.Flags().GetString("inputDeckFile"); err != nil {
			panic(err)
		}
		mm.Graph, _ = cmd.Flags().GetBool("graph")
		mm.ExportFile, _ = cmd.Flags().GetString("exportFile")
		mm.Profile, _ = cmd.Flags().GetBool("profile")
		md := processMixInput(mm)
		RunMix(mm, md)
	},
}

func processMixInput(mm *ModelMix) (md *MixDeck) {
	var (
		err      error
		willExit bool
	)
	if len(mm.DeckFile) == 0 {
		err = fmt.Errorf("must supply an input deck file (-I, --inputDeckFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Cu loaded PMMA"
UpMin: 0.
UpMax: 6.
NumPoints: 100
Components:
  - Material: Copper
    VolumeFraction: 0.3
  - Name: MyBinder       # inline custom material
    Rho0: 1.2
    C0: 2.7
    S: 1.49
    VolumeFraction: 0.7
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(mm.DeckFile); err != nil {
		panic(err)
	}
	md = &MixDeck{}
	if err = md.Parse(data); err != nil {
		panic(err)
	}
	if md.NumPoints < 10 {
		fmt.Printf("error: NumPoints must be at least 10, got %d\n", md.NumPoints)
		os.Exit(1)
	}
	if md.UpMin >= md.UpMax {
		fmt.Printf("error: UpMin must be less than UpMax\n")
		os.Exit(1)
	}
	return
}

// ResolveComponents turns deck component selections into EOS/fraction pairs
// using the catalog for premade names and Validate for custom parameters.
func ResolveComponents(cat *materials.Catalog, deck []DeckComponent) ([]mixture.Component, error) {
	comps := make([]mixture.Component, 0, len(deck))
	for _, dc := range deck {
		var (
			eos hugoniot.EOS
			err error
		)
		if dc.Material != "" {
			if eos, err = cat.Get(dc.Material); err != nil {
				return nil, err
			}
		} else {
			eos = hugoniot.EOS{Name: dc.Name, Rho0: dc.Rho0, C0: dc.C0, S: dc.S}
			if err = eos.Validate(); err != nil {
				return nil, err
			}
		}
		comps = append(comps, mixture.Component{EOS: eos, VolumeFraction: dc.VolumeFraction})
	}
	return comps, nil
}

func RunMix(mm *ModelMix, md *MixDeck) {
	if mm.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	md.Print()
	cat, err := materials.Load(viper.GetString("materialsFile"))
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	comps, err := ResolveComponents(cat, md.Components)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	refUp := floats.Span(make([]float64, md.NumPoints), md.UpMin, md.UpMax)
	mix, err := mixture.Mix(md.Title, comps, refUp)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	mix.Print()
	if mm.ExportFile == "" && !mm.Graph {
		return
	}
	traces, err := graphics.MixtureTraces(mix, comps, refUp)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if mm.ExportFile != "" {
		if err = export.Write(mm.ExportFile, traces); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("traces written to %s\n", mm.ExportFile)
	}
	if mm.Graph {
		graphics.Plot(traces)
		fmt.Printf("charts are live, ctrl-c to exit\n")
		for {
			time.Sleep(10 * time.Second)
		}
	}
}

func init() {
	rootCmd.AddCommand(mixCmd)
	mixCmd.Flags().StringP("inputDeckFile", "I", "", "YAML mixture deck: title, components, Up sampling")
	mixCmd.Flags().BoolP("graph", "g", false, "display P-Up and Us-Up charts for components and mixture")
	mixCmd.Flags().StringP("exportFile", "o", "", "write traces to a .csv or .xlsx file")
	mixCmd.Flags().Bool("profile", false, "write a CPU profile of the calculation")
}
