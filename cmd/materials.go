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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shockphys/goshock/hugoniot"
	"github.com/shockphys/goshock/materials"
)

// materialsCmd represents the materials command
var materialsCmd = &cobra.Command{
	Use:   "materials [name]",
	Short: "List the materials catalog or show one entry",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := materials.Load(viper.GetString("materialsFile"))
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if len(args) == 1 {
			eos, err := cat.Get(args[0])
			if err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			printMaterial(eos)
			return
		}
		fmt.Printf("%-16s%10s%10s%10s\n", "Name", "Rho0", "C0", "S")
		for _, name := range cat.Names() {
			eos, _ := cat.Get(name)
			fmt.Printf("%-16s%10.4f%10.4f%10.4f\n", eos.Name, eos.Rho0, eos.C0, eos.S)
		}
	},
}

func printMaterial(eos hugoniot.EOS) {
	fmt.Printf("\"%s\"\t\t= Name\n", eos.Name)
	fmt.Printf("%8.4f\t\t= Rho0 (g/cc)\n", eos.Rho0)
	fmt.Printf("%8.4f\t\t= C0 (km/s)\n", eos.C0)
	fmt.Printf("%8.4f\t\t= S\n", eos.S)
}

// materialsAddCmd appends a custom material to the catalog file
var materialsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom material to the catalog file",
	Run: func(cmd *cobra.Command, args []string) {
		path := viper.GetString("materialsFile")
		if path == "" {
			fmt.Printf("error: must supply a catalog file (-M, --materialsFile) to add to\n")
			os.Exit(1)
		}
		eos := hugoniot.EOS{}
		eos.Name, _ = cmd.Flags().GetString("name")
		eos.Rho0, _ = cmd.Flags().GetFloat64("rho0")
		eos.C0, _ = cmd.Flags().GetFloat64("c0")
		eos.S, _ = cmd.Flags().GetFloat64("s")
		cat, err := materials.Load(path)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = cat.Add(eos); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = cat.Save(path); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("added %q to %s\n", eos.Name, path)
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
	materialsCmd.AddCommand(materialsAddCmd)
	materialsAddCmd.Flags().String("name", "", "material name")
	materialsAddCmd.Flags().Float64("rho0", 0, "reference density (g/cc)")
	materialsAddCmd.Flags().Float64("c0", 0, "bulk sound speed (km/s)")
	materialsAddCmd.Flags().Float64("s", 0, "Us-Up slope")
}
