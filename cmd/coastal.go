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

	"github.com/gosuri/uiprogress"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/coastmorph/InputParameters"
	"github.com/notargets/coastmorph/grid1d"
	"github.com/notargets/coastmorph/model_problems/Coastal1D"
)

// CoastalCmd represents the coastal command
var CoastalCmd = &cobra.Command{
	Use:   "coastal",
	Short: "One dimensional coastal profile evolution under tidal and wave forcing",
	Long: `
Runs the coupled shallow water / bedload transport / Exner bed evolution
solver on a 1D beach profile,

coastmorph coastal `,
	Run: func(cmd *cobra.Command, args []string) {
		mc := &ModelCoastal{}
		fmt.Println("coastal called")
		pr, _ := cmd.Flags().GetString("preset")
		mc.Preset = NewPresetType(pr)
		mc.ICFile, _ = cmd.Flags().GetString("inputParametersFile")
		mc.Steps, _ = cmd.Flags().GetInt("steps")
		mc.StepsPerFrame, _ = cmd.Flags().GetInt("stepsPerFrame")
		mc.Profile, _ = cmd.Flags().GetString("profile")
		ip := processCoastalInput(mc)
		RunCoastal(mc, ip)
	},
}

type ModelCoastal struct {
	Preset        PresetType
	ICFile        string
	Steps         int
	StepsPerFrame int
	Profile       string
}

type PresetType uint8

const (
	P_Calm PresetType = iota
	P_Storm
	P_HighTransport
	P_SpringTide
)

var (
	preset_names    = []string{"calm", "storm", "hightransport", "springtide"}
	def_TidalRange  = []float64{1.0, 2.0, 4.0, 5.5}
	def_TidalPeriod = []float64{12.4, 12.4, 8.0, 12.4}
	def_BeachSlope  = []float64{0.05, 0.05, 0.08, 0.04}
	def_GrainSize   = []float64{0.3, 0.25, 0.2, 0.35}
	def_WaveHeight  = []float64{0.5, 2.0, 2.5, 1.0}
	def_WavePeriod  = []float64{8.0, 6.0, 6.0, 7.0}
	def_Speed       = []float64{1.0, 1.0, 2.0, 1.0}
	def_Supply      = []float64{1.0, 1.0, 1.5, 1.2}
)

func NewPresetType(label string) PresetType {
	for i, name := range preset_names {
		if name == label {
			return PresetType(i)
		}
	}
	fmt.Printf("unknown preset [%s], using [%s]\n", label, preset_names[P_Calm])
	return P_Calm
}

// Defaults returns the input-parameter set for a preset; hightransport is the
// benchmark forcing combination used by the scenario tests.
func Defaults(p PresetType) (ip *InputParameters.CoastalParameters) {
	return &InputParameters.CoastalParameters{
		Title:           preset_names[p],
		TidalRange:      def_TidalRange[p],
		TidalPeriod:     def_TidalPeriod[p],
		BeachSlope:      def_BeachSlope[p],
		GrainSize:       def_GrainSize[p],
		WaveHeight:      def_WaveHeight[p],
		WavePeriod:      def_WavePeriod[p],
		SimulationSpeed: def_Speed[p],
		SedimentSupply:  def_Supply[p],
		Steps:           1000,
	}
}

func processCoastalInput(mc *ModelCoastal) (ip *InputParameters.CoastalParameters) {
	var (
		err error
	)
	ip = Defaults(mc.Preset)
	if len(mc.ICFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(mc.ICFile); err != nil {
			panic(err)
		}
		if err = ip.Parse(data); err != nil {
			panic(err)
		}
	}
	if mc.Steps > 0 {
		ip.Steps = mc.Steps
	}
	if mc.StepsPerFrame <= 0 {
		err := fmt.Errorf("stepsPerFrame must be positive, got %d", mc.StepsPerFrame)
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	ip.Print()
	return
}

func init() {
	rootCmd.AddCommand(CoastalCmd)
	CoastalCmd.Flags().StringP("preset", "p", "calm", "forcing preset: calm, storm, hightransport, springtide")
	CoastalCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file overriding the preset, like:\n\t- TidalRange\n\t- WaveHeight")
	CoastalCmd.Flags().IntP("steps", "s", 0, "number of physics steps to run (0 uses the input file / preset value)")
	CoastalCmd.Flags().IntP("stepsPerFrame", "f", 5, "physics steps taken per presented frame")
	CoastalCmd.Flags().String("profile", "", "write a profile: cpu or mem")
}

func RunCoastal(mc *ModelCoastal, ip *InputParameters.CoastalParameters) {
	var (
		logFrequency = 50
	)
	switch mc.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	}
	c := Coastal1D.NewSimulation(
		grid1d.ShapeParams{
			BeachSlope:     ip.BeachSlope,
			SedimentSupply: ip.SedimentSupply,
		},
		Coastal1D.ForcingParams{
			TidalRange:      ip.TidalRange,
			TidalPeriod:     ip.TidalPeriod,
			GrainSize:       ip.GrainSize,
			WaveHeight:      ip.WaveHeight,
			WavePeriod:      ip.WavePeriod,
			SimulationSpeed: ip.SimulationSpeed,
		})
	fmt.Println(c)

	frames := ip.Steps / mc.StepsPerFrame
	uiprogress.Start()
	bar := uiprogress.AddBar(frames).AppendCompleted().PrependElapsed()
	for frame := 0; frame < frames; frame++ {
		c.StepN(mc.StepsPerFrame)
		bar.Incr()
		tstep := (frame + 1) * mc.StepsPerFrame
		if tstep%logFrequency == 0 || frame == frames-1 {
			g, t := c.Snapshot()
			st := Coastal1D.Reduce(g)
			fmt.Printf("Time = %8.1f, tide = %8.4f, active[%d] = %d, erosion = %8.4f, deposition = %8.4f\n",
				t, Coastal1D.TidalLevel(t, c.Forcing), tstep, st.ActiveTransport, st.TotalErosion, st.TotalDeposition)
		}
	}
	uiprogress.Stop()

	g, t := c.Snapshot()
	st := Coastal1D.Reduce(g)
	fmt.Printf("Final time = %8.1f s, min thickness = %8.4f m\n", t, g.MinThickness())
	fmt.Printf("Total erosion = %8.4f, total deposition = %8.4f, max change = %8.4f\n",
		st.TotalErosion, st.TotalDeposition, st.MaxAbsChange)
	if st.NoTransport() {
		fmt.Println("no transport activity")
	}
}
