package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type CoastalParameters struct {
	Title           string  `yaml:"Title"`
	TidalRange      float64 `yaml:"TidalRange"`      // m
	TidalPeriod     float64 `yaml:"TidalPeriod"`     // hours
	BeachSlope      float64 `yaml:"BeachSlope"`      // dimensionless
	GrainSize       float64 `yaml:"GrainSize"`       // mm
	WaveHeight      float64 `yaml:"WaveHeight"`      // m
	WavePeriod      float64 `yaml:"WavePeriod"`      // s
	SimulationSpeed float64 `yaml:"SimulationSpeed"` // dimensionless
	SedimentSupply  float64 `yaml:"SedimentSupply"`  // dimensionless
	Steps           int     `yaml:"Steps"`
}

func (ip *CoastalParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *CoastalParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= TidalRange\n", ip.TidalRange)
	fmt.Printf("%8.5f\t\t= TidalPeriod\n", ip.TidalPeriod)
	fmt.Printf("%8.5f\t\t= BeachSlope\n", ip.BeachSlope)
	fmt.Printf("%8.5f\t\t= GrainSize\n", ip.GrainSize)
	fmt.Printf("%8.5f\t\t= WaveHeight\n", ip.WaveHeight)
	fmt.Printf("%8.5f\t\t= WavePeriod\n", ip.WavePeriod)
	fmt.Printf("%8.5f\t\t= SimulationSpeed\n", ip.SimulationSpeed)
	fmt.Printf("%8.5f\t\t= SedimentSupply\n", ip.SedimentSupply)
	fmt.Printf("[%d]\t\t\t= Steps\n", ip.Steps)
}
