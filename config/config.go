// Package config turns command-line flags into the typed configuration
// every pipeline component is constructed from.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds every constructor parameter the equalizer, deframer and
// decoder need, plus the capture file path and dashboard toggle.
type Config struct {
	Designator byte
	Verbose    int

	LambdaFF float64
	LambdaFB float64
	FFTaps   int
	FBTaps   int

	ObserverLon float64
	ObserverLat float64

	CapturePath string
	Dashboard   bool
}

// Parse builds a Config from args (typically os.Args[1:]), applying
// the same range clamps (§6) the reference decoder's main() applies:
// verbose is clamped to 0-6, and an out-of-range observer coordinate
// is left as-is for ais.NewDecoder's own default-substitution to catch.
func Parse(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("goais", pflag.ContinueOnError)

	designator := fs.StringP("designator", "d", "A", "VHF channel designator, A or B")
	verbose := fs.IntP("verbose", "v", 0, "Verbosity level 0-6 (see verbosity.FromLevel)")
	lambdaFF := fs.Float64("lambda-ff", 0.001, "LMS feed-forward step size")
	lambdaFB := fs.Float64("lambda-fb", 0.001, "LMS feedback step size")
	ffTaps := fs.Int("ff-taps", 7, "Feed-forward tap count")
	fbTaps := fs.Int("fb-taps", 7, "Feedback tap count")
	lon := fs.Float64("lon", 21.5593, "Observer longitude (degrees)")
	lat := fs.Float64("lat", 63.1587, "Observer latitude (degrees)")
	capturePath := fs.StringP("capture", "c", "", "Path to a recorded capture file")
	dashboard := fs.Bool("dashboard", true, "Show the live gocui fleet dashboard")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if len(*designator) != 1 || (*designator != "A" && *designator != "B") {
		return nil, fmt.Errorf("config: designator must be A or B, got %q", *designator)
	}
	if *capturePath == "" {
		return nil, fmt.Errorf("config: -capture is required")
	}

	v := *verbose
	if v < 0 {
		v = 0
	}
	if v > 6 {
		v = 6
	}

	return &Config{
		Designator:  (*designator)[0],
		Verbose:     v,
		LambdaFF:    *lambdaFF,
		LambdaFB:    *lambdaFB,
		FFTaps:      *ffTaps,
		FBTaps:      *fbTaps,
		ObserverLon: *lon,
		ObserverLat: *lat,
		CapturePath: *capturePath,
		Dashboard:   *dashboard,
	}, nil
}
