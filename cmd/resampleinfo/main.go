// Command resampleinfo prints the characteristics of the rate-conversion
// chain for a given host sample rate: anti-alias filter response, group
// delay, and expected low-rate block sizes.
//
// Usage:
//
//	resampleinfo [flags]
//
// Examples:
//
//	resampleinfo
//	resampleinfo -rate 48000
//	resampleinfo -rate 44100 -target 16000 -blocks 128,256,512,1024
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ayh2bxa/autolume-dsp/dsp/decimate"
)

func main() {
	rate := flag.Float64("rate", 44100, "host (source) sample rate in Hz")
	target := flag.Float64("target", decimate.DefaultTargetRate, "analysis (target) sample rate in Hz")
	blocks := flag.String("blocks", "64,128,256,512,1024,2048,4096", "comma-separated block sizes")
	flag.Parse()

	d, err := decimate.New(*rate, decimate.WithTargetRate(*target))
	if err != nil {
		fmt.Fprintf(os.Stderr, "resampleinfo: %v\n", err)
		os.Exit(1)
	}

	f := d.Filter()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "source rate\t%.1f Hz\n", d.SourceRate())
	fmt.Fprintf(w, "target rate\t%.1f Hz\n", d.TargetRate())
	fmt.Fprintf(w, "ratio\t%.6f\n", d.Ratio())
	fmt.Fprintf(w, "filter taps\t%d\n", f.Len())
	fmt.Fprintf(w, "dc gain\t%.6f\n", f.DCGain())
	fmt.Fprintf(w, "group delay\t%.1f samples (%.3f ms)\n", f.GroupDelay(), 1000*f.GroupDelay()/d.SourceRate())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "frequency\tresponse\n")

	for _, freq := range responseFreqs(d.TargetRate(), d.SourceRate()) {
		fmt.Fprintf(w, "%.0f Hz\t%.2f dB\n", freq, f.MagnitudeDB(freq, d.SourceRate()))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "block size\tlow-rate size (+%d padding)\n", decimate.OutputPadding)

	for _, s := range strings.Split(*blocks, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "resampleinfo: bad block size %q\n", s)
			os.Exit(1)
		}

		fmt.Fprintf(w, "%d\t%d\n", n, d.ExpectedOutputSize(n))
	}

	w.Flush()
}

// responseFreqs picks probe points around the passband, cutoff and
// stopband of the anti-alias filter.
func responseFreqs(targetRate, sourceRate float64) []float64 {
	nyquist := targetRate / 2
	cutoff := 0.9 * nyquist

	freqs := []float64{
		nyquist / 8,
		nyquist / 4,
		nyquist / 2,
		cutoff,
		nyquist,
		nyquist * 1.25,
		nyquist * 1.5,
		nyquist * 2,
	}

	out := freqs[:0]
	for _, f := range freqs {
		if f < sourceRate/2 {
			out = append(out, f)
		}
	}

	return out
}
