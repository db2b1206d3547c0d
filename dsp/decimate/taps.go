package decimate

// antiAliasTaps is a fixed 64-tap low-pass for 44.1 kHz -> 16 kHz
// conversion: Kaiser window (beta=8), 7200 Hz cutoff (0.9x the target
// Nyquist), ~80 dB stopband attenuation, unity DC gain, group delay
// 31.5 samples (0.714 ms at 44.1 kHz).
var antiAliasTaps = [64]float64{
	0.0000184784, -0.0000071143, -0.0000963332, -0.0001462596,
	0.0000180091, 0.0003734039, 0.0005192430, -0.0000000000,
	-0.0009897702, -0.0013696611, -0.0001297310, 0.0021426840,
	0.0030400929, 0.0005345436, -0.0040657142, -0.0060149894,
	-0.0014979200, 0.0070431688, 0.0110111194, 0.0035014124,
	-0.0115048512, -0.0192846525, -0.0074570493, 0.0183993315,
	0.0337949562, 0.0156463642, -0.0308599694, -0.0652113602,
	-0.0376749062, 0.0678416378, 0.2103109281, 0.3121149084,
	0.3121149084, 0.2103109281, 0.0678416378, -0.0376749062,
	-0.0652113602, -0.0308599694, 0.0156463642, 0.0337949562,
	0.0183993315, -0.0074570493, -0.0192846525, -0.0115048512,
	0.0035014124, 0.0110111194, 0.0070431688, -0.0014979200,
	-0.0060149894, -0.0040657142, 0.0005345436, 0.0030400929,
	0.0021426840, -0.0001297310, -0.0013696611, -0.0009897702,
	-0.0000000000, 0.0005192430, 0.0003734039, 0.0000180091,
	-0.0001462596, -0.0000963332, -0.0000071143, 0.0000184784,
}

// AntiAliasTaps returns a copy of the fixed anti-alias coefficient table.
func AntiAliasTaps() []float64 {
	out := make([]float64, len(antiAliasTaps))
	copy(out, antiAliasTaps[:])

	return out
}
