package aqidataset

import "math"

// pm25Breakpoint maps a PM2.5 concentration range (µg/m³) onto an AQI range
type pm25Breakpoint struct {
	cLow, cHigh float64
	iLow, iHigh int
}

// US EPA 24-hour PM2.5 breakpoints
var pm25Breakpoints = []pm25Breakpoint{
	{0, 12, 0, 50},
	{12.1, 35.4, 51, 100},
	{35.5, 55.4, 101, 150},
	{55.5, 150.4, 151, 200},
	{150.5, 250.4, 201, 300},
	{250.5, 350.4, 301, 400},
	{350.5, 500.4, 401, 500},
}

// PM25SubIndex converts a PM2.5 concentration into its AQI sub-index by linear
// interpolation within the EPA breakpoint table. Concentrations above the
// table cap at 500; negative concentrations are treated as zero.
func PM25SubIndex(c float64) int {
	if c <= 0 {
		return 0
	}
	for _, bp := range pm25Breakpoints {
		if c <= bp.cHigh {
			// concentrations between two ranges (e.g. 12.05) interpolate from the lower bound
			aqi := float64(bp.iHigh-bp.iLow)/(bp.cHigh-bp.cLow)*(c-bp.cLow) + float64(bp.iLow)
			return int(math.Round(math.Max(aqi, float64(bp.iLow))))
		}
	}
	return maxAQI
}
