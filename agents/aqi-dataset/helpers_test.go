package aqidataset

import (
	"math/rand/v2"
	"time"

	"aqi-stack/internal/cities"
)

var testNow = time.Date(2025, 6, 23, 14, 30, 0, 0, time.UTC)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

var testCities = cities.Default().All()
