package aqidataset

import (
	"fmt"
	"io"
	"strings"

	"aqi-stack/internal/models"
)

// WriteReport prints record counts and up to sampleSize run-date readings and
// forecast points.
func WriteReport(w io.Writer, ds *models.Dataset, sampleSize int) error {
	var b strings.Builder

	fmt.Fprintln(&b, "✅ Generated comprehensive air quality dataset with:")
	fmt.Fprintf(&b, "- %d historical data points\n", len(ds.HistoricalData))
	fmt.Fprintf(&b, "- %d forecast data points\n", len(ds.ForecastData))
	fmt.Fprintf(&b, "- %d cities\n", len(ds.Cities))
	fmt.Fprintln(&b, "- Pollutant information and health recommendations")
	fmt.Fprintln(&b, "- API endpoint configurations")

	fmt.Fprintln(&b, "\n📊 Sample Current Data:")
	shown := 0
	for _, r := range ds.HistoricalData {
		if shown >= sampleSize {
			break
		}
		if r.HealthInfo == nil {
			continue
		}
		fmt.Fprintf(&b, "🏙️ %s: AQI %d - %s\n", r.City, r.AQI, r.HealthInfo.Level)
		shown++
	}

	fmt.Fprintln(&b, "\n🔮 Sample Forecast Data:")
	for i, f := range ds.ForecastData {
		if i >= sampleSize {
			break
		}
		fmt.Fprintf(&b, "🏙️ %s: Predicted AQI %d (Confidence: %.1f%%)\n", f.City, f.PredictedAQI, f.Confidence*100)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
