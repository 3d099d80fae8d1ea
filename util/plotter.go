package util

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ts-server/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PlotItineraryTimeline generates an HTML file charting the day-by-day load
// of an itinerary (activity blocks and meals per day). Written next to the
// other run artifacts; failures are logged, never fatal.
func PlotItineraryTimeline(itinerary *models.Itinerary, outDir string) {
	if outDir == "" {
		return
	}

	days := make([]string, 0, len(itinerary.Days))
	blockCounts := make([]opts.BarData, 0, len(itinerary.Days))
	mealCounts := make([]opts.BarData, 0, len(itinerary.Days))
	for _, day := range itinerary.Days {
		label := fmt.Sprintf("Day %d", day.Day)
		if day.Theme != "" {
			label = fmt.Sprintf("Day %d: %s", day.Day, day.Theme)
		}
		days = append(days, label)
		blockCounts = append(blockCounts, opts.BarData{Value: len(day.Blocks)})
		mealCounts = append(mealCounts, opts.BarData{Value: len(day.Meals)})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Itinerary Timeline",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Itinerary day load",
			Subtitle: itinerary.Summary,
		}),
	)

	bar.SetXAxis(days).
		AddSeries("Activity blocks", blockCounts).
		AddSeries("Meals", mealCounts)

	outPath := filepath.Join(outDir, "itinerary_timeline.html")
	f, err := os.Create(outPath)
	if err != nil {
		log.Printf("[Plotter] Failed to create HTML file: %v", err)
		return
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		log.Printf("[Plotter] Failed to render chart: %v", err)
		return
	}

	fmt.Println("Itinerary timeline generated: " + outPath)
}
