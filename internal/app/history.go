package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"agri-market-watch/internal/history"
)

// History generates the synthetic trailing price series for a
// product/market pair and renders it as a table, CSV, and/or PNG
// chart. The series is display-only filler derived from the current
// reference price.
func (a *App) History(ctx context.Context, opts HistoryOptions) error {
	s, closeStores, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	if err := a.requireOnboarded(s.user); err != nil {
		return err
	}

	product, ok := s.market.ProductByID(opts.ProductID)
	if !ok {
		return fmt.Errorf("unknown product %q", opts.ProductID)
	}
	m, ok := s.market.MarketByID(opts.MarketID)
	if !ok {
		return fmt.Errorf("unknown market %q", opts.MarketID)
	}
	price, ok := s.market.PriceForProductInMarket(opts.ProductID, opts.MarketID)
	if !ok {
		return fmt.Errorf("no price reference for %s at %s", product.Name, m.Name)
	}

	series := a.newHistoryGenerator(opts.Days).Series(price.Price)
	series = downsampleSeries(series, a.Config.ResolveMaxPoints(opts.MaxPoints))

	if opts.CSVPath == "" && opts.PNGPath == "" {
		writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(writer, "Date\t%s at %s (%s)\n", product.Name, m.Name, price.Unit)
		for _, point := range series {
			fmt.Fprintf(writer, "%s\t%s\n", point.Date.Format("2006-01-02"), point.Price.StringFixed(2))
		}
		return writer.Flush()
	}

	if opts.CSVPath != "" {
		if err := writeSeriesCSV(opts.CSVPath, series); err != nil {
			return err
		}
		a.Logger.Info().Str("path", opts.CSVPath).Int("points", len(series)).Msg("series written")
	}

	if opts.PNGPath != "" {
		title := fmt.Sprintf("%s at %s", product.Name, m.Name)
		if err := writeSeriesPNG(opts.PNGPath, title, series); err != nil {
			return err
		}
		a.Logger.Info().Str("path", opts.PNGPath).Int("points", len(series)).Msg("chart written")
	}

	return nil
}

func downsampleSeries(points []history.Point, max int) []history.Point {
	if max <= 0 || len(points) <= max {
		return points
	}
	// A single point budget keeps the most recent value; the step
	// formula below needs at least two slots.
	if max == 1 {
		return points[len(points)-1:]
	}

	result := make([]history.Point, 0, max)
	step := float64(len(points)-1) / float64(max-1)
	for i := 0; i < max; i++ {
		idx := int(math.Round(step * float64(i)))
		if idx >= len(points) {
			idx = len(points) - 1
		}
		result = append(result, points[idx])
	}
	return result
}

func writeSeriesCSV(path string, points []history.Point) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"date", "price"}); err != nil {
		return err
	}
	for _, point := range points {
		record := []string{
			point.Date.Format("2006-01-02"),
			point.Price.String(),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}

func writeSeriesPNG(path, title string, points []history.Point) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	x := make([]time.Time, len(points))
	y := make([]float64, len(points))
	for i, point := range points {
		x[i] = point.Date
		y[i] = point.Price.InexactFloat64()
	}

	priceFormatter := func(v interface{}) string {
		return chart.FloatValueFormatterWithFormat(v, "%.2f")
	}
	graph := chart.Chart{
		Title:  title,
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Price",
			ValueFormatter: priceFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    title,
				XValues: x,
				YValues: y,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
