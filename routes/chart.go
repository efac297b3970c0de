/*
 * Copyright 2026 The Renalscope Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/renalscope/renalscope/assessment"
)

// rangePosition expresses a value as a percentage of its field's valid range,
// so measurements on very different scales share one axis.
func rangePosition(spec assessment.FieldSpec, value float64) float64 {
	span := spec.Max - spec.Min
	if span <= 0 {
		return 0
	}

	pct := (value - spec.Min) / span * 100

	return math.Round(pct*10) / 10
}

// measurementChart renders the entered values against their valid ranges as
// an HTML fragment.
func measurementChart(rec assessment.Record) (string, error) {
	specs := assessment.Specs()

	xAxis := make([]string, 0, len(specs))
	yData := make([]opts.BarData, 0, len(specs))
	for _, spec := range specs {
		xAxis = append(xAxis, string(spec.Field))
		yData = append(yData, opts.BarData{Value: rangePosition(spec, rec.Value(spec.Field))})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Measurements within their valid ranges",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "% of range",
			Min:  0,
			Max:  100,
		}),
	)

	bar.SetXAxis(xAxis).AddSeries("measurements", yData)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
