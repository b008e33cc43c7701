package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/ngmaloney/strait-current/internal/models"
	"github.com/ngmaloney/strait-current/internal/tidecycle"
)

const curveStepMinutes = 15

// renderTidePane renders the day's extrema and the interpolated curve
func (m Model) renderTidePane(width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Tides"))
	content.WriteString(" ")
	content.WriteString(mutedStyle.Render(m.date.Format("Mon Jan 2")))
	content.WriteString("\n\n")

	if m.loading {
		content.WriteString(fmt.Sprintf("%s Fetching tides...", m.spinner.View()))
		return paneStyle.Width(width).Render(content.String())
	}
	if m.fetchErr != nil {
		content.WriteString(errorStyle.Render("✗ " + m.fetchErr.Error()))
		content.WriteString("\n\n")
	}
	if len(m.events) == 0 {
		content.WriteString(mutedStyle.Render("No tide data available"))
		return paneStyle.Width(width).Render(content.String())
	}

	for _, event := range m.events {
		marker := "  "
		if m.hasCycle && event == m.cycle.Prev {
			marker = markerStyle.Render("▶ ")
		}
		line := fmt.Sprintf("%s%s  %s  %4d cm\n",
			marker,
			valueStyle.Render(event.Time),
			labelStyle.Width(4).Render(event.Type.String()),
			event.Height)
		content.WriteString(line)
	}
	content.WriteString("\n")

	chartWidth := width - 4
	if chartWidth < 20 {
		chartWidth = 20
	}
	content.WriteString(m.renderTideCurve(chartWidth, 10))
	return paneStyle.Width(width).Render(content.String())
}

// renderTideCurve charts HeightAt across the selected date with a vertical
// marker at the query minute
func (m Model) renderTideCurve(width, height int) string {
	minTime := m.date
	maxTime := m.date.AddDate(0, 0, 1)

	var points []timeserieslinechart.TimePoint
	minV, maxV := math.Inf(1), math.Inf(-1)
	for minute := 0; minute <= 24*60; minute += curveStepMinutes {
		v, ok := tidecycle.HeightAt(m.events, minute)
		if !ok {
			continue
		}
		points = append(points, timeserieslinechart.TimePoint{
			Time:  atMinute(m.date, minute),
			Value: v,
		})
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	if len(points) == 0 {
		return ""
	}
	if minV == maxV {
		maxV += 10
		minV -= 10
	}

	lc := timeserieslinechart.New(width, height)
	lc.SetTimeRange(minTime, maxTime)
	lc.SetViewTimeAndYRange(minTime, maxTime, minV, maxV)
	if gw := lc.GraphWidth(); gw > 6 {
		lc.SetXStep(gw / 6)
	}
	lc.Model.XLabelFormatter = func(i int, v float64) string {
		return time.Unix(int64(v), 0).In(m.date.Location()).Format("15:04")
	}
	for _, p := range points {
		lc.Push(p)
	}
	lc.DrawBraille()

	at := atMinute(m.date, m.queryMinute())
	viewMin := lc.Model.ViewMinX()
	viewMax := lc.Model.ViewMaxX()
	if viewMax > viewMin {
		xRel := (float64(at.Unix()) - viewMin) / (viewMax - viewMin)
		xRel = math.Max(0, math.Min(1, xRel))
		col := int(math.Round(xRel*float64(lc.GraphWidth()-1))) + lc.Model.Origin().X
		if lc.Model.YStep() > 0 {
			col++
		}
		if col >= 0 && col < lc.Canvas.Width() {
			for y := 0; y < lc.Model.Origin().Y; y++ {
				lc.Canvas.SetCell(canvas.Point{X: col, Y: y}, canvas.NewCellWithStyle('│', markerStyle))
			}
		}
	}

	var b strings.Builder
	b.WriteString(lc.View())
	b.WriteString("\n")
	b.WriteString(markerStyle.Render("│"))
	b.WriteString(" ")
	if m.isLive() {
		b.WriteString(mutedStyle.Render("now " + models.FormatClock(m.queryMinute())))
	} else {
		b.WriteString(mutedStyle.Render("reference " + models.FormatClock(m.queryMinute())))
	}
	return b.String()
}
