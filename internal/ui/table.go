package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable renders data as a boxed table. The first row is the header.
func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

// Bar is one labelled value in a bar chart.
type Bar struct {
	Label string
	Value int
}

const barChartChar = "▇"

// BarChart renders bars as a horizontal bar chart under title. It returns
// an empty string when there is nothing to draw.
func BarChart(title string, bars []Bar) string {
	if len(bars) == 0 {
		return ""
	}

	pbars := make(pterm.Bars, len(bars))

	for i, b := range bars {
		pbars[i] = pterm.Bar{
			Label: b.Label,
			Value: b.Value,
		}
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(pbars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return Blue(title) + "\n" + chart
}
