package cli

import (
	"fmt"

	"github.com/GKA777/pushups-app/internal/day"
	"github.com/GKA777/pushups-app/internal/report"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfOffColor    = props.Color{Red: 70, Green: 110, Blue: 200}
)

// renderMonthPDF writes a one-row-per-day log of the month, with notes
// under their day and the totals at the end.
func renderMonthPDF(data report.Data, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, "Push-up log", props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%s %d", data.Month, data.Year), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	for _, row := range data.Rows {
		dayLabel := fmt.Sprintf("%s %d, %s", row.Date.Month(), row.Date.Day(), row.Date.Weekday())

		if row.Off {
			m.AddRow(7,
				text.NewCol(4, dayLabel, props.Text{Style: fontstyle.Bold, Size: 10, Color: &pdfHeaderColor}),
				text.NewCol(8, day.OffLine, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: &pdfOffColor}),
			)
		} else {
			m.AddRow(7,
				text.NewCol(4, dayLabel, props.Text{Style: fontstyle.Bold, Size: 10, Color: &pdfHeaderColor}),
				text.NewCol(4, row.Headline, props.Text{Size: 10}),
				text.NewCol(4, row.Line, props.Text{Size: 10, Align: align.Right}),
			)
		}

		if row.Notes != "" {
			m.AddRow(5,
				text.NewCol(12, "    "+row.Notes, props.Text{Size: 8, Color: &pdfMutedColor}),
			)
		}
		m.AddRow(2)
	}

	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(3, "Total", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(9, data.Totals.String(), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}
