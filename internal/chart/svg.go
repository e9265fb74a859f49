package chart

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
	"time"
)

const css = `
    .chart text { font: 400 9px 'Segoe UI', Ubuntu, Sans-Serif; }
    .title { font: 600 11px 'Segoe UI', Ubuntu, Sans-Serif; fill: #2f80ed; }
    .star path { fill: #4c71f2; }
    .star text { font: 600 14px 'Segoe UI', Ubuntu, "Helvetica Neue", Sans-Serif; fill: #434d58; }
    .footer > text { font: 200 11px 'Segoe UI', Ubuntu, Sans-Serif; fill: gray; }
    .footer > a > text { font: 200 11px 'Segoe UI', Ubuntu, Sans-Serif; fill: gray; text-decoration: underline; }`

const starIcon = "M8 .25a.75.75 0 0 1 .673.418l1.882 3.815 4.21.612a.75.75 0 0 1 .416 1.279l-3.046 2.97.719 4.192a.751.751 0 0 1-1.088.791L8 12.347l-3.766 1.98a.75.75 0 0 1-1.088-.79l.72-4.194L.818 6.374a.75.75 0 0 1 .416-1.28l4.21-.611L7.327.668A.75.75 0 0 1 8 .25Zm0 2.445L6.615 5.5a.75.75 0 0 1-.564.41l-3.097.45 2.24 2.184a.75.75 0 0 1 .216.664l-.528 3.084 2.769-1.456a.75.75 0 0 1 .698 0l2.77 1.456-.53-3.084a.75.75 0 0 1 .216-.664l2.24-2.183-3.096-.45a.75.75 0 0 1-.564-.41L8 2.694Z"

const (
	barTop     = "27.5"
	barHeight  = 8
	barRound   = 5
	trackColor = "#ddd"
)

func esc(s string) string { return html.EscapeString(s) }

func renderDefs(buf *bytes.Buffer, palette []Gradient) {
	buf.WriteString("  <defs>\n")
	for _, g := range palette {
		fmt.Fprintf(buf, `    <linearGradient id="%s" x1="0%%" y1="0%%" x2="100%%" y2="100%%">`, esc(g.ID))
		fmt.Fprintf(buf, `<stop offset="0%%" style="stop-color: %s"/>`, esc(g.From))
		fmt.Fprintf(buf, `<stop offset="100%%" style="stop-color: %s"/>`, esc(g.To))
		buf.WriteString("</linearGradient>\n")
	}
	buf.WriteString("  </defs>\n")
}

func renderHeader(buf *bytes.Buffer, h Header, x, y int) {
	fmt.Fprintf(buf, `  <svg class="star" x="%d" y="%d">`+"\n", x, y)
	fmt.Fprintf(buf, `    <text x="25" y="13">Total Stars Earned: %d</text>`+"\n", h.Stars)
	fmt.Fprintf(buf, `    <svg viewBox="0 0 16 16" width="16" height="16"><path d="%s"/></svg>`+"\n", starIcon)
	buf.WriteString("  </svg>\n")
}

func renderPanel(buf *bytes.Buffer, p Panel, fill string, x, y int) {
	fmt.Fprintf(buf, `  <svg x="%d" y="%d">`+"\n", x, y)
	fmt.Fprintf(buf, `    <text class="title" x="0" y="%d">%s</text>`+"\n", titleY, esc(p.Title))
	fmt.Fprintf(buf, `    <svg class="chart" x="0" y="%d">`+"\n", chartOffset)
	for i, item := range p.Items {
		color := item.Color
		if color == "" {
			color = fill
		}
		renderBar(buf, "      ", item.Label, item.Share, color, i*barPitch)
	}
	buf.WriteString("    </svg>\n")
	buf.WriteString("  </svg>\n")
}

// renderBar draws a full-width track with the share bar on top of it.
func renderBar(buf *bytes.Buffer, indent, label string, share float64, color string, y int) {
	fmt.Fprintf(buf, `%s<svg width="%d" y="%d">`+"\n", indent, panelWidth, y)
	fmt.Fprintf(buf, `%s  <text x="0" y="20">%s</text>`+"\n", indent, esc(label))
	fmt.Fprintf(buf, `%s  <rect class="whole" x="0" y="%s" rx="%d" ry="%d" width="%d" height="%d" fill="%s"/>`+"\n",
		indent, barTop, barRound, barRound, panelWidth, barHeight, trackColor)
	fmt.Fprintf(buf, `%s  <rect class="ratio" x="0" y="%s" rx="%d" ry="%d" width="%s%%" height="%d" fill="%s"/>`+"\n",
		indent, barTop, barRound, barRound, percent(share), barHeight, esc(color))
	fmt.Fprintf(buf, "%s</svg>\n", indent)
}

func percent(share float64) string {
	share = min(max(share, 0), 100)
	return strconv.FormatFloat(share, 'f', -1, 64)
}

func renderFooter(buf *bytes.Buffer, text, href string, generated time.Time, x, y int) {
	fmt.Fprintf(buf, `  <svg class="footer" x="%d" y="%d">`+"\n", x, y)
	buf.WriteString(`    <text x="0" y="20">Generated by</text>` + "\n")
	fmt.Fprintf(buf, `    <a href="%s"><text x="80" y="20">%s</text></a>`+"\n", esc(href), esc(text))
	fmt.Fprintf(buf, `    <text x="210" y="20">at %s</text>`+"\n", generated.Format("2006-01-02"))
	buf.WriteString("  </svg>\n")
}
