package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/fcgreg/VIC-CatParser/internal/model"
)

// mediaIDField names the record field used as the per-record heading.
const mediaIDField = "MediaID"

// maxCellLength limits table cell width; PhotoDNA hashes are several hundred characters.
const maxCellLength = 80

// MarkdownWriter outputs matched records as a Markdown report.
// The report has a summary table, a hash coverage pie chart, and one table
// per record, which renders well on code hosting sites and in case notes.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the matched records in Markdown format.
func (w *MarkdownWriter) Write(matches *model.MatchSet) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, matches)
	w.writeCoverage(md, matches)
	w.writeRecords(md, matches)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and summary table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, matches *model.MatchSet) {
	md.H1("Project VIC Category " + matches.Category)
	md.PlainText("")

	source := matches.Source
	if source == "" {
		source = "-"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + source + "`"},
			{"Category", escapeCell(matches.Category)},
			{"Records Scanned", strconv.Itoa(matches.Scanned())},
			{"Matches", strconv.Itoa(matches.Len())},
		},
	})
	md.PlainText("")
}

// writeCoverage writes a pie chart of how many matches carry each hash.
func (w *MarkdownWriter) writeCoverage(md *markdown.Markdown, matches *model.MatchSet) {
	if matches.IsEmpty() {
		md.Note("No records matched this category.")
		md.PlainText("")
		return
	}

	coverage := matches.HashCoverage()
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Hash Coverage"),
		piechart.WithShowData(true),
	)

	labeled := 0
	for _, alg := range model.HashAlgorithms() {
		if count := coverage[alg]; count > 0 {
			chart.LabelAndIntValue(alg.FieldName(), uint64(count)) //nolint:gosec // count is non-negative
			labeled++
		}
	}
	if labeled == 0 {
		md.Note("None of the matched records carry a hash value.")
		md.PlainText("")
		return
	}

	md.H2("Hash Coverage")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeRecords writes one field table per matched record.
func (w *MarkdownWriter) writeRecords(md *markdown.Markdown, matches *model.MatchSet) {
	if matches.IsEmpty() {
		return
	}

	md.H2("Records")
	md.PlainText("")

	for i, r := range matches.Records {
		md.H3(recordHeading(r, i))
		md.PlainText("")

		rows := make([][]string, 0, r.Len())
		for _, f := range r.Fields() {
			if f.Value.IsNull() {
				continue
			}
			rows = append(rows, []string{
				escapeCell(f.Name),
				escapeCell(truncateString(inlineValue(f.Value), maxCellLength)),
			})
		}

		md.Table(markdown.TableSet{
			Header: []string{"Field", "Value"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by vic-catparser*")
}

// recordHeading returns "MediaID <id>" when present, otherwise "Record <n>".
func recordHeading(r *model.Record, index int) string {
	if id, ok := r.Get(mediaIDField); ok && id.IsScalar() && id.Text() != "" {
		return mediaIDField + " " + id.Text()
	}
	return "Record " + strconv.Itoa(index+1)
}

// escapeCell escapes characters that would break a Markdown table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// truncateString truncates s to maxLen display cells with an ellipsis.
// Cuts fall on rune boundaries.
func truncateString(s string, maxLen int) string {
	return runewidth.Truncate(s, maxLen, "...")
}
