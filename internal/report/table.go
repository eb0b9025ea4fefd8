package report

import (
	"fmt"
	"strings"

	"MiniCheck/internal/lexer"
)

var tokenColumns = []string{"#", "Kind", "Text", "Line", "Col"}

func calculateColumnWidths(rows [][]string) []int {
	colWidths := make([]int, len(tokenColumns))
	for i, col := range tokenColumns {
		colWidths[i] = len(col)
		for _, row := range rows {
			if len(row[i]) > colWidths[i] {
				colWidths[i] = len(row[i])
			}
		}
	}
	return colWidths
}

func writeBorder(sb *strings.Builder, colWidths []int) {
	sb.WriteString("+")
	for _, width := range colWidths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("+")
	}
	sb.WriteString("\n")
}

func writeRow(sb *strings.Builder, row []string, colWidths []int) {
	sb.WriteString("|")
	for i, val := range row {
		fmt.Fprintf(sb, " %-*s |", colWidths[i], val)
	}
	sb.WriteString("\n")
}

// TokenTable formats tokens as a bordered table, one row per token.
func TokenTable(tokens []lexer.Token) string {
	if len(tokens) == 0 {
		return "Empty token stream\n"
	}

	rows := make([][]string, len(tokens))
	for i, tok := range tokens {
		rows[i] = []string{
			fmt.Sprint(i + 1),
			string(tok.Kind),
			tok.Text,
			fmt.Sprint(tok.Line),
			fmt.Sprint(tok.Column),
		}
	}

	var sb strings.Builder
	colWidths := calculateColumnWidths(rows)

	writeBorder(&sb, colWidths)
	writeRow(&sb, tokenColumns, colWidths)
	writeBorder(&sb, colWidths)
	for _, row := range rows {
		writeRow(&sb, row, colWidths)
	}
	writeBorder(&sb, colWidths)
	fmt.Fprintf(&sb, "%d token(s)\n", len(tokens))

	return sb.String()
}
