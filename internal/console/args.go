package console

import "strings"

// splitArgs splits a command line on whitespace, keeping double-quoted
// segments together so store names like "LOJA A" survive. A doubled quote
// inside a quoted segment produces a literal quote.
func splitArgs(line string) []string {
	var args []string
	var cur strings.Builder
	inQuotes := false
	hasCur := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				cur.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
			hasCur = true
		case !inQuotes && (c == ' ' || c == '\t'):
			if hasCur {
				args = append(args, cur.String())
				cur.Reset()
				hasCur = false
			}
		default:
			cur.WriteRune(c)
			hasCur = true
		}
	}
	if hasCur {
		args = append(args, cur.String())
	}
	return args
}
