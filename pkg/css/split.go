package css

// SplitWithComma splits a comma separated property value into its
// top-level items. Commas nested inside parentheses, like the ones in a
// gradient or rgb() argument list, are kept in the item.
//
// Unbalanced closing parentheses never make the depth negative. The items
// are returned as written: surrounding whitespace is not trimmed. A trailing
// empty item is dropped.
func SplitWithComma(value string) []string {
	var (
		items []string
		last  int
		depth int
	)
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case ',':
			if depth == 0 {
				items = append(items, value[last:i])
				last = i + 1
			}
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		}
	}
	if tail := value[last:]; tail != "" {
		items = append(items, tail)
	}
	return items
}

// splitSpaces splits value on whitespace outside of parentheses, so that
// "rgb(0 0 0) 10%" gives two fields.
func splitSpaces(value string) []string {
	var (
		fields []string
		start  = -1
		depth  int
	)
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case isSpace(c) && depth == 0:
			if start >= 0 {
				fields = append(fields, value[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, value[start:])
	}
	return fields
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
