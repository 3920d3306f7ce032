package background

import (
	"fmt"
	"log/slog"

	"backdrop/pkg/css"
)

// resolveGradient parses a linear gradient layer. Malformed declarations
// are reported on logger and give nil.
func resolveGradient(token string, em, rem float64, logger *slog.Logger) *css.LinearGradient {
	g, err := css.ParseLinearGradient(token, em, rem)
	if err != nil {
		logger.Warn(fmt.Sprintf("Invalid gradient declaration: %s", token), "error", err)
		return nil
	}
	return g
}
