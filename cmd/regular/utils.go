package main

import (
	"os"
	"strings"
)

const colorEnvPrefix = "REGULAR_COLOR_"

// colorFromEnv returns $REGULAR_COLOR_<NAME> if it's set.
func colorFromEnv(name, defaultColor string) string {
	if color, ok := os.LookupEnv(colorEnvPrefix + strings.ToUpper(name)); ok && color != "" {
		return color
	}
	return defaultColor
}
