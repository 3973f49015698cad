package logger

import "github.com/fatih/color"

var severityColors = func() [Fatal + 1]*color.Color {
	attrs := [Fatal + 1]color.Attribute{
		Verbose: color.FgHiBlack,
		Debug:   color.FgCyan,
		Info:    color.FgGreen,
		Warning: color.FgYellow,
		Error:   color.FgRed,
		Fatal:   color.FgMagenta,
	}
	var colors [Fatal + 1]*color.Color
	for s, attr := range attrs {
		c := color.New(attr)
		// Colorize is an explicit request; don't let color's tty check veto it.
		c.EnableColor()
		colors[s] = c
	}
	return colors
}()

func colorFor(s Severity) *color.Color {
	if !s.Valid() {
		return severityColors[Fatal]
	}
	return severityColors[s]
}
