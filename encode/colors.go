package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/xmldiffs/xmldiffs/libdiff"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[libdiff.Kind]func(string, ...any) string

	// Ins and Del highlight inserted/deleted spans inside changed
	// attribute and text values.
	Ins func(string, ...any) string
	Del func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[libdiff.Kind]func(string, ...any) string{},
		Ins:     color.New(color.FgGreen, color.Bold).SprintfFunc(),
		Del:     color.New(color.FgRed, color.CrossedOut).SprintfFunc(),
	}
	colors.Map[libdiff.Added] = color.GreenString
	colors.Map[libdiff.Removed] = color.RedString
	colors.Map[libdiff.AttrChanged] = color.YellowString
	colors.Map[libdiff.TextChanged] = color.YellowString
	colors.Map[libdiff.Moved] = color.CyanString
	colors.Map[libdiff.Renamed] = color.MagentaString
	for k, f := range colors.Map {
		colors.Map[k] = escapePercent(f)
	}
	colors.Ins = escapePercent(colors.Ins)
	colors.Del = escapePercent(colors.Del)
	return colors
}

func colorDefault(v string, _ ...any) string {
	return v
}

func escapePercent(f func(string, ...any) string) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return f(strings.Replace(v, "%", "%%", -1))
	}
}

func (c *Colors) kind(k libdiff.Kind) func(string, ...any) string {
	if f, ok := c.Map[k]; ok {
		return f
	}
	return c.Default
}
