package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/ckbfx/pkg/effect"
	"github.com/aretw0/ckbfx/pkg/param"
)

// Describe renders a human readable summary of def as markdown.
func Describe(def *effect.Definition) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", def.Name)
	if def.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", def.Description)
	}

	sb.WriteString("| | |\n|---|---|\n")
	row := func(k, v string) {
		if v != "" {
			fmt.Fprintf(&sb, "| %s | %s |\n", k, escapeCell(v))
		}
	}
	row("GUID", "`"+def.GUID+"`")
	row("Version", def.Version)
	row("Year", def.Year)
	row("Author", def.Author)
	row("License", def.License)
	row("Keypresses", orDefault(string(def.KeypressMode), string(effect.KeypressName)))
	row("Time", orDefault(string(def.TimeMode), string(effect.TimeDuration)))
	row("Repeat", yesNo(def.Repeat))
	row("Preempt", yesNo(def.Preempt))
	row("Parameters", orDefault(string(def.ParamMode), string(effect.ParamLive)))

	if len(def.Params) > 0 {
		sb.WriteString("\n## Parameters\n\n| Name | Kind | Default |\n|---|---|---|\n")
		for _, p := range def.Params {
			fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", p.ParamName(), p.Kind(), escapeCell(defaultText(p)))
		}
	}

	if len(def.Presets) > 0 {
		sb.WriteString("\n## Presets\n\n")
		for _, preset := range def.Presets {
			fmt.Fprintf(&sb, "- **%s**", preset.Name)
			for i, v := range preset.Values {
				sep := ", "
				if i == 0 {
					sep = ": "
				}
				fmt.Fprintf(&sb, "%s`%s=%s`", sep, v.Name, v.Value)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func defaultText(p param.Param) string {
	if label, ok := p.(*param.Label); ok {
		return label.Text
	}
	return param.DefaultValue(p)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
