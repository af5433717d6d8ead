package shell

import (
	_ "embed"
	"strings"
)

//go:embed helptext/usage.txt
var usageText string

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(strings.TrimRight(usageText, "\n")), nil
	}
	topic := cmd.args[0]
	var lines []string
	for _, l := range strings.Split(usageText, "\n") {
		fields := strings.Fields(strings.ReplaceAll(l, ",", " "))
		if len(fields) > 0 && fields[0] == topic || len(fields) > 1 && fields[1] == topic {
			lines = append(lines, strings.TrimSpace(l))
		}
	}
	if len(lines) == 0 {
		return msg("There is no help text for the topic " + topic), nil
	}
	return msg(strings.Join(lines, "\n")), nil
}
