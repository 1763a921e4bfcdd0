package input

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// PromptCommand is a slash command offered by the prompt.
type PromptCommand struct {
	Name        string // with the leading slash
	Description string
}

// CommandSet is the list of prompt commands, in suggestion order.
type CommandSet []PromptCommand

// Matching returns the commands whose name starts with what has been typed.
// Once an argument is being typed there are no suggestions.
func (s CommandSet) Matching(typed string) []PromptCommand {
	prefix := strings.ToLower(strings.TrimSpace(typed))
	if !strings.HasPrefix(prefix, "/") || strings.Contains(typed, " ") {
		return nil
	}
	var out []PromptCommand
	for _, c := range s {
		if strings.HasPrefix(strings.ToLower(c.Name), prefix) {
			out = append(out, c)
		}
	}
	return out
}

// Complete returns the first matching command name followed by a space.
func (s CommandSet) Complete(typed string) (string, bool) {
	m := s.Matching(typed)
	if len(m) == 0 {
		return "", false
	}
	return m[0].Name + " ", true
}

// Names lists the command names.
func (s CommandSet) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// Invocation is a parsed prompt line.
type Invocation struct {
	Name string // lowercased, with the leading slash
	Args string // trimmed remainder
}

// ParseInvocation splits "/name rest of line" into its command name and
// arguments. Lines that do not start with a slash are not commands.
func ParseInvocation(line string) (Invocation, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "/") || len(line) == 1 {
		return Invocation{}, false
	}
	name, args, _ := strings.Cut(line, " ")
	return Invocation{
		Name: strings.ToLower(name),
		Args: strings.TrimSpace(args),
	}, true
}

// Fields splits the arguments shell-style, so quoted paths keep their spaces.
func (inv Invocation) Fields() ([]string, error) {
	fields, err := shlex.Split(inv.Args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inv.Name, err)
	}
	return fields, nil
}

// SplitQuickAdd splits "Title @ when" at the last "@". Without one, when is
// empty and the whole text is the title.
func SplitQuickAdd(args string) (title, when string) {
	i := strings.LastIndex(args, "@")
	if i < 0 {
		return strings.TrimSpace(args), ""
	}
	return strings.TrimSpace(args[:i]), strings.TrimSpace(args[i+1:])
}
