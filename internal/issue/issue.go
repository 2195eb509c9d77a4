// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	ConfigLoadFailedId Id = iota + 1
	InvalidArgumentId
	OperandFailedId
	OutputFailedId
)

type (
	// Id identifies a catalogued issue.
	Id int

	// MarkdownMsg is the markdown body of an issue.
	MarkdownMsg string

	// Issue is a longer, rendered explanation of a class of failure, shown
	// in verbose mode below the one-line error.
	Issue struct {
		id    Id
		mdMsg MarkdownMsg
	}
)

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load the configuration!

textkit reads an optional CUE file and validates it before any tool runs.

## Search locations (in order of precedence):
1. The file given with ` + "`--config`" + `
2. ` + "`$XDG_CONFIG_HOME/textkit/config.cue`" + `
3. ` + "`./config.cue`" + `

## Things you can try:
- Print the effective configuration:
~~~
$ textkit config show
~~~

- Write a fresh default file and edit it:
~~~
$ textkit config init
~~~

- Check ` + "`TEXTKIT_*`" + ` environment variables; they override the file.`,
	}

	invalidArgumentIssue = &Issue{
		id: InvalidArgumentId,
		mdMsg: `
# Invalid argument!

A flag value or operand was rejected before any input was read.

## Common causes:
- Counts for ` + "`head -n`" + ` and ` + "`head -c`" + ` must be positive integers
- ` + "`cat -n`" + ` and ` + "`cat -b`" + ` cannot be combined
- ` + "`wc -c`" + ` and ` + "`wc -m`" + ` cannot be combined
- ` + "`find --name`" + ` takes a regular expression, ` + "`--glob`" + ` a shell pattern

## Things you can try:
~~~
$ textkit manual <tool>
~~~`,
	}

	operandFailedIssue = &Issue{
		id: OperandFailedId,
		mdMsg: `
# Some operands could not be processed!

One or more files could not be opened or read. Each failure was reported
above; the remaining operands were still processed and the exit status is 1.

## Common causes:
- A typo in the path; relative paths are resolved from the current directory
- Missing read permission on the file or, for ` + "`find`" + `, on a directory
- A directory given to a tool that reads files

## Things you can try:
- Use ` + "`-`" + ` to read standard input explicitly
- Run ` + "`textkit find PATH`" + ` to see what exists below a directory`,
	}

	outputFailedIssue = &Issue{
		id: OutputFailedId,
		mdMsg: `
# Failed to write output!

Writing to standard output or to the output file failed, so processing stopped.

## Things you can try:
- Check free disk space and write permissions for the output file
- For ` + "`uniq`" + `, make sure the directory of OUT_FILE exists`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		invalidArgumentIssue.Id():  invalidArgumentIssue,
		operandFailedIssue.Id():    operandFailedIssue,
		outputFailedIssue.Id():     outputFailedIssue,
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the markdown body with the given glamour style
// ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

// Values returns every catalogued issue ordered by Id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		values = append(values, i)
	}
	slices.SortFunc(values, func(a, b *Issue) int {
		return int(a.id) - int(b.id)
	})
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
