// Command gcdemo прогоняет демонстрационные сценарии контейнеров.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirkon/errors"
	"github.com/sirkon/message"
	"github.com/sirupsen/logrus"

	"github.com/sirkon/gcontainers/internal/logging"
)

type cliArgs struct {
	Verbose bool `short:"v" help:"Log command start and completion at debug level."`

	List   listCommand   `cmd:"" help:"Run the doubly linked list scenario."`
	BitSet bitSetCommand `cmd:"" name:"bitset" help:"Run the bit set scenario."`
	Expr   exprCommand   `cmd:"" help:"Print and evaluate sample expression trees."`
}

// runContext общие зависимости всех команд.
type runContext struct {
	out    io.Writer
	logger logging.Logger
}

func main() {
	var args cliArgs
	ctx := kong.Parse(
		&args,
		kong.Name("gcdemo"),
		kong.Description("Demo scenarios of generic containers."),
		kong.UsageOnError(),
	)

	log := newLogrus(os.Stderr, args.Verbose)
	rc := &runContext{
		out:    os.Stdout,
		logger: newLogger(log),
	}
	if err := run(ctx, rc, log); err != nil {
		message.Critical(err)
	}
}

// run запуск выбранной команды, начало и завершение пишутся в лог на уровне debug.
func run(ctx *kong.Context, rc *runContext, log *logrus.Logger) error {
	cmd := ctx.Command()
	log.WithField("command", cmd).Debug("run command")
	if err := ctx.Run(rc); err != nil {
		return errors.Wrap(err, "run "+cmd)
	}

	log.WithField("command", cmd).Debug("command done")
	return nil
}

func newLogrus(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}
