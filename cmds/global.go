package cmds

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Positional(fn func(arg string) error) {
	GlobalExecutor.Positional(fn)
}

func Execute(args []string) {
	GlobalExecutor.MustExecute(args)
}
