package cmd

import (
	"fmt"
)

func init() {
	RegisterCommand(&Command{
		Name:  "kinds",
		Short: "List the view kinds scenes can use",
		Long: `List the view kinds the headless toolkit registers core factories for.

Flags:
  --config DIR     Read viewcore.yaml from DIR instead of the project root`,
		Usage: "viewcore kinds [--config DIR]",
		Run:   runKinds,
	})
}

func runKinds(args []string) error {
	var opts sceneOptions
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 >= len(args) {
				return fmt.Errorf("--config requires a value")
			}
			opts.configDir = args[i+1]
			i++
		default:
			return fmt.Errorf("unknown argument: %s", args[i])
		}
	}
	s, err := newSession(opts)
	if err != nil {
		return err
	}
	for _, k := range s.reg.Kinds() {
		fmt.Fprintln(stdout, k)
	}
	return nil
}
