package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dto/pkg/validator"
	"github.com/dmitrymomot/dto/pkg/validator/playground"
)

// sampleParams makes parameterised constraints translatable for the
// native check.
var sampleParams = map[string]string{
	"min":     ":1",
	"max":     ":1",
	"size":    ":1",
	"gt":      ":1",
	"gte":     ":1",
	"lt":      ":1",
	"lte":     ":1",
	"between": ":1,2",
	"in":      ":a,b",
}

func rulesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rule vocabulary",
		Long: `Rules lists every constraint understood by the validation engine.
With the playground engine it also shows whether a constraint runs on
go-playground/validator or on the fallback rule engine.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range validator.Default().Constraints() {
				if a.settings.Engine != enginePlayground {
					fmt.Fprintln(w, name)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\n", name, constraintKind(name))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&a.flags.engine, "engine", "", "Validation engine (rules, playground)")

	return cmd
}

func constraintKind(name string) string {
	switch name {
	case "nullable", "sometimes", "bail":
		return "control"
	}
	if _, ok := playground.TagFor(name + sampleParams[name]); ok {
		return "native"
	}
	return "fallback"
}
