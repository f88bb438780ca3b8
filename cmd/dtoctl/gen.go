package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dto/pkg/codegen"
	"github.com/dmitrymomot/dto/pkg/logger"
)

func genCmd(a *app) *cobra.Command {
	var schemaPath, outPath string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a typed record from a YAML schema",
		Example: `  dtoctl gen --schema signup.yaml --out signup_gen.go
  //go:generate dtoctl gen --schema signup.yaml --out signup_gen.go`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := os.ReadFile(schemaPath)
			if err != nil {
				return err
			}
			schema, err := codegen.ParseSchema(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", schemaPath, err)
			}
			src, err := codegen.Generate(schema)
			if err != nil {
				return err
			}

			if outPath == "" || outPath == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(outPath, src, 0o644); err != nil {
				return err
			}
			a.logger.Info("record generated",
				logger.Source(schemaPath),
				logger.Record(schema.Type),
				slog.String("out", outPath),
				slog.Int("fields", len(schema.Fields)),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "Schema file (YAML)")
	cmd.Flags().StringVar(&outPath, "out", "", `Output file, stdout when empty or "-"`)
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}
