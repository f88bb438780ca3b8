package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/dto"
	"github.com/dmitrymomot/dto/pkg/logger"
	"github.com/dmitrymomot/dto/pkg/validator"
)

type validateOptions struct {
	rulesPath string
	dataPath  string
	record    string
	output    string
	metrics   bool
}

type result struct {
	Index  int                 `json:"index"`
	Valid  bool                `json:"valid"`
	Errors map[string][]string `json:"errors,omitempty"`
}

func validateCmd(a *app) *cobra.Command {
	var opts validateOptions

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate JSON or YAML records against a rule file",
		Long: `Validate reads a rule file mapping field names to rule specs:

  email: required|email
  tags: [array, "max:5"]

and checks every record of the data file, a single object or a list of
objects in JSON or YAML. Use "-" to read data from stdin. The command fails
when any record is invalid.`,
		Example: `  dtoctl validate --rules signup.rules.yaml --data signup.json
  cat users.yaml | dtoctl validate --rules user.rules.yaml --data - --lang de`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runValidate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.rulesPath, "rules", "", "Rule file (YAML or JSON)")
	cmd.Flags().StringVar(&opts.dataPath, "data", "", `Data file (YAML or JSON), "-" for stdin`)
	cmd.Flags().StringVar(&opts.record, "record", "Record", "Record name used in messages")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, json)")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Print validation metrics to stderr")
	cmd.Flags().StringVar(&a.flags.engine, "engine", "", "Validation engine (rules, playground)")
	cmd.Flags().StringVar(&a.flags.lang, "lang", "", "Message language")
	cmd.Flags().StringVar(&a.flags.locales, "locales", "", "Directory with extra translation files")
	_ = cmd.MarkFlagRequired("rules")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, opts validateOptions) error {
	if opts.output != "text" && opts.output != "json" {
		return fmt.Errorf("%w: unknown output format %q", errInvalidInput, opts.output)
	}
	ctx := context.WithValue(cmd.Context(), sourceKey{}, opts.dataPath)

	rules, err := readRules(opts.rulesPath)
	if err != nil {
		return err
	}
	a.logger.DebugContext(ctx, "rules loaded", slog.String("rules", opts.rulesPath), slog.Int("fields", len(rules)))

	raw, err := readInput(cmd.InOrStdin(), opts.dataPath)
	if err != nil {
		return err
	}
	items, err := decodeRecords(raw)
	if err != nil {
		return err
	}

	var reg *prometheus.Registry
	if opts.metrics {
		reg = prometheus.NewRegistry()
	}
	engine, err := a.engine(ctx, registerer(reg))
	if err != nil {
		return err
	}

	results := make([]result, 0, len(items))
	invalid := 0
	for i, item := range items {
		rec := dto.New[*dto.Record](
			dto.WithEngine(engine),
			dto.WithRules(rules),
			dto.WithTypeName(opts.record),
		)
		rec.Fill(item)

		res := result{Index: i, Valid: rec.Validate()}
		if !res.Valid {
			invalid++
			res.Errors = rec.Errors().Messages()
			a.logger.DebugContext(ctx, "record invalid",
				slog.Int("index", i),
				logger.Record(rec.TypeName()),
				logger.Failures(rec.Errors()),
			)
		}
		results = append(results, res)
	}
	a.logger.InfoContext(ctx, "records validated",
		slog.Int("total", len(items)),
		slog.Int("invalid", invalid),
	)

	if err := writeResults(cmd.OutOrStdout(), opts.output, results); err != nil {
		return err
	}
	if reg != nil {
		if err := writeMetrics(cmd.ErrOrStderr(), reg); err != nil {
			return err
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d records", dto.ErrValidationFailed, invalid, len(items))
	}
	return nil
}

// registerer avoids handing a typed nil to the engine.
func registerer(reg *prometheus.Registry) prometheus.Registerer {
	if reg == nil {
		return nil
	}
	return reg
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func readRules(path string) (map[string]validator.RuleSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, errors.Join(errInvalidInput, fmt.Errorf("rules %s: %w", path, err))
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("%w: rules %s: no fields", errInvalidInput, path)
	}
	rules, err := validator.ParseRules(m)
	if err != nil {
		return nil, errors.Join(errInvalidInput, fmt.Errorf("rules %s: %w", path, err))
	}
	return rules, nil
}

// decodeRecords accepts a JSON or YAML object, or a list of objects.
func decodeRecords(raw []byte) ([]map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty data", errInvalidInput)
	}

	switch trimmed[0] {
	case '{':
		m, err := dto.DecodeJSON(bytes.NewReader(trimmed))
		if err != nil {
			return nil, errors.Join(errInvalidInput, err)
		}
		return []map[string]any{m}, nil
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, errors.Join(errInvalidInput, dto.ErrInvalidJSON, err)
		}
		out := make([]map[string]any, 0, len(list))
		for i, item := range list {
			m, err := dto.DecodeJSON(bytes.NewReader(item))
			if err != nil {
				return nil, errors.Join(errInvalidInput, fmt.Errorf("record %d: %w", i, err))
			}
			out = append(out, m)
		}
		return out, nil
	}

	var doc any
	if err := yaml.Unmarshal(trimmed, &doc); err != nil {
		return nil, errors.Join(errInvalidInput, err)
	}
	switch v := doc.(type) {
	case map[string]any:
		return []map[string]any{v}, nil
	case []any:
		out := make([]map[string]any, 0, len(v))
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: record %d is %T, not an object", errInvalidInput, i, item)
			}
			out = append(out, m)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: data is %T, not an object or a list", errInvalidInput, doc)
	}
}

func writeResults(w io.Writer, format string, results []result) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, res := range results {
		if res.Valid {
			fmt.Fprintf(w, "record %d: ok\n", res.Index)
			continue
		}
		fmt.Fprintf(w, "record %d: invalid\n", res.Index)
		for _, field := range slices.Sorted(maps.Keys(res.Errors)) {
			for _, msg := range res.Errors[field] {
				fmt.Fprintf(w, "  %s: %s\n", field, msg)
			}
		}
	}
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
