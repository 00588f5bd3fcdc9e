package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	shapecheck "github.com/reoring/shapecheck"
	"github.com/reoring/shapecheck/query"
	"github.com/reoring/shapecheck/source"
)

type docFlags struct {
	path             string
	format           string
	maxBytes         int64
	rejectDuplicates bool
}

func (f *docFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "doc", "", "document to inspect (JSON or YAML)")
	cmd.Flags().StringVar(&f.format, "format", "auto", "document format: auto, json or yaml")
	cmd.Flags().Int64Var(&f.maxBytes, "max-bytes", 0, "reject documents larger than this (0: unlimited)")
	cmd.Flags().BoolVar(&f.rejectDuplicates, "reject-duplicate-keys", false, "fail JSON documents with repeated object keys")
	_ = cmd.MarkFlagRequired("doc")
}

func (a *app) loadDoc(f docFlags) (any, error) {
	format, err := source.ParseFormat(f.format)
	if err != nil {
		return nil, &exitError{code: exitUsage, err: err}
	}
	if format == source.FormatAuto {
		format = source.FormatFromPath(f.path)
	}
	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil, &exitError{code: exitUsage, err: err}
	}
	a.logger.Debug("decoding document",
		zap.String("path", f.path),
		zap.Stringer("format", format),
		zap.Int("bytes", len(b)))
	doc, err := source.Decode(b, format, source.Options{
		MaxBytes:            f.maxBytes,
		RejectDuplicateKeys: f.rejectDuplicates,
	})
	if err != nil {
		return nil, &exitError{code: exitUsage, err: describe(f.path, err)}
	}
	return doc, nil
}

func (a *app) newRunCmd() *cobra.Command {
	var (
		doc     docFlags
		queries string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate a query file against a document",
		Long: `Loads the checks listed in --queries and evaluates each one against the
value found at its JSON Pointer in --doc. Exits 1 when a check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.loadDoc(doc)
			if err != nil {
				return err
			}
			qf, err := os.Open(queries)
			if err != nil {
				return &exitError{code: exitUsage, err: err}
			}
			defer qf.Close()
			f, err := query.Load(qf)
			if err != nil {
				return &exitError{code: exitUsage, err: describe(queries, err)}
			}
			a.logger.Debug("loaded queries", zap.String("path", queries), zap.Int("checks", len(f.Checks)))

			rep, err := query.Run(v, f)
			if err != nil {
				return &exitError{code: exitUsage, err: describe(queries, err)}
			}
			for _, r := range rep.Results {
				status := "PASS"
				if !r.Passed {
					status = "FAIL"
				}
				at := r.Check.At
				if at == "" {
					at = "/"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", status, at, r.Check.Label())
				a.logger.Debug("check evaluated",
					zap.Int("index", r.Index),
					zap.Bool("found", r.Found),
					zap.Stringer("category", r.Category),
					zap.Bool("passed", r.Passed))
			}
			failed := len(rep.Failed())
			fmt.Fprintf(cmd.OutOrStdout(), "%d checks, %d failed\n", len(rep.Results), failed)
			if failed > 0 {
				return &exitError{code: exitFailed}
			}
			return nil
		},
	}
	doc.register(cmd)
	cmd.Flags().StringVar(&queries, "queries", "", "query file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("queries")
	return cmd
}

func (a *app) newCategoryCmd() *cobra.Command {
	var (
		doc docFlags
		at  string
	)
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Print the category of a value and the methods available for it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.loadDoc(doc)
			if err != nil {
				return err
			}
			sub, ok := query.Resolve(v, at)
			if !ok {
				return &exitError{code: exitFailed, err: fmt.Errorf("%s: nothing at %q", doc.path, at)}
			}
			c := shapecheck.For(sub)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", shapecheck.CategoryOf(sub), strings.Join(c.Methods(), ","))
			return nil
		},
	}
	doc.register(cmd)
	cmd.Flags().StringVar(&at, "at", "", "JSON Pointer of the value to classify")
	return cmd
}

// describe expands Issues into one line per issue.
func describe(path string, err error) error {
	iss, ok := shapecheck.AsIssues(err)
	if !ok {
		return fmt.Errorf("%s: %w", path, err)
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s: %d issue(s)", path, len(iss))
	for _, it := range iss {
		fmt.Fprintf(b, "\n  %s %s: %s", it.Path, it.Code, it.Message)
		if it.Cause != nil {
			fmt.Fprintf(b, " (%v)", it.Cause)
		}
		if it.Hint != "" {
			fmt.Fprintf(b, " [%s]", it.Hint)
		}
	}
	return fmt.Errorf("%s: %w", b.String(), err)
}
