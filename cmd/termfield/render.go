package main

import (
	"fmt"
	"iter"
	"os"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/termfield"
)

const renderExample = `# Render one YAML or JSON document
termfield render -t row.yaml -d values.yaml

# Render one line per JSONL record read from stdin
producer | termfield render -t row.yaml

# Keep colors when piping into a pager
termfield render -t row.yaml --jsonl rows.jsonl --strip never | less -R
`

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Render a field template",
		Long:    "Render a YAML field template once for a data document, or once per record of a JSONL stream. Without --data or --jsonl, JSONL records are read from stdin.",
		Example: renderExample,
		Args:    cobra.NoArgs,
		RunE:    runRender,
	}
	cmd.Flags().StringP("template", "t", "", "Template YAML file")
	cmd.Flags().StringP("data", "d", "", "YAML or JSON document with the field values")
	cmd.Flags().String("jsonl", "", "JSONL file with one record per line (- for stdin)")
	cmd.Flags().String("strip", "auto", "Strip ANSI sequences from output (auto|always|never)")
	cmd.Flags().Bool("cells", false, "Measure display cells instead of characters")
	_ = cmd.MarkFlagRequired("template")
	cmd.MarkFlagsMutuallyExclusive("data", "jsonl")
	return cmd
}

func runRender(cmd *cobra.Command, _ []string) error {
	// Retrieve flags
	tplPath, err := cmd.Flags().GetString("template")
	if err != nil {
		return err
	}
	dataPath, err := cmd.Flags().GetString("data")
	if err != nil {
		return err
	}
	jsonlPath, err := cmd.Flags().GetString("jsonl")
	if err != nil {
		return err
	}
	strip, err := cmd.Flags().GetString("strip")
	if err != nil {
		return err
	}
	cells, err := cmd.Flags().GetBool("cells")
	if err != nil {
		return err
	}

	out, err := outputWriter(cmd.OutOrStdout(), strip)
	if err != nil {
		return err
	}

	tpl, err := loadTemplate(tplPath)
	if err != nil {
		return err
	}
	if cells {
		tpl = tpl.WithMeasurer(termfield.Cells)
	}

	if dataPath != "" {
		rec, err := loadRecord(dataPath)
		if err != nil {
			return err
		}
		log.Debug().Str("data", dataPath).Int("keys", len(rec)).Msg("Rendering document")
		return termfield.RenderIter(out, tpl, slices.Values([]termfield.Record{rec}))
	}

	in := cmd.InOrStdin()
	if jsonlPath != "" && jsonlPath != "-" {
		f, err := os.Open(jsonlPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	n := 0
	err = termfield.RenderSeq2(out, tpl, counted(termfield.JSONLRecords(in), &n))
	log.Debug().Int("records", n).Msg("Rendered JSONL stream")
	if err != nil {
		return fmt.Errorf("record %d: %w", n+1, err)
	}
	return nil
}

func loadTemplate(path string) (*termfield.Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tpl, err := termfield.LoadTemplate(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("template", path).Msg("Loaded template")
	return tpl, nil
}

// loadRecord reads a YAML document. JSON documents are valid YAML.
func loadRecord(path string) (termfield.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec termfield.Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// counted passes seq through, counting records that decoded cleanly.
func counted(seq iter.Seq2[termfield.Record, error], n *int) iter.Seq2[termfield.Record, error] {
	return func(yield func(termfield.Record, error) bool) {
		for rec, err := range seq {
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
			*n++
		}
	}
}
