package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/signetdocs/signet/block"
	"github.com/signetdocs/signet/canvas"
	"github.com/signetdocs/signet/docfmt"
	"github.com/signetdocs/signet/layout"
	"github.com/signetdocs/signet/markup"
	"github.com/signetdocs/signet/observability"
	"github.com/signetdocs/signet/pdf"
	"github.com/signetdocs/signet/sigparse"
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "signet",
		Short:         "Render drafted legal documents to paginated PDF",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(renderCmd())
	return root
}

func renderCmd() *cobra.Command {
	var (
		docType    string
		outPath    string
		policyPath string
		metaPath   string
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "render <input>",
		Short: "Lay out a marked-up document and write the PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0], docType, outPath, policyPath, metaPath, verbose)
		},
	}
	cmd.Flags().StringVarP(&docType, "type", "t", "letter", "document type (filing, agreement, letter)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output PDF path (default: input with .pdf)")
	cmd.Flags().StringVar(&policyPath, "policy", "", "YAML formatting-policy overrides")
	cmd.Flags().StringVar(&metaPath, "meta", "", "YAML signature-block metadata")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func runRender(inPath, docType, outPath, policyPath, metaPath string, verbose bool) error {
	zl, err := buildLogger(verbose)
	if err != nil {
		return err
	}
	defer zl.Sync() //nolint:errcheck
	log := observability.Zap(zl)

	source, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	policy := docfmt.Default()
	if policyPath != "" {
		f, err := os.Open(policyPath)
		if err != nil {
			return fmt.Errorf("open policy: %w", err)
		}
		policy, err = docfmt.LoadPolicy(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	meta := sigparse.Metadata{}
	if metaPath != "" {
		raw, err := os.ReadFile(metaPath)
		if err != nil {
			return fmt.Errorf("read metadata: %w", err)
		}
		if err := yaml.Unmarshal(raw, &meta); err != nil {
			return fmt.Errorf("parse metadata: %w", err)
		}
	}

	blocks, err := parseInput(inPath, source)
	if err != nil {
		return err
	}
	blocks = sigparse.Inject(blocks, meta)

	builder := pdf.NewBuilder()
	eng := layout.New(
		layout.WithPolicy(policy),
		layout.WithLogger(log),
		layout.WithMeasurer(builder),
	)
	res := eng.Layout(blocks, docType)
	if res.HasOverflow {
		log.Warn("document contains oversized content",
			observability.String("input", inPath))
	}

	c := canvas.NewPDF(builder, policy, docType)
	if err := eng.Render(res, c, docType); err != nil {
		return err
	}

	if outPath == "" {
		outPath = strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".pdf"
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()
	if _, err := builder.WriteTo(out); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}

	log.Info("rendered",
		observability.String("input", inPath),
		observability.String("output", outPath),
		observability.Int("pages", res.TotalPages),
	)
	return nil
}

func parseInput(path string, source []byte) ([]block.Block, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return markup.FromMarkdown(source)
	case ".html", ".htm":
		return markup.FromHTML(string(source))
	default:
		return markup.Parse(string(source)), nil
	}
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}
