package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfam/rfamops/internal/core/domain"
)

var (
	exportSeqDB  string
	exportOutDir string
	exportFamily string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export family data",
}

var exportFastaCmd = &cobra.Command{
	Use:   "fasta",
	Short: "Write significant family regions as gzipped FASTA",
	Long: `Reads the significant regions of a family (or of every family) from the
Rfam database, extracts each region from the indexed sequence file with
esl-sfetch and writes <outdir>/<family>.fa.gz.

Regions whose sequence is empty or not a nucleotide string are skipped and
listed in <outdir>/<family>.log, or <outdir>/missing_seqs.log for all families.`,
	Args: cobra.NoArgs,
	RunE: runExportFasta,
}

func init() {
	exportFastaCmd.Flags().StringVar(&exportSeqDB, "seq-db", "", "esl-sfetch indexed sequence file")
	exportFastaCmd.Flags().StringVar(&exportOutDir, "outdir", "", "output directory")
	exportFastaCmd.Flags().StringVar(&exportFamily, "acc", "", "family accession (default all families)")
	_ = exportFastaCmd.MarkFlagRequired("seq-db")
	_ = exportFastaCmd.MarkFlagRequired("outdir")

	exportCmd.AddCommand(exportFastaCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportFasta(cmd *cobra.Command, _ []string) (err error) {
	if exporterFactory == nil {
		return errors.New("export service not configured")
	}

	exporter, closeFn, err := exporterFactory(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to open region store: %w", err)
	}
	defer func() {
		if closeErr := closeFn(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	var reports []domain.ExportReport
	if exportFamily != "" {
		report, err := exporter.ExportFamily(cmd.Context(), exportSeqDB, exportFamily, exportOutDir)
		if err != nil {
			return fmt.Errorf("export %s failed: %w", exportFamily, err)
		}
		reports = append(reports, *report)
	} else {
		reports, err = exporter.ExportAll(cmd.Context(), exportSeqDB, exportOutDir)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
	}

	for _, r := range reports {
		cmd.Printf("%s: %d written, %d skipped -> %s\n", r.Family, r.Written, len(r.Skipped), r.Path)
	}
	if len(reports) == 0 {
		cmd.Println("No significant regions found.")
	}
	return nil
}
