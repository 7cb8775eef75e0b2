package cli

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rfam/rfamops/internal/core/domain"
)

var (
	genomeDest      string
	genomeFormat    string
	genomeHistLimit int
)

var genomeCmd = &cobra.Command{
	Use:   "genome",
	Short: "Download genome assemblies from ENA",
}

var genomeDownloadCmd = &cobra.Command{
	Use:   "download <accession|file>",
	Short: "Download every sequence entry of one or more assemblies",
	Long: `Expands each assembly accession into its sequence entries and downloads
them as gzipped FASTA into <dest>/<accession>/. The argument is either a single
accession or a file with one accession per line.

Failures are isolated per accession and listed in the summary.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenomeDownload,
}

var genomeFetchCmd = &cobra.Command{
	Use:   "fetch <accession>",
	Short: "Download an assembly via its XML descriptor",
	Long: `Downloads the assembly descriptor into <dest>, expands it from the local
copy, downloads every entry and removes the descriptor afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenomeFetch,
}

var genomeEntryCmd = &cobra.Command{
	Use:   "entry <accession>",
	Short: "Download a single sequence entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenomeEntry,
}

var genomeExpandCmd = &cobra.Command{
	Use:   "expand <accession>",
	Short: "List the sequence entries of an assembly",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenomeExpand,
}

var genomeHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent download outcomes",
	Args:  cobra.NoArgs,
	RunE:  runGenomeHistory,
}

func init() {
	for _, c := range []*cobra.Command{genomeDownloadCmd, genomeFetchCmd, genomeEntryCmd} {
		c.Flags().StringVar(&genomeDest, "dest", "", "destination directory")
		_ = c.MarkFlagRequired("dest")
	}
	genomeEntryCmd.Flags().StringVar(&genomeFormat, "format", string(domain.FormatFASTA), "entry format (fasta|xml)")
	genomeHistoryCmd.Flags().IntVar(&genomeHistLimit, "limit", 20, "number of outcomes to show (0 for all)")

	genomeCmd.AddCommand(genomeDownloadCmd)
	genomeCmd.AddCommand(genomeFetchCmd)
	genomeCmd.AddCommand(genomeEntryCmd)
	genomeCmd.AddCommand(genomeExpandCmd)
	genomeCmd.AddCommand(genomeHistoryCmd)
	rootCmd.AddCommand(genomeCmd)
}

func runGenomeDownload(cmd *cobra.Command, args []string) error {
	if genomeService == nil {
		return errors.New("genome service not configured")
	}

	summary, err := genomeService.DownloadGenomes(cmd.Context(), domain.DownloadRequest{
		Input:    args[0],
		DestDir:  genomeDest,
		Progress: progressPrinter(cmd.ErrOrStderr()),
	})
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	printSummary(cmd.OutOrStdout(), summary)
	if failed := summary.Count(domain.OutcomeFailed); failed > 0 {
		return fmt.Errorf("%d of %d accessions failed", failed, len(summary.Outcomes))
	}
	return nil
}

func runGenomeFetch(cmd *cobra.Command, args []string) error {
	if genomeService == nil {
		return errors.New("genome service not configured")
	}

	acc, err := domain.ParseAccession(args[0])
	if err != nil {
		return err
	}

	outcome := genomeService.FetchGenome(cmd.Context(), acc, genomeDest)
	printOutcome(cmd.OutOrStdout(), outcome)
	if outcome.Status == domain.OutcomeFailed {
		return fmt.Errorf("fetch %s failed: %s", acc, outcome.Error)
	}
	return nil
}

func runGenomeEntry(cmd *cobra.Command, args []string) error {
	if genomeService == nil {
		return errors.New("genome service not configured")
	}

	acc, err := domain.ParseAccession(args[0])
	if err != nil {
		return err
	}

	path, err := genomeService.FetchEntry(cmd.Context(), acc, domain.SequenceFormat(genomeFormat), genomeDest)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", acc, err)
	}
	cmd.Println(path)
	return nil
}

func runGenomeExpand(cmd *cobra.Command, args []string) error {
	if genomeService == nil {
		return errors.New("genome service not configured")
	}

	acc, err := domain.ParseAccession(args[0])
	if err != nil {
		return err
	}

	exp, err := genomeService.Expand(cmd.Context(), acc.Unversioned())
	if err != nil {
		return fmt.Errorf("failed to expand %s: %w", acc, err)
	}
	cmd.PrintErrf("%s: %d entries (%s)\n", exp.Assembly, len(exp.Entries), exp.Strategy)
	for _, entry := range exp.Entries {
		cmd.Println(entry)
	}
	return nil
}

func runGenomeHistory(cmd *cobra.Command, _ []string) error {
	if genomeService == nil {
		return errors.New("genome service not configured")
	}

	outcomes, err := genomeService.History(cmd.Context(), genomeHistLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if len(outcomes) == 0 {
		cmd.Println("No downloads recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FINISHED\tACCESSION\tSTATUS\tENTRIES\tRUN")
	for _, o := range outcomes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			o.EndedAt.Local().Format(time.DateTime),
			o.Accession,
			colorStatus(o.Status),
			strconv.Itoa(o.Downloaded)+"/"+strconv.Itoa(o.Entries),
			o.RunID,
		)
	}
	return w.Flush()
}
