package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfam/rfamops/internal/core/domain"
)

var proteomeCmd = &cobra.Command{
	Use:   "proteome",
	Short: "Resolve UniProt reference proteomes",
}

var proteomeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reference proteome accessions",
	Args:  cobra.NoArgs,
	RunE:  runProteomeList,
}

var proteomeResolveCmd = &cobra.Command{
	Use:   "resolve <accession|file> [accession...]",
	Short: "Map proteomes to genome assemblies",
	Long: `Resolves each proteome to the assembly accession named in its UniProt
descriptor. The first argument may be a file with one accession per line.
Proteomes without an assembly are printed with an empty second column.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProteomeResolve,
}

var proteomeSearchCmd = &cobra.Command{
	Use:   "search <accession> <keyword>",
	Short: "List descriptor accessions under a keyword path",
	Long: `Prints the trailing path segment of every object in the proteome's RDF
descriptor whose URI contains /<keyword>/, for example "embl-cds".`,
	Args: cobra.ExactArgs(2),
	RunE: runProteomeSearch,
}

func init() {
	proteomeCmd.AddCommand(proteomeListCmd)
	proteomeCmd.AddCommand(proteomeResolveCmd)
	proteomeCmd.AddCommand(proteomeSearchCmd)
	rootCmd.AddCommand(proteomeCmd)
}

func runProteomeList(cmd *cobra.Command, _ []string) error {
	if proteomeService == nil {
		return errors.New("proteome service not configured")
	}

	accs, err := proteomeService.ListReferenceProteomes(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list reference proteomes: %w", err)
	}
	for _, acc := range accs {
		cmd.Println(acc)
	}
	return nil
}

func runProteomeResolve(cmd *cobra.Command, args []string) error {
	if proteomeService == nil {
		return errors.New("proteome service not configured")
	}

	var (
		mapping domain.ProteomeAssemblies
		order   []domain.Accession
	)
	if len(args) == 1 {
		var err error
		order, mapping, err = proteomeService.ResolveInput(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", args[0], err)
		}
	} else {
		proteomes := make([]domain.Accession, 0, len(args))
		for _, arg := range args {
			acc, err := domain.ParseAccession(arg)
			if err != nil {
				return err
			}
			proteomes = append(proteomes, acc)
		}
		mapping = proteomeService.ResolveAssemblies(cmd.Context(), proteomes)
		order = proteomes
	}

	for _, p := range order {
		cmd.Printf("%s\t%s\n", p, mapping[p])
	}
	if unresolved := mapping.Unresolved(); len(unresolved) > 0 {
		cmd.PrintErrf("%d of %d proteomes have no assembly\n", len(unresolved), len(mapping))
	}
	return nil
}

func runProteomeSearch(cmd *cobra.Command, args []string) error {
	if proteomeService == nil {
		return errors.New("proteome service not configured")
	}

	proteome, err := domain.ParseAccession(args[0])
	if err != nil {
		return err
	}
	accs, err := proteomeService.SearchAccessions(cmd.Context(), proteome, args[1])
	if err != nil {
		return fmt.Errorf("failed to search %s: %w", proteome, err)
	}
	for _, acc := range accs {
		cmd.Println(acc)
	}
	return nil
}
