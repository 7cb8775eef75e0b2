package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfam/rfamops/internal/core/domain"
)

func TestProteomeList(t *testing.T) {
	svc := &mockProteomeService{reference: []domain.Accession{"UP000005640", "UP000000589"}}
	withServices(t, &Services{Proteome: svc})

	stdout, _, err := execute(t, "proteome", "list")

	require.NoError(t, err)
	assert.Equal(t, "UP000005640\nUP000000589\n", stdout)
}

func TestProteomeList_Error(t *testing.T) {
	withServices(t, &Services{Proteome: &mockProteomeService{err: errors.New("uniprot down")}})

	_, _, err := execute(t, "proteome", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "uniprot down")
}

func TestProteomeResolve_SingleInputKeepsFileOrder(t *testing.T) {
	svc := &mockProteomeService{mapping: domain.ProteomeAssemblies{
		"UP2": "",
		"UP1": "GCA_000001405.27",
	}}
	svc.order = []domain.Accession{"UP2", "UP1"}
	withServices(t, &Services{Proteome: svc})

	stdout, stderr, err := execute(t, "proteome", "resolve", "proteomes.txt")

	require.NoError(t, err)
	assert.Equal(t, []string{"proteomes.txt"}, svc.inputs)
	assert.Equal(t, "UP2\t\nUP1\tGCA_000001405.27\n", stdout)
	assert.Contains(t, stderr, "1 of 2 proteomes have no assembly")
}

func TestProteomeResolve_ListKeepsOrder(t *testing.T) {
	svc := &mockProteomeService{mapping: domain.ProteomeAssemblies{
		"UP1": "GCA_1",
		"UP3": "GCA_3",
	}}
	withServices(t, &Services{Proteome: svc})

	stdout, stderr, err := execute(t, "proteome", "resolve", "UP3", "UP2", "UP1")

	require.NoError(t, err)
	assert.Empty(t, svc.inputs)
	assert.Equal(t, "UP3\tGCA_3\nUP2\t\nUP1\tGCA_1\n", stdout)
	assert.Contains(t, stderr, "1 of 3 proteomes")
}

func TestProteomeResolve_InvalidAccessionInList(t *testing.T) {
	withServices(t, &Services{Proteome: &mockProteomeService{}})

	_, _, err := execute(t, "proteome", "resolve", "UP1", "a/b")

	assert.ErrorIs(t, err, domain.ErrInvalidAccession)
}

func TestProteomeResolve_RequiresArgument(t *testing.T) {
	withServices(t, &Services{Proteome: &mockProteomeService{}})

	_, _, err := execute(t, "proteome", "resolve")

	assert.Error(t, err)
}

func TestProteomeSearch(t *testing.T) {
	svc := &mockProteomeService{results: []domain.Accession{"AAA01.1", "AAA02.1"}}
	withServices(t, &Services{Proteome: svc})

	stdout, _, err := execute(t, "proteome", "search", "UP000005640", "embl-cds")

	require.NoError(t, err)
	assert.Equal(t, []string{"UP000005640|embl-cds"}, svc.searched)
	assert.Equal(t, "AAA01.1\nAAA02.1\n", stdout)
}

func TestProteomeCmd_ServiceNotConfigured(t *testing.T) {
	withServices(t, &Services{})

	for _, args := range [][]string{
		{"proteome", "list"},
		{"proteome", "resolve", "UP1"},
		{"proteome", "search", "UP1", "embl"},
	} {
		_, _, err := execute(t, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "proteome service not configured")
	}
}
