package employees

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDirectory(t *testing.T, svc *Service) {
	t.Helper()
	ctx := context.Background()

	entries := []CreateInput{
		{FirstName: "Nadir", LastName: "Brooks", Email: "nadir.brooks@example.com"},
		{FirstName: "Maria", LastName: "Santos", Email: "maria.santos@example.com"},
		{FirstName: "Liam", LastName: "Brook", Email: "liam.brook@example.com"},
		{FirstName: "Ana", LastName: "Delgado", Email: "ana.delgado@example.com"},
	}
	for _, entry := range entries {
		_, err := svc.Create(ctx, entry)
		require.NoError(t, err)
	}
}

func TestSearchMinimumFragmentLength(t *testing.T) {
	svc := newTestService()
	seedDirectory(t, svc)

	results, err := svc.Search(context.Background(), "n")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchExactLastName(t *testing.T) {
	svc := newTestService()
	seedDirectory(t, svc)

	results, err := svc.Search(context.Background(), "Brooks")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Nadir", results[0].FirstName)
	assert.Equal(t, "Brooks", results[0].LastName)
}

func TestSearchToleratesTypos(t *testing.T) {
	svc := newTestService()
	seedDirectory(t, svc)

	results, err := svc.Search(context.Background(), "santoz")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Santos", results[0].LastName)
}

func TestSearchRejectsUnrelatedQueries(t *testing.T) {
	svc := newTestService()
	seedDirectory(t, svc)

	results, err := svc.Search(context.Background(), "zzzzzzzzzz")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchCapsResults(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		_, err := svc.Create(ctx, CreateInput{
			FirstName: "Jordan",
			LastName:  fmt.Sprintf("Smith%02d", i),
			Email:     fmt.Sprintf("jordan%02d@example.com", i),
		})
		require.NoError(t, err)
	}

	results, err := svc.Search(ctx, "Jordan")
	require.NoError(t, err)
	assert.Len(t, results, 20)
}
