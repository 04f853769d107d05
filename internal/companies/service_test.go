package companies

import (
	"context"
	"testing"

	"vitrine-backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequiresName(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, validation.New(), nil)

	_, err := svc.Create(context.Background(), CreateRequest{Industry: "Retail"})
	ve, ok := validation.AsError(err)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"name": "required"}, ve.Fields)
	assert.Equal(t, 0, repo.companies.Len())
}

func TestListKeepsInsertionOrder(t *testing.T) {
	svc := NewService(NewMemoryRepository(), validation.New(), nil)
	for _, name := range []string{"Contoso", "Fabrikam", "Tailspin"} {
		_, err := svc.Create(context.Background(), CreateRequest{Name: name})
		require.NoError(t, err)
	}

	companies, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, companies, 3)
	assert.Equal(t, "Contoso", companies[0].Name)
	assert.Equal(t, "Tailspin", companies[2].Name)
}

func TestGetByID(t *testing.T) {
	svc := NewService(NewMemoryRepository(), validation.New(), nil)
	id, err := svc.Create(context.Background(), CreateRequest{Name: "Contoso", Logo: "/logos/contoso.svg", Industry: "Retail"})
	require.NoError(t, err)

	company, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, "/logos/contoso.svg", company.Logo)

	company, err = svc.GetByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, company)
}
