package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, entity.RoleAdministrador, entity.NormalizeRole("admin"))
	assert.Equal(t, entity.RoleAdministrador, entity.NormalizeRole("administrador"))
	assert.Equal(t, entity.RoleGerente, entity.NormalizeRole("gerente"))
	assert.Equal(t, "", entity.NormalizeRole(""))
	// Valores desconocidos pasan tal cual; los predicados los rechazan.
	assert.Equal(t, "contador", entity.NormalizeRole("contador"))
}

func TestValidRole(t *testing.T) {
	for _, r := range []string{"vendedor", "gerente", "administrador", "cliente", "admin"} {
		assert.True(t, entity.ValidRole(r), r)
	}
	assert.False(t, entity.ValidRole(""))
	assert.False(t, entity.ValidRole("contador"))
	assert.False(t, entity.ValidRole("Administrador"), "los roles son sensibles a mayúsculas")
}

// Matriz predicado × rol. El alias legado admin debe comportarse exactamente
// igual que administrador; un rol vacío (sin perfil) no puede nada salvo leer.
func TestPredicadosPorRol(t *testing.T) {
	cases := []struct {
		role          string
		write, del    bool
		viewCustomers bool
		viewSales     bool
		editOwn       bool
		genReport     bool
	}{
		{role: "vendedor", viewSales: true},
		{role: "gerente", write: true, viewCustomers: true, viewSales: true, genReport: true},
		{role: "administrador", write: true, del: true, viewCustomers: true, viewSales: true, genReport: true},
		{role: "admin", write: true, del: true, viewCustomers: true, viewSales: true, genReport: true},
		{role: "cliente", viewSales: true, editOwn: true},
		{role: ""},
		{role: "contador"},
	}
	for _, tc := range cases {
		t.Run("rol="+tc.role, func(t *testing.T) {
			assert.True(t, entity.CanRead(tc.role), "todos pueden leer")
			assert.Equal(t, tc.write, entity.CanWrite(tc.role), "CanWrite")
			assert.Equal(t, tc.del, entity.CanDelete(tc.role), "CanDelete")
			assert.Equal(t, tc.viewCustomers, entity.CanViewCustomers(tc.role), "CanViewCustomers")
			assert.Equal(t, tc.viewSales, entity.CanViewSales(tc.role), "CanViewSales")
			assert.Equal(t, tc.editOwn, entity.CanEditOwnProfile(tc.role), "CanEditOwnProfile")
			assert.Equal(t, tc.genReport, entity.CanGenerateReport(tc.role), "CanGenerateReport")
		})
	}
}

func TestProfileDelegaEnPredicados(t *testing.T) {
	p := &entity.Profile{Role: entity.RoleGerente}
	assert.True(t, p.CanWrite())
	assert.False(t, p.CanDelete())
	assert.True(t, p.CanViewCustomers())
	assert.False(t, p.CanEditOwnProfile())
}
