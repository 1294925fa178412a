package entity

import "time"

// Roles válidos para Profile. "admin" es un alias legado de "administrador":
// se canonicaliza en la frontera (login, alta de usuarios) con NormalizeRole,
// de modo que los predicados de permiso solo ven roles canónicos.
const (
	RoleVendedor      = "vendedor"
	RoleGerente       = "gerente"
	RoleAdministrador = "administrador"
	RoleCliente       = "cliente"
	RoleAdminAlias    = "admin"
)

// Profile vincula un User con exactamente un rol y datos tipo RRHH.
// Un usuario sin Profile no tiene rol: todos los predicados fallan cerrados.
type Profile struct {
	ID         string
	UserID     string
	Role       string // vendedor, gerente, administrador, cliente (ya normalizado)
	Phone      string
	Department string
	HiredAt    time.Time
	Active     bool
	CreatedAt  time.Time
}

// NormalizeRole canonicaliza el alias legado "admin" a "administrador".
// Cualquier otro valor se devuelve tal cual.
func NormalizeRole(role string) string {
	if role == RoleAdminAlias {
		return RoleAdministrador
	}
	return role
}

// ValidRole indica si el string corresponde a un rol conocido (alias incluido).
func ValidRole(role string) bool {
	switch role {
	case RoleVendedor, RoleGerente, RoleAdministrador, RoleCliente, RoleAdminAlias:
		return true
	}
	return false
}

// ── Predicados de capacidad (funciones puras del rol canónico) ───────────────

// CanRead: todos los roles pueden leer.
func CanRead(role string) bool { return true }

// CanWrite: crear y actualizar, solo gerente y administrador.
func CanWrite(role string) bool {
	role = NormalizeRole(role)
	return role == RoleGerente || role == RoleAdministrador
}

// CanDelete: eliminar, solo administrador.
func CanDelete(role string) bool {
	return NormalizeRole(role) == RoleAdministrador
}

// CanViewCustomers: ver el listado de clientes, administrador y gerente.
func CanViewCustomers(role string) bool {
	role = NormalizeRole(role)
	return role == RoleAdministrador || role == RoleGerente
}

// CanViewSales: consultar ventas, los cuatro roles.
func CanViewSales(role string) bool {
	switch NormalizeRole(role) {
	case RoleVendedor, RoleGerente, RoleAdministrador, RoleCliente:
		return true
	}
	return false
}

// CanEditOwnProfile: editar el perfil propio, solo cliente.
func CanEditOwnProfile(role string) bool {
	return NormalizeRole(role) == RoleCliente
}

// CanGenerateReport: sección extendida del reporte de ventas (rankings top-5),
// solo administrador y gerente. Los demás roles reciben los agregados base.
func CanGenerateReport(role string) bool {
	role = NormalizeRole(role)
	return role == RoleAdministrador || role == RoleGerente
}

// Métodos de conveniencia sobre Profile, delegan en los predicados de rol.
func (p *Profile) CanRead() bool           { return CanRead(p.Role) }
func (p *Profile) CanWrite() bool          { return CanWrite(p.Role) }
func (p *Profile) CanDelete() bool         { return CanDelete(p.Role) }
func (p *Profile) CanViewCustomers() bool  { return CanViewCustomers(p.Role) }
func (p *Profile) CanViewSales() bool      { return CanViewSales(p.Role) }
func (p *Profile) CanEditOwnProfile() bool { return CanEditOwnProfile(p.Role) }
