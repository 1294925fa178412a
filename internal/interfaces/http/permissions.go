package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// Operations declara, como datos, qué roles puede ejecutar cada operación de
// la API. nil significa "cualquier usuario autenticado" (sin exigir perfil).
// El router cablea cada ruta con Gate(nombre); la tabla se puede enumerar y
// probar sin invocar ningún handler.
var Operations = map[string][]string{
	"category.list":   nil,
	"category.get":    nil,
	"category.create": {entity.RoleGerente, entity.RoleAdministrador},
	"category.update": {entity.RoleGerente, entity.RoleAdministrador},
	"category.delete": {entity.RoleAdministrador},

	"supplier.list":   nil,
	"supplier.get":    nil,
	"supplier.create": {entity.RoleGerente, entity.RoleAdministrador},
	"supplier.update": {entity.RoleGerente, entity.RoleAdministrador},
	"supplier.delete": {entity.RoleAdministrador},

	"product.list":   nil,
	"product.get":    nil,
	"product.create": {entity.RoleGerente, entity.RoleAdministrador},
	"product.update": {entity.RoleGerente, entity.RoleAdministrador},
	"product.delete": {entity.RoleAdministrador},

	"customer.list":   {entity.RoleAdministrador, entity.RoleGerente, entity.RoleVendedor},
	"customer.get":    {entity.RoleAdministrador, entity.RoleGerente, entity.RoleVendedor},
	"customer.create": {entity.RoleAdministrador, entity.RoleGerente},
	"customer.update": {entity.RoleAdministrador, entity.RoleGerente},
	"customer.delete": {entity.RoleAdministrador},

	// Autoservicio del cliente: su propio perfil y sus compras.
	"customer.me":           {entity.RoleCliente},
	"customer.me.update":    {entity.RoleCliente},
	"customer.me.purchases": {entity.RoleCliente},

	"sale.create": {entity.RoleAdministrador, entity.RoleGerente},
	"sale.get":    {entity.RoleVendedor, entity.RoleGerente, entity.RoleAdministrador, entity.RoleCliente},

	"report.view": {entity.RoleAdministrador, entity.RoleGerente, entity.RoleVendedor},

	"dashboard.view": nil,

	"user.create": {entity.RoleAdministrador},
}

// Gate devuelve el middleware de autorización de una operación de la tabla.
// Para operaciones nil basta la autenticación previa y el gate es un paso
// vacío. Una operación no declarada es un bug de cableado: se cierra con 403.
func Gate(operation string) fiber.Handler {
	roles, ok := Operations[operation]
	if !ok {
		return func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no registrada"})
		}
	}
	if roles == nil {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return RequireRol(roles...)
}
