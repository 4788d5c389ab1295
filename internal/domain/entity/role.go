package entity

import "time"

// Módulos de negocio con nivel de permiso propio por rol.
const (
	ModuleCustomer   = "customer"
	ModuleSuppliers  = "suppliers"
	ModuleMaterials  = "materials"
	ModulePurchases  = "purchases"
	ModuleSales      = "sales"
	ModuleInventory  = "inventory"
	ModuleAccounting = "accounting"
	ModuleReporting  = "reporting"
)

// Modules lista los módulos en orden estable (para el mapa de permisos del dashboard).
var Modules = []string{
	ModuleCustomer,
	ModuleSuppliers,
	ModuleMaterials,
	ModulePurchases,
	ModuleSales,
	ModuleInventory,
	ModuleAccounting,
	ModuleReporting,
}

// Niveles de permiso por módulo.
const (
	LevelNone      = 0 // sin acceso
	LevelReadOnly  = 1 // solo lectura
	LevelReadWrite = 2 // lectura y escritura
	LevelAdmin     = 3 // acceso total
)

// Role agrupa un nivel de permiso (0-3) por cada módulo de negocio.
// Un usuario puede tener varios roles; el nivel efectivo es el máximo.
type Role struct {
	ID         string
	RoleName   string
	Customer   int
	Suppliers  int
	Materials  int
	Purchases  int
	Sales      int
	Inventory  int
	Accounting int
	Reporting  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LevelFor devuelve el nivel del rol para un módulo; 0 si el módulo no existe.
func (r Role) LevelFor(module string) int {
	switch module {
	case ModuleCustomer:
		return r.Customer
	case ModuleSuppliers:
		return r.Suppliers
	case ModuleMaterials:
		return r.Materials
	case ModulePurchases:
		return r.Purchases
	case ModuleSales:
		return r.Sales
	case ModuleInventory:
		return r.Inventory
	case ModuleAccounting:
		return r.Accounting
	case ModuleReporting:
		return r.Reporting
	default:
		return LevelNone
	}
}

// UserRole vincula un usuario con un rol (tabla de unión).
type UserRole struct {
	UserID string
	RoleID string
}
