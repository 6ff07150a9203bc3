package entity

// Categorías válidas al dar de alta un producto (ya normalizadas: minúsculas, sin tildes).
const (
	CategoryAlmacen    = "almacen"
	CategoryCarniceria = "carniceria"
	CategoryPerfumeria = "perfumeria"
	CategoryVerduleria = "verduleria"
	CategoryVarios     = "varios"
)

// Categories es el conjunto cerrado, en el orden en que se muestra al operador.
var Categories = []string{
	CategoryAlmacen,
	CategoryCarniceria,
	CategoryPerfumeria,
	CategoryVerduleria,
	CategoryVarios,
}

// IsCategory indica si name (ya normalizado) pertenece al conjunto cerrado.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
