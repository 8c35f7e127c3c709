package model

// MenuItem is one entry of a role-specific navigation menu. Order is a
// stable rank consumed by clients for sorting.
type MenuItem struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Route string `json:"route"`
	Order int    `json:"order"`
}

var adminMenu = []MenuItem{
	{Label: "Usuarios", Icon: "users", Route: "/usuarios", Order: 1},
	{Label: "Concesionarias", Icon: "store", Route: "/concesionarias", Order: 2},
	{Label: "Autos", Icon: "car", Route: "/autos", Order: 3},
	{Label: "Compras", Icon: "receipt", Route: "/compras", Order: 4},
	{Label: "Favoritos", Icon: "heart", Route: "/favoritos", Order: 5},
	{Label: "Reseñas", Icon: "star", Route: "/resenas", Order: 6},
	{Label: "Reportes", Icon: "chart-bar", Route: "/reportes", Order: 7},
}

var dealershipMenu = []MenuItem{
	{Label: "Mis Ofertas", Icon: "store", Route: "/ofertas", Order: 1},
	{Label: "Ventas", Icon: "chart-line", Route: "/ventas", Order: 2},
	{Label: "Clientes", Icon: "users", Route: "/clientes", Order: 3},
	{Label: "Reseñas", Icon: "star", Route: "/resenas", Order: 4},
}

var buyerMenu = []MenuItem{
	{Label: "Ofertas", Icon: "shopping-cart", Route: "/dashboard/ofertas", Order: 1},
	{Label: "Mi Favorito", Icon: "heart", Route: "/dashboard/favoritos", Order: 2},
	{Label: "Mis Compras", Icon: "receipt", Route: "/dashboard/mis-compras", Order: 3},
}

var menuByRole = map[UserRole][]MenuItem{
	RoleAdmin:      adminMenu,
	RoleDealership: dealershipMenu,
	RoleBuyer:      buyerMenu,
}

// Menu returns the fixed navigation descriptor of the user's variant.
func (u *User) Menu() []MenuItem {
	return menuByRole[u.Role]
}
