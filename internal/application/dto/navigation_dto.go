package dto

// MenuEntry entrada del menú lateral.
type MenuEntry struct {
	Path  string `json:"path"`
	Title string `json:"title"`
	Alert string `json:"alert,omitempty"`
}

// AccountMenu datos del menú de cuenta del encabezado.
type AccountMenu struct {
	Name    string `json:"name"`
	Initial string `json:"initial"`
	Email   string `json:"email"`
}

// MenuResponse menú disponible para la sesión.
type MenuResponse struct {
	Entries []MenuEntry `json:"entries"`
	Account AccountMenu `json:"account"`
}

// ResolveResponse resultado de resolver una ruta de la consola.
type ResolveResponse struct {
	Path     string `json:"path"`
	Title    string `json:"title"`
	Status   string `json:"status"` // ok, redirect, forbidden, not_found, login_required
	Redirect string `json:"redirect,omitempty"`
	Chrome   bool   `json:"chrome"` // se muestra dentro del layout con menú
}
