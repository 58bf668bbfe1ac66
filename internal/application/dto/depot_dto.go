package dto

// CreateDepotRequest entrada para crear un depósito.
type CreateDepotRequest struct {
	Name    string `json:"nombre"`
	Address string `json:"direccion"`
}

// UpdateDepotRequest entrada para actualizar un depósito.
type UpdateDepotRequest struct {
	Name    *string `json:"nombre"`
	Address *string `json:"direccion"`
}

// DepotResponse salida de un depósito.
type DepotResponse struct {
	ID      int64  `json:"idDeposito"`
	Name    string `json:"nombre"`
	Address string `json:"direccion"`
	Active  bool   `json:"activo"`
}
