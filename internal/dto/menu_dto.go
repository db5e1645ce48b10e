package dto

// MenuFormDTO é um form visível dentro de um item de menu
type MenuFormDTO struct {
	FormID int64  `json:"form_id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
}

// MenuItemDTO agrupa um module com os forms que o rol pode ler.
// Modules sem forms visíveis não aparecem no menu.
type MenuItemDTO struct {
	ModuleID   int64         `json:"module_id"`
	ModuleCode string        `json:"module_code"`
	Forms      []MenuFormDTO `json:"forms"`
}
