package services

import (
	"context"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/domain/ports"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

// MenuService projeta o grafo de autorização no menu de navegação de
// um rol. Somente leitura: não há caminho de escrita aqui.
type MenuService struct {
	grantRepo      repositories.RolFormPermissionRepository
	permissionRepo repositories.Repository[entities.Permission]
	formRepo       repositories.Repository[entities.Form]
	formModuleRepo repositories.FormModuleRepository
	moduleRepo     repositories.Repository[entities.Module]
	logger         ports.Logger
}

// NewMenuService cria um novo MenuService
func NewMenuService(
	grantRepo repositories.RolFormPermissionRepository,
	permissionRepo repositories.Repository[entities.Permission],
	formRepo repositories.Repository[entities.Form],
	formModuleRepo repositories.FormModuleRepository,
	moduleRepo repositories.Repository[entities.Module],
	logger ports.Logger,
) *MenuService {
	return &MenuService{
		grantRepo:      grantRepo,
		permissionRepo: permissionRepo,
		formRepo:       formRepo,
		formModuleRepo: formModuleRepo,
		moduleRepo:     moduleRepo,
		logger:         logger,
	}
}

// GetMenuByRolID deriva o menu do rol: concessões com CanRead → form
// → form_module → module, agrupando forms sob modules na ordem em que
// aparecem. Um rol sem concessões produz um menu vazio, não um erro.
func (s *MenuService) GetMenuByRolID(ctx context.Context, rolID int64) ([]dto.MenuItemDTO, error) {
	grants, err := s.grantRepo.GetByRolID(ctx, rolID)
	if err != nil {
		s.logger.Error("failed to load grants for menu", "rol_id", rolID, "error", err)
		return nil, err
	}

	menu := make([]dto.MenuItemDTO, 0)
	// itemIndex: ModuleID → posição em menu; seenForms: pares
	// (ModuleID, FormID) já adicionados
	itemIndex := make(map[int64]int)
	seenForms := make(map[[2]int64]bool)

	for i := range grants {
		grant := &grants[i]

		permission, err := s.permissionRepo.GetByID(ctx, grant.PermissionID)
		if err != nil {
			s.logger.Error("failed to load permission for menu", "permission_id", grant.PermissionID, "error", err)
			return nil, err
		}
		if permission == nil || !permission.CanRead {
			continue
		}

		form, err := s.formRepo.GetByID(ctx, grant.FormID)
		if err != nil {
			s.logger.Error("failed to load form for menu", "form_id", grant.FormID, "error", err)
			return nil, err
		}
		if form == nil {
			continue
		}

		formModules, err := s.formModuleRepo.GetByFormID(ctx, form.ID)
		if err != nil {
			s.logger.Error("failed to load form modules for menu", "form_id", form.ID, "error", err)
			return nil, err
		}

		for j := range formModules {
			module, err := s.moduleRepo.GetByID(ctx, formModules[j].ModuleID)
			if err != nil {
				s.logger.Error("failed to load module for menu", "module_id", formModules[j].ModuleID, "error", err)
				return nil, err
			}
			if module == nil {
				continue
			}

			key := [2]int64{module.ID, form.ID}
			if seenForms[key] {
				continue
			}
			seenForms[key] = true

			idx, ok := itemIndex[module.ID]
			if !ok {
				menu = append(menu, dto.MenuItemDTO{
					ModuleID:   module.ID,
					ModuleCode: module.Code,
					Forms:      make([]dto.MenuFormDTO, 0, 1),
				})
				idx = len(menu) - 1
				itemIndex[module.ID] = idx
			}

			menu[idx].Forms = append(menu[idx].Forms, dto.MenuFormDTO{
				FormID: form.ID,
				Name:   form.Name,
				Code:   form.Code,
			})
		}
	}

	return menu, nil
}
