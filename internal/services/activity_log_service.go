package services

import (
	"context"
	"time"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/domain/ports"
	"github.com/rafabene/adminpro-backend/internal/domain/repositories"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

const (
	defaultLogPageSize = 50
	maxLogPageSize     = 500
)

// ActivityLogService registra quem fez o quê. Append puro: o
// timestamp é capturado no momento da chamada, nunca vem do caller.
type ActivityLogService struct {
	repo      repositories.ActivityLogRepository
	publisher ports.ActivityPublisher // opcional; nil desliga o feed
	logger    ports.Logger
}

// NewActivityLogService cria um novo ActivityLogService
func NewActivityLogService(
	repo repositories.ActivityLogRepository,
	publisher ports.ActivityPublisher,
	logger ports.Logger,
) *ActivityLogService {
	return &ActivityLogService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func activityLogToDTO(e *entities.ActivityLog) dto.ActivityLogDTO {
	return dto.ActivityLogDTO{
		ID:         e.ID,
		UserID:     e.UserID,
		UserName:   e.UserName,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Details:    e.Details,
		Timestamp:  e.Timestamp,
	}
}

func activityLogsToDTOs(rows []entities.ActivityLog) []dto.ActivityLogDTO {
	result := make([]dto.ActivityLogDTO, 0, len(rows))
	for i := range rows {
		result = append(result, activityLogToDTO(&rows[i]))
	}
	return result
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLogPageSize
	}
	if limit > maxLogPageSize {
		limit = maxLogPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// LogActivity grava um registro de atividade. Falhas aqui são
// responsabilidade do caller tratar como não-fatais: a requisição que
// disparou o registro nunca deve falhar por causa do log.
func (s *ActivityLogService) LogActivity(
	ctx context.Context,
	userID int64,
	userName, action, entityType string,
	entityID int64,
	details string,
) (dto.ActivityLogDTO, error) {
	record := &entities.ActivityLog{
		UserID:     userID,
		UserName:   userName,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Error("failed to write activity log",
			"user_id", userID,
			"action", action,
			"entity_type", entityType,
			"error", err,
		)
		return dto.ActivityLogDTO{}, err
	}

	if s.publisher != nil {
		s.publisher.Publish(*record)
	}

	return activityLogToDTO(record), nil
}

// GetRecent retorna os registros mais recentes, paginados
func (s *ActivityLogService) GetRecent(ctx context.Context, limit, offset int) ([]dto.ActivityLogDTO, error) {
	limit, offset = clampPage(limit, offset)
	rows, err := s.repo.GetRecent(ctx, limit, offset)
	if err != nil {
		s.logger.Error("failed to list activity logs", "error", err)
		return nil, err
	}
	return activityLogsToDTOs(rows), nil
}

// GetByUser retorna os registros de um usuário, paginados
func (s *ActivityLogService) GetByUser(ctx context.Context, userID int64, limit, offset int) ([]dto.ActivityLogDTO, error) {
	limit, offset = clampPage(limit, offset)
	rows, err := s.repo.GetByUser(ctx, userID, limit, offset)
	if err != nil {
		s.logger.Error("failed to list activity logs by user", "user_id", userID, "error", err)
		return nil, err
	}
	return activityLogsToDTOs(rows), nil
}

// GetByEntityType retorna os registros de um tipo de entidade,
// paginados
func (s *ActivityLogService) GetByEntityType(ctx context.Context, entityType string, limit, offset int) ([]dto.ActivityLogDTO, error) {
	limit, offset = clampPage(limit, offset)
	rows, err := s.repo.GetByEntityType(ctx, entityType, limit, offset)
	if err != nil {
		s.logger.Error("failed to list activity logs by entity type", "entity_type", entityType, "error", err)
		return nil, err
	}
	return activityLogsToDTOs(rows), nil
}

// GetByDateRange retorna os registros do intervalo [from, to],
// paginados
func (s *ActivityLogService) GetByDateRange(ctx context.Context, from, to time.Time, limit, offset int) ([]dto.ActivityLogDTO, error) {
	limit, offset = clampPage(limit, offset)
	rows, err := s.repo.GetByDateRange(ctx, from, to, limit, offset)
	if err != nil {
		s.logger.Error("failed to list activity logs by date range", "error", err)
		return nil, err
	}
	return activityLogsToDTOs(rows), nil
}

// GetByID retorna (nil, nil) quando o registro não existe
func (s *ActivityLogService) GetByID(ctx context.Context, id int64) (*dto.ActivityLogDTO, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get activity log", "id", id, "error", err)
		return nil, err
	}
	if entity == nil {
		return nil, nil
	}

	d := activityLogToDTO(entity)
	return &d, nil
}
