package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReadingsCRM/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-ReadingsCRM/internal/service/catalog/models"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/deadline"
)

// Service сервис для работы с категориями и раскладами
type Service struct {
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	catalogRepo CatalogRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// CreateCategory создает пустую категорию
func (s *Service) CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.CategoryResponse, error) {
	if err := req.Normalize(); err != nil {
		s.logger.Warn("CreateCategory: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	category, err := s.catalogRepo.CreateCategory(ctx, &domain.Category{Name: req.Name})
	if err != nil {
		return nil, s.translate("CreateCategory", req.Name, err)
	}

	s.logger.Info("CreateCategory: successfully created category id=%s", category.ID)
	return models.FromDomainCategory(category), nil
}

// GetCategory получает категорию с раскладами
func (s *Service) GetCategory(ctx context.Context, id uuid.UUID) (*models.CategoryResponse, error) {
	category, err := s.catalogRepo.GetCategory(ctx, id)
	if err != nil {
		return nil, s.translate("GetCategory", id.String(), err)
	}

	return models.FromDomainCategory(category), nil
}

// ListCategories получает все категории вместе с раскладами
func (s *Service) ListCategories(ctx context.Context) (*models.CategoryListResponse, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCategories: successfully fetched %d categories", len(categories))
	return models.FromDomainCategoryList(categories), nil
}

// UpdateCategory переименовывает категорию
func (s *Service) UpdateCategory(ctx context.Context, id uuid.UUID, req *models.CategoryRequest) (*models.CategoryResponse, error) {
	if err := req.Normalize(); err != nil {
		s.logger.Warn("UpdateCategory: invalid request for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	category, err := s.catalogRepo.UpdateCategory(ctx, &domain.Category{ID: id, Name: req.Name})
	if err != nil {
		return nil, s.translate("UpdateCategory", id.String(), err)
	}

	s.logger.Info("UpdateCategory: successfully updated category id=%s", id)
	return models.FromDomainCategory(category), nil
}

// DeleteCategory удаляет категорию, ее расклады и все записи на эти расклады
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("DeleteCategory: deleting category id=%s", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appointments, err := s.appointmentRepo.DeleteByCategory(txCtx, id)
		if err != nil {
			return err
		}
		readings, err := s.catalogRepo.DeleteReadingsByCategory(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.catalogRepo.DeleteCategory(txCtx, id); err != nil {
			return err
		}
		s.logger.Info("DeleteCategory: removed %d readings and %d appointments of category id=%s", readings, appointments, id)
		return nil
	})
	if err != nil {
		return s.translate("DeleteCategory", id.String(), err)
	}

	s.logger.Info("DeleteCategory: successfully deleted category id=%s", id)
	return nil
}

// CreateReading создает расклад в существующей категории
func (s *Service) CreateReading(ctx context.Context, categoryID uuid.UUID, req *models.CreateReadingRequest) (*models.ReadingResponse, error) {
	if err := req.Normalize(); err != nil {
		s.logger.Warn("CreateReading: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	reading := req.ToDomain(categoryID)
	if err := reading.Duration.Validate(); err != nil {
		s.logger.Warn("CreateReading: invalid duration: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}

	if _, err := s.catalogRepo.GetCategory(ctx, categoryID); err != nil {
		return nil, s.translate("CreateReading", categoryID.String(), err)
	}

	created, err := s.catalogRepo.CreateReading(ctx, reading)
	if err != nil {
		return nil, s.translate("CreateReading", categoryID.String(), err)
	}

	s.logger.Info("CreateReading: successfully created reading id=%s in category id=%s", created.ID, categoryID)
	return models.FromDomainReading(created), nil
}

// GetReading получает расклад по ID
func (s *Service) GetReading(ctx context.Context, id uuid.UUID) (*models.ReadingResponse, error) {
	reading, err := s.catalogRepo.GetReading(ctx, id)
	if err != nil {
		return nil, s.translate("GetReading", id.String(), err)
	}

	return models.FromDomainReading(reading), nil
}

// UpdateReading частично обновляет расклад.
// Название и цена копируются во все записи на расклад в той же транзакции.
// Сроки уже созданных записей не пересчитываются.
func (s *Service) UpdateReading(ctx context.Context, id uuid.UUID, req *models.UpdateReadingRequest) (*models.ReadingResponse, error) {
	s.logger.Info("UpdateReading: updating reading id=%s", id)

	var updated *domain.Reading
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		reading, err := s.catalogRepo.GetReading(txCtx, id)
		if err != nil {
			return err
		}

		snapshotChanged, err := req.Apply(reading)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := reading.Duration.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDuration, err)
		}

		updated, err = s.catalogRepo.UpdateReading(txCtx, reading)
		if err != nil {
			return err
		}

		if !snapshotChanged {
			return nil
		}

		n, err := s.appointmentRepo.UpdateReadingSnapshot(txCtx, id, domain.ReadingSnapshot{
			Name:  updated.Name,
			Price: updated.Price,
		})
		if err != nil {
			return err
		}
		s.logger.Info("UpdateReading: propagated reading id=%s to %d appointments", id, n)
		return nil
	})
	if err != nil {
		return nil, s.translate("UpdateReading", id.String(), err)
	}

	s.logger.Info("UpdateReading: successfully updated reading id=%s", id)
	return models.FromDomainReading(updated), nil
}

// DeleteReading удаляет расклад вместе с записями на него
func (s *Service) DeleteReading(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("DeleteReading: deleting reading id=%s", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		n, err := s.appointmentRepo.DeleteByReading(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.catalogRepo.DeleteReading(txCtx, id); err != nil {
			return err
		}
		s.logger.Info("DeleteReading: removed %d appointments of reading id=%s", n, id)
		return nil
	})
	if err != nil {
		return s.translate("DeleteReading", id.String(), err)
	}

	s.logger.Info("DeleteReading: successfully deleted reading id=%s", id)
	return nil
}

// translate переводит ошибки репозитория в ошибки сервиса
func (s *Service) translate(op, key string, err error) error {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidDuration):
		s.logger.Warn("%s: invalid input for %s: %v", op, key, err)
		return err
	case errors.Is(err, deadline.ErrInvalidDuration):
		s.logger.Warn("%s: invalid duration for %s: %v", op, key, err)
		return fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	case errors.Is(err, catalogRepo.ErrCategoryNotFound):
		s.logger.Warn("%s: category %s not found", op, key)
		return ErrCategoryNotFound
	case errors.Is(err, catalogRepo.ErrReadingNotFound):
		s.logger.Warn("%s: reading %s not found", op, key)
		return ErrReadingNotFound
	default:
		s.logger.Error("%s: repository error for %s: %v", op, key, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
