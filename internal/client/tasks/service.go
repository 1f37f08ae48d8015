package tasks

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/iudanet/shiftsync/internal/client/storage"
	"github.com/iudanet/shiftsync/internal/crdt"
	"github.com/iudanet/shiftsync/internal/models"
)

// Ошибки сервиса задач
var (
	// ErrTaskDeleted задача удалена, изменение невозможно
	ErrTaskDeleted = errors.New("task is deleted")

	// ErrUnknownField поле не входит в схему задачи
	ErrUnknownField = errors.New("unknown task field")

	// ErrInvalidStatus недопустимое значение статуса
	ErrInvalidStatus = errors.New("invalid task status")
)

// Поля задачи, допустимые к изменению.
var allowedFields = map[string]struct{}{
	"title":       {},
	"description": {},
	"assigned_to": {},
	"priority":    {},
	"status":      {},
	"due_at":      {},
}

// CreateInput параметры создания задачи.
type CreateInput struct {
	Title       string
	Description string
	AssignedTo  string
	Priority    string
	DueAt       uint64
}

// Service выполняет локальные изменения задач: каждое изменение
// получает векторные часы узла, применяется к локальному кэшу
// и попадает в журнал операций для последующей отправки на сервер.
// Сервис работает полностью офлайн.
type Service struct {
	clock   *crdt.Clock
	records storage.RecordStorage
	oplog   storage.OplogStorage
	meta    storage.MetadataStorage
}

// NewService создает сервис задач поверх локального хранилища.
func NewService(clock *crdt.Clock, records storage.RecordStorage, oplog storage.OplogStorage, meta storage.MetadataStorage) *Service {
	return &Service{
		clock:   clock,
		records: records,
		oplog:   oplog,
		meta:    meta,
	}
}

// Create создает новую задачу и возвращает ее локальную запись.
func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Record, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("task title is required")
	}

	clock := s.clock.Tick()

	fields := map[string]models.FieldValue{
		"title":  s.field(input.Title, clock),
		"status": s.field(models.TaskStatusPending, clock),
	}
	if input.Description != "" {
		fields["description"] = s.field(input.Description, clock)
	}
	if input.AssignedTo != "" {
		fields["assigned_to"] = s.field(input.AssignedTo, clock)
	}
	if input.Priority != "" {
		fields["priority"] = s.field(input.Priority, clock)
	}
	if input.DueAt != 0 {
		fields["due_at"] = s.field(input.DueAt, clock)
	}

	op := &models.Operation{
		Type:         models.OpCreate,
		ResourceType: models.ResourceTask,
		ResourceID:   uuid.New().String(),
		Fields:       fields,
		Clock:        clock,
		Timestamp:    clock.Timestamp,
	}

	rec := crdt.Apply(nil, op)
	if err := s.commit(ctx, rec, op); err != nil {
		return nil, err
	}

	return rec, nil
}

// Update изменяет поля существующей задачи.
func (s *Service) Update(ctx context.Context, resourceID string, changes map[string]any) (*models.Record, error) {
	if len(changes) == 0 {
		return nil, fmt.Errorf("at least one field change is required")
	}
	for name, value := range changes {
		if _, ok := allowedFields[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		if name == "status" {
			if err := validateStatus(value); err != nil {
				return nil, err
			}
		}
	}

	rec, err := s.records.GetRecord(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if rec.Deleted {
		return nil, fmt.Errorf("%w: %s", ErrTaskDeleted, resourceID)
	}

	clock := s.clock.Tick()

	fields := make(map[string]models.FieldValue, len(changes))
	for name, value := range changes {
		fields[name] = s.field(value, clock)
	}

	op := &models.Operation{
		Type:         models.OpUpdate,
		ResourceType: models.ResourceTask,
		ResourceID:   resourceID,
		Fields:       fields,
		Clock:        clock,
		Timestamp:    clock.Timestamp,
	}

	rec = crdt.Apply(rec, op)
	if err := s.commit(ctx, rec, op); err != nil {
		return nil, err
	}

	return rec, nil
}

// Complete переводит задачу в статус COMPLETED.
func (s *Service) Complete(ctx context.Context, resourceID string) (*models.Record, error) {
	return s.Update(ctx, resourceID, map[string]any{"status": models.TaskStatusCompleted})
}

// Start переводит задачу в статус IN_PROGRESS.
func (s *Service) Start(ctx context.Context, resourceID string) (*models.Record, error) {
	return s.Update(ctx, resourceID, map[string]any{"status": models.TaskStatusInProgress})
}

// Delete помечает задачу tombstone. Удаление терминально:
// последующие обновления с любых узлов не воскресят задачу.
func (s *Service) Delete(ctx context.Context, resourceID string) error {
	rec, err := s.records.GetRecord(ctx, resourceID)
	if err != nil {
		return err
	}
	if rec.Deleted {
		return nil
	}

	clock := s.clock.Tick()

	op := &models.Operation{
		Type:         models.OpDelete,
		ResourceType: models.ResourceTask,
		ResourceID:   resourceID,
		Clock:        clock,
		Timestamp:    clock.Timestamp,
	}

	rec = crdt.Apply(rec, op)
	return s.commit(ctx, rec, op)
}

// Get возвращает задачу по идентификатору, включая tombstone.
func (s *Service) Get(ctx context.Context, resourceID string) (*models.Record, error) {
	return s.records.GetRecord(ctx, resourceID)
}

// List возвращает задачи, отсортированные по времени создания.
func (s *Service) List(ctx context.Context, includeDeleted bool) ([]*models.Record, error) {
	var (
		records []*models.Record
		err     error
	)
	if includeDeleted {
		records, err = s.records.ListRecords(ctx)
	} else {
		records, err = s.records.ListActiveRecords(ctx)
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt != records[j].CreatedAt {
			return records[i].CreatedAt < records[j].CreatedAt
		}
		return records[i].ResourceID < records[j].ResourceID
	})

	return records, nil
}

// commit атомарная точка фиксации локального изменения: запись в кэш,
// операция в журнал доставки, часы в метаданные.
func (s *Service) commit(ctx context.Context, rec *models.Record, op *models.Operation) error {
	if err := s.records.SaveRecord(ctx, rec); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	if err := s.oplog.AppendPending(ctx, op); err != nil {
		return fmt.Errorf("failed to append operation: %w", err)
	}
	if err := s.meta.SaveClock(ctx, s.clock.Current()); err != nil {
		return fmt.Errorf("failed to save clock: %w", err)
	}
	return nil
}

func (s *Service) field(value any, clock models.VectorClock) models.FieldValue {
	return models.FieldValue{
		Value:     value,
		NodeID:    clock.NodeID,
		Timestamp: clock.Timestamp,
	}
}

func validateStatus(value any) error {
	status, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %v", ErrInvalidStatus, value)
	}
	switch status {
	case models.TaskStatusPending, models.TaskStatusInProgress, models.TaskStatusCompleted:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
}
