package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=mocksheet -source=service.go

import (
	"context"
	"strings"

	"github.com/maxmeneghini/D20CharSheet/internal/domain/character"
	"github.com/maxmeneghini/D20CharSheet/internal/domain/rulebook"
	apperr "github.com/maxmeneghini/D20CharSheet/internal/errors"
	"github.com/maxmeneghini/D20CharSheet/internal/export"
	"github.com/maxmeneghini/D20CharSheet/internal/repositories/sheets"
	"github.com/maxmeneghini/D20CharSheet/internal/uuid"
)

// Repository is an alias for the sheet repository interface
type Repository = sheets.Repository

// Service defines the sheet service interface
type Service interface {
	// CreateSheet creates a new sheet with default values
	CreateSheet(ctx context.Context, input *CreateSheetInput) (*character.Character, error)

	// GetSheet retrieves a sheet by ID
	GetSheet(ctx context.Context, sheetID string) (*character.Character, error)

	// ListSheets lists all sheets for an owner
	ListSheets(ctx context.Context, ownerID string) ([]*character.Character, error)

	// UpdateSheet validates and stores an edited sheet
	UpdateSheet(ctx context.Context, input *UpdateSheetInput) (*character.Character, error)

	// AddTag adds a value to one of the sheet's tag lists
	AddTag(ctx context.Context, input *TagInput) (*character.Character, error)

	// RemoveTag removes a value from one of the sheet's tag lists
	RemoveTag(ctx context.Context, input *TagInput) (*character.Character, error)

	// UpdateSkills replaces the sheet's skill table
	UpdateSkills(ctx context.Context, input *UpdateSkillsInput) (*character.Character, error)

	// ApplyEvent applies a heal or damage event to the sheet's HP pool
	ApplyEvent(ctx context.Context, input *ApplyEventInput) (*character.Character, error)

	// GetDerived computes the derived statistics for a sheet
	GetDerived(ctx context.Context, sheetID string) (*character.DerivedStats, error)

	// ExportSheet renders a sheet as a downloadable JSON document
	ExportSheet(ctx context.Context, sheetID string) (*ExportSheetOutput, error)

	// DeleteSheet removes a sheet
	DeleteSheet(ctx context.Context, sheetID string) error
}

// CreateSheetInput contains data for creating a sheet
type CreateSheetInput struct {
	OwnerID string
	Name    string // Optional
}

// UpdateSheetInput carries the edited sheet record
type UpdateSheetInput struct {
	Sheet *character.Character
}

// TagInput identifies one entry in one of the sheet's tag lists
type TagInput struct {
	SheetID string
	List    character.TagList
	Value   string
}

// UpdateSkillsInput replaces the full skill table
type UpdateSkillsInput struct {
	SheetID string
	Skills  []character.Skill
}

// ApplyEventInput applies a combat event to the sheet
type ApplyEventInput struct {
	SheetID string
	Event   character.Event
}

// ExportSheetOutput holds the rendered export document
type ExportSheetOutput struct {
	Filename string
	Data     []byte
}

// service implements the Service interface
type service struct {
	repository    Repository
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository     // Required
	UUIDGenerator uuid.Generator // Optional, will use default if nil
}

// NewService creates a new sheet service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// CreateSheet creates a new sheet with default values
func (s *service) CreateSheet(ctx context.Context, input *CreateSheetInput) (*character.Character, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.OwnerID) == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	sheet := character.NewCharacter()
	sheet.ID = s.uuidGenerator.New()
	sheet.OwnerID = input.OwnerID
	sheet.Name = input.Name
	sheet.Skills = rulebook.StarterSkills()

	if err := s.repository.Create(ctx, sheet); err != nil {
		return nil, apperr.Wrap(err, "failed to create sheet").
			WithMeta("sheet_id", sheet.ID).
			WithMeta("owner_id", input.OwnerID)
	}

	return sheet, nil
}

// GetSheet retrieves a sheet by ID
func (s *service) GetSheet(ctx context.Context, sheetID string) (*character.Character, error) {
	if strings.TrimSpace(sheetID) == "" {
		return nil, apperr.InvalidArgument("sheet ID is required")
	}

	sheet, err := s.repository.Get(ctx, sheetID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get sheet '%s'", sheetID).
			WithMeta("sheet_id", sheetID)
	}

	return sheet, nil
}

// ListSheets lists all sheets for an owner
func (s *service) ListSheets(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	list, err := s.repository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to list sheets for owner '%s'", ownerID).
			WithMeta("owner_id", ownerID)
	}

	return list, nil
}

// UpdateSheet validates and stores an edited sheet
func (s *service) UpdateSheet(ctx context.Context, input *UpdateSheetInput) (*character.Character, error) {
	if input == nil || input.Sheet == nil {
		return nil, apperr.InvalidArgument("sheet cannot be nil")
	}
	if strings.TrimSpace(input.Sheet.ID) == "" {
		return nil, apperr.InvalidArgument("sheet ID is required")
	}

	if err := validateSheet(input.Sheet); err != nil {
		return nil, err
	}

	existing, err := s.repository.Get(ctx, input.Sheet.ID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get sheet '%s'", input.Sheet.ID).
			WithMeta("sheet_id", input.Sheet.ID)
	}

	// Ownership never changes through an edit
	sheet := input.Sheet.Clone()
	sheet.OwnerID = existing.OwnerID

	if err := s.repository.Update(ctx, sheet); err != nil {
		return nil, apperr.Wrapf(err, "failed to update sheet '%s'", sheet.ID).
			WithMeta("sheet_id", sheet.ID)
	}

	return sheet, nil
}

// AddTag adds a value to one of the sheet's tag lists
func (s *service) AddTag(ctx context.Context, input *TagInput) (*character.Character, error) {
	return s.mutateTags(ctx, input, (*character.Character).AddTag)
}

// RemoveTag removes a value from one of the sheet's tag lists
func (s *service) RemoveTag(ctx context.Context, input *TagInput) (*character.Character, error) {
	return s.mutateTags(ctx, input, (*character.Character).RemoveTag)
}

func (s *service) mutateTags(ctx context.Context, input *TagInput, op func(*character.Character, character.TagList, string) bool) (*character.Character, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.SheetID) == "" {
		return nil, apperr.InvalidArgument("sheet ID is required")
	}
	if strings.TrimSpace(input.Value) == "" {
		return nil, apperr.InvalidArgument("tag value is required")
	}

	sheet, err := s.repository.Get(ctx, input.SheetID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get sheet '%s'", input.SheetID).
			WithMeta("sheet_id", input.SheetID)
	}

	if !op(sheet, input.List, input.Value) {
		return nil, apperr.InvalidArgumentf("unknown tag list '%s'", input.List).
			WithMeta("list", string(input.List))
	}

	if err := s.repository.Update(ctx, sheet); err != nil {
		return nil, apperr.Wrapf(err, "failed to update sheet '%s'", sheet.ID).
			WithMeta("sheet_id", sheet.ID)
	}

	return sheet, nil
}

// UpdateSkills replaces the sheet's skill table
func (s *service) UpdateSkills(ctx context.Context, input *UpdateSkillsInput) (*character.Character, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.SheetID) == "" {
		return nil, apperr.InvalidArgument("sheet ID is required")
	}
	if err := validateSkills(input.Skills); err != nil {
		return nil, err
	}

	sheet, err := s.repository.Get(ctx, input.SheetID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get sheet '%s'", input.SheetID).
			WithMeta("sheet_id", input.SheetID)
	}

	sheet.Skills = append([]character.Skill(nil), input.Skills...)

	if err := s.repository.Update(ctx, sheet); err != nil {
		return nil, apperr.Wrapf(err, "failed to update sheet '%s'", sheet.ID).
			WithMeta("sheet_id", sheet.ID)
	}

	return sheet, nil
}

// ApplyEvent applies a heal or damage event to the sheet's HP pool
func (s *service) ApplyEvent(ctx context.Context, input *ApplyEventInput) (*character.Character, error) {
	if input == nil || input.Event == nil {
		return nil, apperr.InvalidArgument("event cannot be nil")
	}
	if strings.TrimSpace(input.SheetID) == "" {
		return nil, apperr.InvalidArgument("sheet ID is required")
	}

	sheet, err := s.repository.Get(ctx, input.SheetID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get sheet '%s'", input.SheetID).
			WithMeta("sheet_id", input.SheetID)
	}

	sheet.Apply(input.Event)

	if err := s.repository.Update(ctx, sheet); err != nil {
		return nil, apperr.Wrapf(err, "failed to update sheet '%s'", sheet.ID).
			WithMeta("sheet_id", sheet.ID)
	}

	return sheet, nil
}

// GetDerived computes the derived statistics for a sheet
func (s *service) GetDerived(ctx context.Context, sheetID string) (*character.DerivedStats, error) {
	sheet, err := s.GetSheet(ctx, sheetID)
	if err != nil {
		return nil, err
	}

	derived := character.Derive(sheet)
	return &derived, nil
}

// ExportSheet renders a sheet as a downloadable JSON document
func (s *service) ExportSheet(ctx context.Context, sheetID string) (*ExportSheetOutput, error) {
	sheet, err := s.GetSheet(ctx, sheetID)
	if err != nil {
		return nil, err
	}

	doc := export.FromCharacter(sheet)
	data, err := doc.Marshal()
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to export sheet '%s'", sheetID).
			WithMeta("sheet_id", sheetID)
	}

	return &ExportSheetOutput{
		Filename: export.Filename(sheet.Name),
		Data:     data,
	}, nil
}

// DeleteSheet removes a sheet
func (s *service) DeleteSheet(ctx context.Context, sheetID string) error {
	if strings.TrimSpace(sheetID) == "" {
		return apperr.InvalidArgument("sheet ID is required")
	}

	if err := s.repository.Delete(ctx, sheetID); err != nil {
		return apperr.Wrapf(err, "failed to delete sheet '%s'", sheetID).
			WithMeta("sheet_id", sheetID)
	}

	return nil
}
