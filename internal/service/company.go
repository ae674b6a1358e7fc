package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftnet/backend/internal/models"
	"github.com/craftnet/backend/internal/types"
)

// maxCompaniesPerOwner caps how many companies a single account may create.
const maxCompaniesPerOwner = 3

// CompanyService handles company CRUD and its creation invariants.
type CompanyService struct {
	db *gorm.DB
}

// Ensure CompanyService implements ICompanyService
var _ ICompanyService = (*CompanyService)(nil)

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{db: db}
}

// List returns all companies ordered by creation time, annotated with
// their distinct employee count. ordering may be employee_count or
// -employee_count.
func (s *CompanyService) List(ctx context.Context, ordering string) ([]models.Company, error) {
	var companies []models.Company
	if err := s.db.WithContext(ctx).Preload("Owner").
		Order("created_at ASC").Find(&companies).Error; err != nil {
		return nil, err
	}

	for i := range companies {
		if err := s.loadEmployeeCount(ctx, &companies[i]); err != nil {
			return nil, err
		}
	}

	if field, descending := parseOrdering(ordering); field == "employee_count" {
		sort.SliceStable(companies, func(i, j int) bool {
			if descending {
				return companies[i].EmployeeCount > companies[j].EmployeeCount
			}
			return companies[i].EmployeeCount < companies[j].EmployeeCount
		})
	}

	return companies, nil
}

// Get retrieves one company with its employee count.
func (s *CompanyService) Get(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := s.db.WithContext(ctx).Preload("Owner").
		First(&company, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}
	if err := s.loadEmployeeCount(ctx, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// Create validates the owner's company count and the global (name,
// location) pair before inserting. The limit check runs first; both must
// pass. The unique index closes the window between the duplicate pre-check
// and the insert.
func (s *CompanyService) Create(ctx context.Context, ownerID uuid.UUID, req *types.CreateCompanyRequest) (*models.Company, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Company{}).
		Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count >= maxCompaniesPerOwner {
		return nil, ErrCompanyLimit
	}

	name := strings.TrimSpace(req.Name)
	location := strings.TrimSpace(req.Location)

	var existing models.Company
	err := s.db.WithContext(ctx).
		Where("name = ? AND location = ?", name, location).
		First(&existing).Error
	if err == nil {
		return nil, &CompanyExistsError{Name: name, Location: location}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	company := models.Company{
		OwnerID:  ownerID,
		Name:     name,
		Location: location,
	}
	if err := s.db.WithContext(ctx).Create(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &CompanyExistsError{Name: name, Location: location}
		}
		return nil, err
	}

	return s.Get(ctx, company.ID)
}

// Update merges the provided fields; only the owner may call it.
func (s *CompanyService) Update(ctx context.Context, identity uuid.UUID, id uuid.UUID, req *types.UpdateCompanyRequest) (*models.Company, error) {
	var company models.Company
	if err := s.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}

	if err := Authorize(&identity, company.OwnerID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		company.Location = strings.TrimSpace(*req.Location)
	}

	if err := s.db.WithContext(ctx).Save(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &CompanyExistsError{Name: company.Name, Location: company.Location}
		}
		return nil, err
	}

	return s.Get(ctx, company.ID)
}

// Delete removes a company; only the owner may call it. Profiles that
// listed the company as their employer have the reference cleared in the
// same transaction so they never point at a missing row.
func (s *CompanyService) Delete(ctx context.Context, identity uuid.UUID, id uuid.UUID) error {
	var company models.Company
	if err := s.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		return asNotFound(err)
	}

	if err := Authorize(&identity, company.OwnerID); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Profile{}).
			Where("employer_id = ?", company.ID).
			Update("employer_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&company).Error
	})
}

func (s *CompanyService) loadEmployeeCount(ctx context.Context, company *models.Company) error {
	return s.db.WithContext(ctx).Model(&models.Profile{}).
		Where("employer_id = ?", company.ID).
		Count(&company.EmployeeCount).Error
}
