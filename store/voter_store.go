package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/sudhev0011/VoterMngmtServer/models"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// Sortable columns, keyed by the JSON field names clients send.
var voterSortColumns = map[string]string{
	"serialNo":     "serial_no",
	"name":         "name",
	"guardianName": "guardian_name",
	"houseNo":      "house_no",
	"houseName":    "house_name",
	"genderAge":    "gender_age",
	"idCardNo":     "id_card_no",
}

type ListParams struct {
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
	Search    string
}

type Pagination struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalCount      int64 `json:"totalCount"`
	PageSize        int   `json:"pageSize"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

type VoterStore struct {
	db *gorm.DB
}

func NewVoterStore(db *gorm.DB) *VoterStore {
	return &VoterStore{db: db}
}

// List returns one page of voters. Unknown sort fields fall back to serialNo,
// the page size is clamped to maxPageSize, and a non-empty search term matches
// case-insensitively against the text fields, plus serialNo exactly when the
// term is an integer.
func (s *VoterStore) List(p ListParams) ([]models.Voter, Pagination, error) {
	column, ok := voterSortColumns[p.SortBy]
	if !ok {
		column = "serial_no"
	}
	order := "ASC"
	if p.SortOrder == "desc" {
		order = "DESC"
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	size := p.Limit
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	query := s.db.Model(&models.Voter{})
	if term := strings.TrimSpace(p.Search); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		cond := s.db.Where("LOWER(name) LIKE ?", pattern).
			Or("LOWER(id_card_no) LIKE ?", pattern).
			Or("LOWER(guardian_name) LIKE ?", pattern).
			Or("LOWER(house_name) LIKE ?", pattern).
			Or("LOWER(house_no) LIKE ?", pattern)
		if n, err := strconv.Atoi(term); err == nil {
			cond = cond.Or("serial_no = ?", n)
		}
		query = query.Where(cond)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, Pagination{}, fmt.Errorf("count voters: %w", err)
	}

	voters := []models.Voter{}
	err := query.
		Order(column + " " + order).
		Offset((page - 1) * size).
		Limit(size).
		Find(&voters).Error
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("list voters: %w", err)
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return voters, Pagination{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalCount:      total,
		PageSize:        size,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}, nil
}

func (s *VoterStore) FindByID(id uint) (*models.Voter, error) {
	var voter models.Voter
	if err := s.db.First(&voter, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find voter: %w", err)
	}
	return &voter, nil
}

func (s *VoterStore) Create(voter *models.Voter) error {
	if err := s.db.Create(voter).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return fmt.Errorf("create voter: %w", err)
	}
	return nil
}

// Update applies the given column values to an existing voter and returns the
// refreshed record. An empty fields map leaves the record untouched.
func (s *VoterStore) Update(id uint, fields map[string]interface{}) (*models.Voter, error) {
	voter, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := s.db.Model(voter).Updates(fields).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrConflict
			}
			return nil, fmt.Errorf("update voter: %w", err)
		}
	}
	return voter, nil
}

// Delete removes the voter and, in the same transaction, every todo entry
// that references it. Orphaned checklist entries would otherwise outlive the
// roll.
func (s *VoterStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// Todos hold a foreign key on the voter, so they go first; the
		// transaction rolls them back when the voter turns out not to exist.
		if err := tx.Where("voter_id = ?", id).Delete(&models.Todo{}).Error; err != nil {
			return fmt.Errorf("delete dependent todos: %w", err)
		}
		res := tx.Delete(&models.Voter{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete voter: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
