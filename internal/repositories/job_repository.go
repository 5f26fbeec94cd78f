package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	Update(job *models.Job) error
	UpdateStatus(jobID string, status models.JobStatus) error
	Delete(jobID string) error
	FindWithFilter(criteria JobFilter) ([]models.Job, int64, error)
	FindByCompany(companyID string, activeOnly bool) ([]models.Job, error)
	FindByIDs(ids []string) ([]models.Job, error)

	// IncrementViews is an atomic SQL increment: concurrent reads never lose
	// an update.
	IncrementViews(jobID string) error
}

type JobFilter struct {
	Search          string
	Category        string
	Location        string
	SalaryFrom      *int
	SalaryTo        *int
	JobType         string
	ExperienceLevel string
	Status          models.JobStatus // empty means all statuses (admin listing)
	SortBy          string
	SortOrder       string
	Page            int
	PageSize        int
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Company").First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) UpdateStatus(jobID string, status models.JobStatus) error {
	res := r.db.Model(&models.Job{}).Where("id = ?", jobID).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Delete hard-removes the job. Applications referencing it are left in place
// on purpose: deletion cascades nothing.
func (r *JobRepositoryImpl) Delete(jobID string) error {
	res := r.db.Delete(&models.Job{}, "id = ?", jobID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) FindWithFilter(criteria JobFilter) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Search != "" {
		pattern := "%" + criteria.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if criteria.Category != "" {
		query = query.Where("category = ?", criteria.Category)
	}
	if criteria.Location != "" {
		query = query.Where("location_city ILIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.SalaryFrom != nil {
		query = query.Where("salary_from >= ?", *criteria.SalaryFrom)
	}
	if criteria.SalaryTo != nil {
		query = query.Where("salary_to <= ?", *criteria.SalaryTo)
	}
	if criteria.JobType != "" {
		query = query.Where("job_type = ?", criteria.JobType)
	}
	if criteria.ExperienceLevel != "" {
		query = query.Where("experience_level = ?", criteria.ExperienceLevel)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := criteria.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	order := "DESC"
	if criteria.SortOrder == "asc" {
		order = "ASC"
	}

	var jobs []models.Job
	err := query.
		Preload("Company").
		Order(sortBy + " " + order).
		Offset((criteria.Page - 1) * criteria.PageSize).
		Limit(criteria.PageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepositoryImpl) FindByCompany(companyID string, activeOnly bool) ([]models.Job, error) {
	query := r.db.Where("company_id = ?", companyID)
	if activeOnly {
		query = query.Where("status = ?", models.JobStatusActive)
	}

	var jobs []models.Job
	err := query.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByIDs(ids []string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Preload("Company").Where("id IN ?", ids).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) IncrementViews(jobID string) error {
	return r.db.Model(&models.Job{}).
		Where("id = ?", jobID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
