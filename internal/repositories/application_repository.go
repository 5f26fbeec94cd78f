package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and candidate")
)

type ApplicationRepository interface {
	// Create inserts the ledger row with its initial status event and
	// increments the job's application counter atomically, all in one
	// transaction. A unique-index violation surfaces as
	// ErrDuplicateApplication so a losing racer gets a Conflict, not a 500.
	Create(application *models.Application) error

	// Delete removes the row (history cascades) and decrements the counter,
	// floored at zero in SQL. A missing job is tolerated: the decrement is
	// skipped and the delete proceeds.
	Delete(application *models.Application) error

	// UpdateStatus writes the status and overwrites the notes field when note
	// is non-empty, in one transaction. A history event is appended only when
	// the status actually changes; a same-value write leaves history alone.
	UpdateStatus(applicationID string, status models.ApplicationStatus, note string) error

	FindByID(id string) (*models.Application, error)
	FindByJobAndCandidate(jobID, candidateID string) (*models.Application, error)
	FindByCandidate(candidateID string) ([]models.Application, error)
	FindByCompany(companyID string) ([]models.Application, error)
	FindByJob(jobID string) ([]models.Application, error)
	CountByJob(jobID string) (int64, error)

	// HasHiredApplication backs the review eligibility gate.
	HasHiredApplication(candidateID, companyID string) (bool, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(application).Error; err != nil {
			return err
		}

		event := models.ApplicationStatusEvent{
			ApplicationID: application.ID,
			Status:        application.Status,
			ChangedAt:     time.Now(),
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		return tx.Model(&models.Job{}).
			Where("id = ?", application.JobID).
			UpdateColumn("application_count", gorm.Expr("application_count + 1")).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateApplication
	}
	return err
}

func (r *ApplicationRepositoryImpl) Delete(application *models.Application) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("application_id = ?", application.ID).
			Delete(&models.ApplicationStatusEvent{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Application{}, "id = ?", application.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrApplicationNotFound
		}

		// The guard keeps the counter from going negative; a missing job
		// simply matches zero rows.
		return tx.Model(&models.Job{}).
			Where("id = ? AND application_count > 0", application.JobID).
			UpdateColumn("application_count", gorm.Expr("application_count - 1")).Error
	})
}

func (r *ApplicationRepositoryImpl) UpdateStatus(applicationID string, status models.ApplicationStatus, note string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var current models.Application
		err := tx.Select("status").First(&current, "id = ?", applicationID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrApplicationNotFound
		}
		if err != nil {
			return err
		}

		updates := map[string]interface{}{"status": status}
		if note != "" {
			updates["notes"] = note
		}
		if err := tx.Model(&models.Application{}).
			Where("id = ?", applicationID).Updates(updates).Error; err != nil {
			return err
		}

		// No history entry without a status change.
		if current.Status == status {
			return nil
		}

		event := models.ApplicationStatusEvent{
			ApplicationID: applicationID,
			Status:        status,
			Note:          note,
			ChangedAt:     time.Now(),
		}
		return tx.Create(&event).Error
	})
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.
		Preload("Job").
		Preload("Candidate").
		Preload("Company").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at ASC")
		}).
		First(&application, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByJobAndCandidate(jobID, candidateID string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "job_id = ? AND candidate_id = ?", jobID, candidateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByCandidate(candidateID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Preload("Job").
		Preload("Company").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByCompany(companyID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Preload("Job").
		Preload("Candidate").
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByJob(jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Preload("Candidate").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at ASC")
		}).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) CountByJob(jobID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) HasHiredApplication(candidateID, companyID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("candidate_id = ? AND company_id = ? AND status = ?",
			candidateID, companyID, models.ApplicationStatusHired).
		Count(&count).Error
	return count > 0, err
}
