package repositories

import (
	"errors"
	"strings"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateActive(userID string, active bool) error
	FindWithFilter(criteria UserFilter) ([]models.User, int64, error)

	// Candidate profile collections
	ReplaceExperience(userID string, entries []models.ExperienceEntry) error
	ReplaceEducation(userID string, entries []models.EducationEntry) error

	// Saved jobs / followed companies (toggle semantics live in the service)
	IsJobSaved(userID, jobID string) (bool, error)
	SaveJob(userID, jobID string) error
	UnsaveJob(userID, jobID string) error
	FindSavedJobIDs(userID string) ([]string, error)
	IsCompanyFollowed(userID, companyID string) (bool, error)
	FollowCompany(userID, companyID string) error
	UnfollowCompany(userID, companyID string) error
	FindFollowedCompanyIDs(userID string) ([]string, error)

	// Company directory
	FindCompanies(criteria CompanyFilter) ([]models.User, int64, error)
}

type UserFilter struct {
	Role      models.UserRole
	Status    string // "active" | "blocked" | ""
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

type CompanyFilter struct {
	Search   string
	Industry string
	Size     string
	Page     int
	PageSize int
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Experience").Preload("Education").First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", strings.ToLower(email)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	user.Email = strings.ToLower(user.Email)
	err := r.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUserAlreadyExists
	}
	return err
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) UpdateActive(userID string, active bool) error {
	res := r.db.Model(&models.User{}).Where("id = ?", userID).Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindWithFilter(criteria UserFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	if criteria.Role != "" {
		query = query.Where("role = ?", criteria.Role)
	}
	switch criteria.Status {
	case "active":
		query = query.Where("is_active = ?", true)
	case "blocked":
		query = query.Where("is_active = ?", false)
	}
	if criteria.Search != "" {
		pattern := "%" + criteria.Search + "%"
		query = query.Where(
			"email ILIKE ? OR full_name ILIKE ? OR company_name ILIKE ?",
			pattern, pattern, pattern,
		)
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

	var users []models.User
	err := query.
		Order(sortBy + " " + order).
		Offset((criteria.Page - 1) * criteria.PageSize).
		Limit(criteria.PageSize).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepositoryImpl) ReplaceExperience(userID string, entries []models.ExperienceEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.ExperienceEntry{}).Error; err != nil {
			return err
		}
		for i := range entries {
			entries[i].UserID = userID
			entries[i].ID = ""
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

func (r *UserRepositoryImpl) ReplaceEducation(userID string, entries []models.EducationEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.EducationEntry{}).Error; err != nil {
			return err
		}
		for i := range entries {
			entries[i].UserID = userID
			entries[i].ID = ""
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

func (r *UserRepositoryImpl) IsJobSaved(userID, jobID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedJob{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepositoryImpl) SaveJob(userID, jobID string) error {
	err := r.db.Create(&models.SavedJob{UserID: userID, JobID: jobID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *UserRepositoryImpl) UnsaveJob(userID, jobID string) error {
	return r.db.Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&models.SavedJob{}).Error
}

func (r *UserRepositoryImpl) FindSavedJobIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.SavedJob{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("job_id", &ids).Error
	return ids, err
}

func (r *UserRepositoryImpl) IsCompanyFollowed(userID, companyID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.FollowedCompany{}).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepositoryImpl) FollowCompany(userID, companyID string) error {
	err := r.db.Create(&models.FollowedCompany{UserID: userID, CompanyID: companyID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *UserRepositoryImpl) UnfollowCompany(userID, companyID string) error {
	return r.db.Where("user_id = ? AND company_id = ?", userID, companyID).Delete(&models.FollowedCompany{}).Error
}

func (r *UserRepositoryImpl) FindFollowedCompanyIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.FollowedCompany{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("company_id", &ids).Error
	return ids, err
}

func (r *UserRepositoryImpl) FindCompanies(criteria CompanyFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{}).
		Where("role = ? AND is_active = ?", models.UserRoleEmployer, true)

	if criteria.Search != "" {
		pattern := "%" + criteria.Search + "%"
		query = query.Where("company_name ILIKE ? OR company_description ILIKE ?", pattern, pattern)
	}
	if criteria.Industry != "" {
		query = query.Where("industry = ?", criteria.Industry)
	}
	if criteria.Size != "" {
		query = query.Where("company_size = ?", criteria.Size)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var companies []models.User
	err := query.
		Order("created_at DESC").
		Offset((criteria.Page - 1) * criteria.PageSize).
		Limit(criteria.PageSize).
		Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}
