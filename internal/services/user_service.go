package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type UserService interface {
	GetProfile(userID string) (*models.User, error)
	GetPublicProfile(userID string) (*models.User, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error)

	SaveJob(userID, jobID string) error
	UnsaveJob(userID, jobID string) error
	GetSavedJobs(userID string) ([]models.Job, error)

	FollowCompany(userID, companyID string) error
	UnfollowCompany(userID, companyID string) error
	GetFollowedCompanies(userID string) ([]models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
}

func NewUserService(userRepo repositories.UserRepository, jobRepo repositories.JobRepository) UserService {
	return &userService{userRepo: userRepo, jobRepo: jobRepo}
}

func (s *userService) GetProfile(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// GetPublicProfile is the unauthenticated view: blocked accounts read as
// missing and contact details are stripped.
func (s *userService) GetPublicProfile(userID string) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserNotFound
	}

	public := *user
	public.Email = ""
	public.Phone = ""
	return &public, nil
}

func (s *userService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.DateOfBirth != nil {
		user.DateOfBirth = req.DateOfBirth
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}
	if req.CVUrl != nil {
		user.CVUrl = *req.CVUrl
	}

	if req.CompanyName != nil {
		user.CompanyName = *req.CompanyName
	}
	if req.CompanyLogo != nil {
		user.CompanyLogo = *req.CompanyLogo
	}
	if req.CompanyWebsite != nil {
		user.CompanyWebsite = *req.CompanyWebsite
	}
	if req.CompanySize != nil {
		user.CompanySize = *req.CompanySize
	}
	if req.CompanyType != nil {
		user.CompanyType = *req.CompanyType
	}
	if req.Industry != nil {
		user.Industry = *req.Industry
	}
	if req.CompanyDescription != nil {
		user.CompanyDescription = *req.CompanyDescription
	}
	if req.CompanyAddress != nil {
		user.CompanyAddress = *req.CompanyAddress
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Experience and education are replaced wholesale, matching the profile
	// form which always submits the full list.
	if req.Experience != nil {
		entries := make([]models.ExperienceEntry, 0, len(*req.Experience))
		for _, in := range *req.Experience {
			entries = append(entries, models.ExperienceEntry{
				UserID:      userID,
				Company:     in.Company,
				Position:    in.Position,
				StartDate:   in.StartDate,
				EndDate:     in.EndDate,
				IsCurrent:   in.IsCurrent,
				Description: in.Description,
			})
		}
		if err := s.userRepo.ReplaceExperience(userID, entries); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	if req.Education != nil {
		entries := make([]models.EducationEntry, 0, len(*req.Education))
		for _, in := range *req.Education {
			entries = append(entries, models.EducationEntry{
				UserID:      userID,
				School:      in.School,
				Degree:      in.Degree,
				Field:       in.Field,
				StartDate:   in.StartDate,
				EndDate:     in.EndDate,
				Description: in.Description,
			})
		}
		if err := s.userRepo.ReplaceEducation(userID, entries); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return s.GetProfile(userID)
}

func (s *userService) SaveJob(userID, jobID string) error {
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if err == repositories.ErrJobNotFound {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.SaveJob(userID, jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *userService) UnsaveJob(userID, jobID string) error {
	if err := s.userRepo.UnsaveJob(userID, jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *userService) GetSavedJobs(userID string) ([]models.Job, error) {
	ids, err := s.userRepo.FindSavedJobIDs(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(ids) == 0 {
		return []models.Job{}, nil
	}
	jobs, err := s.jobRepo.FindByIDs(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *userService) FollowCompany(userID, companyID string) error {
	company, err := s.userRepo.FindByID(companyID)
	if err != nil || company.Role != models.UserRoleEmployer {
		return apperrors.ErrCompanyNotFound
	}
	if err := s.userRepo.FollowCompany(userID, companyID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *userService) UnfollowCompany(userID, companyID string) error {
	if err := s.userRepo.UnfollowCompany(userID, companyID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *userService) GetFollowedCompanies(userID string) ([]models.User, error) {
	ids, err := s.userRepo.FindFollowedCompanyIDs(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	companies := make([]models.User, 0, len(ids))
	for _, id := range ids {
		company, err := s.userRepo.FindByID(id)
		if err != nil {
			continue
		}
		companies = append(companies, *company)
	}
	return companies, nil
}
