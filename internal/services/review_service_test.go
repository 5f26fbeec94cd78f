package services

import (
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewFixture struct {
	users        *fakeUserRepo
	jobs         *fakeJobRepo
	applications *fakeApplicationRepo
	reviews      *fakeReviewRepo
	service      ReviewService

	employer  *models.User
	candidate *models.User
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()

	users := newFakeUserRepo()
	jobs := newFakeJobRepo()
	applications := newFakeApplicationRepo(jobs)
	reviews := newFakeReviewRepo()

	employer := users.add(&models.User{
		Email: "employer@corp.test", Role: models.UserRoleEmployer,
		IsActive: true, CompanyName: "Corp",
	})
	candidate := users.add(&models.User{
		Email: "candidate@mail.test", Role: models.UserRoleCandidate,
		IsActive: true, FullName: "Jane Dao",
	})

	return &reviewFixture{
		users:        users,
		jobs:         jobs,
		applications: applications,
		reviews:      reviews,
		service:      NewReviewService(reviews, applications, users),
		employer:     employer,
		candidate:    candidate,
	}
}

func (f *reviewFixture) hire(t *testing.T) {
	t.Helper()
	job := f.jobs.add(&models.Job{CompanyID: f.employer.ID, Title: "Role", Status: models.JobStatusActive})
	app := &models.Application{
		JobID: job.ID, CandidateID: f.candidate.ID, CompanyID: f.employer.ID,
		Status: models.ApplicationStatusPending,
	}
	require.NoError(t, f.applications.Create(app))
	require.NoError(t, f.applications.UpdateStatus(app.ID, models.ApplicationStatusHired, ""))
}

func validReview(companyID string) *dto.CreateReviewRequest {
	return &dto.CreateReviewRequest{
		CompanyID: companyID,
		Rating:    4,
		Title:     "Solid place to work",
		Comment:   "Good team, fair pay.",
	}
}

func TestCreateReviewRequiresHire(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.service.Create(f.candidate.ID, validReview(f.employer.ID))
	assert.ErrorIs(t, err, apperrors.ErrNotHired)
}

func TestCreateReviewAfterHire(t *testing.T) {
	f := newReviewFixture(t)
	f.hire(t)

	review, err := f.service.Create(f.candidate.ID, validReview(f.employer.ID))
	require.NoError(t, err)
	assert.True(t, review.IsVerified)
	assert.Equal(t, f.candidate.ID, review.CandidateID)
}

func TestCreateReviewTwiceConflicts(t *testing.T) {
	f := newReviewFixture(t)
	f.hire(t)

	_, err := f.service.Create(f.candidate.ID, validReview(f.employer.ID))
	require.NoError(t, err)

	_, err = f.service.Create(f.candidate.ID, validReview(f.employer.ID))
	assert.ErrorIs(t, err, apperrors.ErrAlreadyReviewed)
}

func TestReviewEligibilityLifecycle(t *testing.T) {
	f := newReviewFixture(t)

	eligibility, err := f.service.Eligibility(f.candidate.ID, f.employer.ID)
	require.NoError(t, err)
	assert.False(t, eligibility.CanReview)

	f.hire(t)
	eligibility, err = f.service.Eligibility(f.candidate.ID, f.employer.ID)
	require.NoError(t, err)
	assert.True(t, eligibility.CanReview)
	assert.False(t, eligibility.AlreadyReviewed)

	_, err = f.service.Create(f.candidate.ID, validReview(f.employer.ID))
	require.NoError(t, err)

	eligibility, err = f.service.Eligibility(f.candidate.ID, f.employer.ID)
	require.NoError(t, err)
	assert.False(t, eligibility.CanReview)
	assert.True(t, eligibility.AlreadyReviewed)
}

func TestCreateReviewUnknownCompany(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.service.Create(f.candidate.ID, validReview("22222222-2222-4222-8222-222222222222"))
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}

func TestCreateReviewCandidateTargetRejected(t *testing.T) {
	f := newReviewFixture(t)

	// Reviews can only target employer accounts.
	_, err := f.service.Create(f.candidate.ID, validReview(f.candidate.ID))
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}

func TestAnonymousReviewHidesAuthor(t *testing.T) {
	f := newReviewFixture(t)
	f.hire(t)

	req := validReview(f.employer.ID)
	req.IsAnonymous = true
	_, err := f.service.Create(f.candidate.ID, req)
	require.NoError(t, err)

	resp, err := f.service.GetCompanyReviews(f.employer.ID)
	require.NoError(t, err)
	require.Len(t, resp.Reviews, 1)

	assert.Empty(t, resp.Reviews[0].CandidateID)
	assert.Nil(t, resp.Reviews[0].Candidate)

	// The stored row keeps its author.
	stored, _ := f.reviews.FindByCandidate(f.candidate.ID)
	require.Len(t, stored, 1)
	assert.Equal(t, f.candidate.ID, stored[0].CandidateID)
}

func TestCompanyReviewStats(t *testing.T) {
	f := newReviewFixture(t)
	f.hire(t)

	req := validReview(f.employer.ID)
	req.Rating = 5
	_, err := f.service.Create(f.candidate.ID, req)
	require.NoError(t, err)

	resp, err := f.service.GetCompanyReviews(f.employer.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.Stats.TotalReviews)
	assert.InDelta(t, 5.0, resp.Stats.AvgRating, 0.001)
}
