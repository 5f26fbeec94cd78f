package services

import (
	"errors"
	"sort"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repositories backing the service tests.

var errTestBoom = errors.New("boom")

// fakeMailer records outgoing mail.
type fakeMailer struct {
	sent []string
	fail bool
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	if m.fail {
		return errTestBoom
	}
	m.sent = append(m.sent, to)
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User

	saved    map[string]map[string]bool // userID -> jobID
	followed map[string]map[string]bool // userID -> companyID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    map[string]*models.User{},
		saved:    map[string]map[string]bool{},
		followed: map[string]map[string]bool{},
	}
}

func (r *fakeUserRepo) add(u *models.User) *models.User {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if _, err := r.FindByEmail(user.Email); err == nil {
		return repositories.ErrUserAlreadyExists
	}
	r.add(user)
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdateActive(userID string, active bool) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.IsActive = active
	return nil
}

func (r *fakeUserRepo) FindWithFilter(criteria repositories.UserFilter) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range r.users {
		if criteria.Role != "" && u.Role != criteria.Role {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) ReplaceExperience(userID string, entries []models.ExperienceEntry) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Experience = entries
	return nil
}

func (r *fakeUserRepo) ReplaceEducation(userID string, entries []models.EducationEntry) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Education = entries
	return nil
}

func (r *fakeUserRepo) IsJobSaved(userID, jobID string) (bool, error) {
	return r.saved[userID][jobID], nil
}

func (r *fakeUserRepo) SaveJob(userID, jobID string) error {
	if r.saved[userID] == nil {
		r.saved[userID] = map[string]bool{}
	}
	r.saved[userID][jobID] = true
	return nil
}

func (r *fakeUserRepo) UnsaveJob(userID, jobID string) error {
	delete(r.saved[userID], jobID)
	return nil
}

func (r *fakeUserRepo) FindSavedJobIDs(userID string) ([]string, error) {
	var ids []string
	for id := range r.saved[userID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *fakeUserRepo) IsCompanyFollowed(userID, companyID string) (bool, error) {
	return r.followed[userID][companyID], nil
}

func (r *fakeUserRepo) FollowCompany(userID, companyID string) error {
	if r.followed[userID] == nil {
		r.followed[userID] = map[string]bool{}
	}
	r.followed[userID][companyID] = true
	return nil
}

func (r *fakeUserRepo) UnfollowCompany(userID, companyID string) error {
	delete(r.followed[userID], companyID)
	return nil
}

func (r *fakeUserRepo) FindFollowedCompanyIDs(userID string) ([]string, error) {
	var ids []string
	for id := range r.followed[userID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *fakeUserRepo) FindCompanies(criteria repositories.CompanyFilter) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == models.UserRoleEmployer {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*models.Job{}}
}

func (r *fakeJobRepo) add(j *models.Job) *models.Job {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	r.jobs[j.ID] = j
	return j
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	r.add(job)
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	copied := *j
	return &copied, nil
}

func (r *fakeJobRepo) Update(job *models.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) UpdateStatus(jobID string, status models.JobStatus) error {
	j, ok := r.jobs[jobID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	j.Status = status
	return nil
}

func (r *fakeJobRepo) Delete(jobID string) error {
	if _, ok := r.jobs[jobID]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, jobID)
	return nil
}

func (r *fakeJobRepo) FindWithFilter(criteria repositories.JobFilter) ([]models.Job, int64, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if criteria.Status != "" && j.Status != criteria.Status {
			continue
		}
		out = append(out, *j)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *fakeJobRepo) FindByCompany(companyID string, activeOnly bool) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if j.CompanyID != companyID {
			continue
		}
		if activeOnly && j.Status != models.JobStatusActive {
			continue
		}
		out = append(out, *j)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeJobRepo) FindByIDs(ids []string) ([]models.Job, error) {
	var out []models.Job
	for _, id := range ids {
		if j, ok := r.jobs[id]; ok {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) IncrementViews(jobID string) error {
	j, ok := r.jobs[jobID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	j.Views++
	return nil
}

// fakeApplicationRepo mirrors the transactional behavior of the real one:
// Create writes the row, its initial status event and the job counter
// together, Delete reverses them, UpdateStatus appends an event only when
// the status changes.
type fakeApplicationRepo struct {
	jobs         *fakeJobRepo
	applications map[string]*models.Application
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{jobs: jobs, applications: map[string]*models.Application{}}
}

func (r *fakeApplicationRepo) Create(application *models.Application) error {
	for _, a := range r.applications {
		if a.JobID == application.JobID && a.CandidateID == application.CandidateID {
			return repositories.ErrDuplicateApplication
		}
	}

	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	application.AppliedAt = time.Now()
	application.StatusHistory = []models.ApplicationStatusEvent{{
		ApplicationID: application.ID,
		Status:        application.Status,
		ChangedAt:     time.Now(),
	}}
	copied := *application
	r.applications[application.ID] = &copied

	if j, ok := r.jobs.jobs[application.JobID]; ok {
		j.ApplicationCount++
	}
	return nil
}

func (r *fakeApplicationRepo) Delete(application *models.Application) error {
	if _, ok := r.applications[application.ID]; !ok {
		return repositories.ErrApplicationNotFound
	}
	delete(r.applications, application.ID)

	if j, ok := r.jobs.jobs[application.JobID]; ok && j.ApplicationCount > 0 {
		j.ApplicationCount--
	}
	return nil
}

func (r *fakeApplicationRepo) UpdateStatus(applicationID string, status models.ApplicationStatus, note string) error {
	a, ok := r.applications[applicationID]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	statusChanged := a.Status != status
	a.Status = status
	if note != "" {
		a.Notes = note
	}
	if statusChanged {
		a.StatusHistory = append(a.StatusHistory, models.ApplicationStatusEvent{
			ApplicationID: applicationID,
			Status:        status,
			Note:          note,
			ChangedAt:     time.Now(),
		})
	}
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	a, ok := r.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeApplicationRepo) FindByJobAndCandidate(jobID, candidateID string) (*models.Application, error) {
	for _, a := range r.applications {
		if a.JobID == jobID && a.CandidateID == candidateID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) FindByCandidate(candidateID string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.applications {
		if a.CandidateID == candidateID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByCompany(companyID string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.applications {
		if a.CompanyID == companyID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByJob(jobID string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.applications {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) CountByJob(jobID string) (int64, error) {
	apps, _ := r.FindByJob(jobID)
	return int64(len(apps)), nil
}

func (r *fakeApplicationRepo) HasHiredApplication(candidateID, companyID string) (bool, error) {
	for _, a := range r.applications {
		if a.CandidateID == candidateID && a.CompanyID == companyID && a.Status == models.ApplicationStatusHired {
			return true, nil
		}
	}
	return false, nil
}

type fakeReviewRepo struct {
	reviews map[string]*models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[string]*models.Review{}}
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	for _, existing := range r.reviews {
		if existing.CompanyID == review.CompanyID && existing.CandidateID == review.CandidateID {
			return repositories.ErrDuplicateReview
		}
	}
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	copied := *review
	r.reviews[review.ID] = &copied
	return nil
}

func (r *fakeReviewRepo) FindByCompany(companyID string, limit int) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range r.reviews {
		if rev.CompanyID == companyID {
			out = append(out, *rev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeReviewRepo) FindByCandidate(candidateID string) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range r.reviews {
		if rev.CandidateID == candidateID {
			out = append(out, *rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) ExistsForPair(companyID, candidateID string) (bool, error) {
	for _, rev := range r.reviews {
		if rev.CompanyID == companyID && rev.CandidateID == candidateID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReviewRepo) GetCompanyStats(companyID string) (*repositories.CompanyReviewStats, error) {
	stats := &repositories.CompanyReviewStats{}
	var sum int
	for _, rev := range r.reviews {
		if rev.CompanyID != companyID {
			continue
		}
		stats.TotalReviews++
		sum += rev.Rating
	}
	if stats.TotalReviews > 0 {
		stats.AvgRating = float64(sum) / float64(stats.TotalReviews)
	}
	return stats, nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
	failCreate    bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(n *models.Notification) error {
	if r.failCreate {
		return errTestBoom
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotificationRepo) FindByRecipient(recipientID string, limit int) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			out = append(out, *n)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeNotificationRepo) CountUnread(recipientID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(id, recipientID string) error {
	for _, n := range r.notifications {
		if n.ID == id && n.RecipientID == recipientID {
			n.IsRead = true
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) MarkAllRead(recipientID string) error {
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			n.IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) Delete(id, recipientID string) error {
	for i, n := range r.notifications {
		if n.ID == id && n.RecipientID == recipientID {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

type fakeAuditLogRepo struct {
	entries []*models.AuditLog
}

func newFakeAuditLogRepo() *fakeAuditLogRepo {
	return &fakeAuditLogRepo{}
}

func (r *fakeAuditLogRepo) Create(entry *models.AuditLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeAuditLogRepo) FindWithFilter(filter repositories.AuditLogFilter) ([]models.AuditLog, int64, error) {
	var out []models.AuditLog
	for _, e := range r.entries {
		if filter.Action != "" && e.Action != filter.Action {
			continue
		}
		if filter.AdminID != "" && e.AdminID != filter.AdminID {
			continue
		}
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}
