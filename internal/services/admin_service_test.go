package services

import (
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	users        *fakeUserRepo
	jobs         *fakeJobRepo
	applications *fakeApplicationRepo
	audits       *fakeAuditLogRepo
	service      AdminService

	admin     *models.User
	system    *models.User
	candidate *models.User
	employer  *models.User
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()

	users := newFakeUserRepo()
	jobs := newFakeJobRepo()
	applications := newFakeApplicationRepo(jobs)
	audits := newFakeAuditLogRepo()

	admin := users.add(&models.User{
		Email: "ops@board.test", Role: models.UserRoleAdmin, IsActive: true,
	})
	system := users.add(&models.User{
		Email: "admin@system.com", Role: models.UserRoleAdmin,
		IsActive: true, IsSystemAccount: true,
	})
	candidate := users.add(&models.User{
		Email: "jane@mail.test", Role: models.UserRoleCandidate, IsActive: true,
	})
	employer := users.add(&models.User{
		Email: "corp@corp.test", Role: models.UserRoleEmployer, IsActive: true,
	})

	return &adminFixture{
		users:        users,
		jobs:         jobs,
		applications: applications,
		audits:       audits,
		service:      NewAdminService(users, jobs, applications, audits),
		admin:        admin,
		system:       system,
		candidate:    candidate,
		employer:     employer,
	}
}

func (f *adminFixture) auditCtx() AuditContext {
	return AuditContext{AdminID: f.admin.ID, IPAddress: "10.0.0.1", UserAgent: "test"}
}

func TestToggleUserActive(t *testing.T) {
	f := newAdminFixture(t)

	user, err := f.service.ToggleUserActive(f.candidate.ID, f.auditCtx())
	require.NoError(t, err)
	assert.False(t, user.IsActive)

	require.Len(t, f.audits.entries, 1)
	entry := f.audits.entries[0]
	assert.Equal(t, models.AuditActionBlockUser, entry.Action)
	assert.Equal(t, f.admin.ID, entry.AdminID)
	assert.Equal(t, f.candidate.ID, entry.TargetID)
	assert.Equal(t, "10.0.0.1", entry.IPAddress)

	user, err = f.service.ToggleUserActive(f.candidate.ID, f.auditCtx())
	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.Equal(t, models.AuditActionUnblockUser, f.audits.entries[1].Action)
}

func TestToggleSystemAccountRefused(t *testing.T) {
	f := newAdminFixture(t)

	_, err := f.service.ToggleUserActive(f.system.ID, f.auditCtx())
	assert.ErrorIs(t, err, apperrors.ErrSystemAccount)
	assert.Empty(t, f.audits.entries)
}

func TestToggleAdminRefused(t *testing.T) {
	f := newAdminFixture(t)

	_, err := f.service.ToggleUserActive(f.admin.ID, f.auditCtx())
	assert.ErrorIs(t, err, apperrors.ErrCannotModifyAdmin)
}

func TestDeleteUserDeactivates(t *testing.T) {
	f := newAdminFixture(t)

	require.NoError(t, f.service.DeleteUser(f.candidate.ID, f.auditCtx()))

	// The row survives, only deactivated.
	stored, err := f.users.FindByID(f.candidate.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	require.Len(t, f.audits.entries, 1)
	assert.Equal(t, models.AuditActionDeleteUser, f.audits.entries[0].Action)
}

func TestAdminUpdateUserAuditsBeforeAndAfter(t *testing.T) {
	f := newAdminFixture(t)

	newName := "Jane D."
	_, err := f.service.UpdateUser(f.candidate.ID, &dto.AdminUpdateUserRequest{FullName: &newName}, f.auditCtx())
	require.NoError(t, err)

	stored, _ := f.users.FindByID(f.candidate.ID)
	assert.Equal(t, "Jane D.", stored.FullName)

	require.Len(t, f.audits.entries, 1)
	assert.Equal(t, models.AuditActionUpdateUser, f.audits.entries[0].Action)
	assert.NotEmpty(t, f.audits.entries[0].Metadata)
}

func TestAdminJobStatusActions(t *testing.T) {
	f := newAdminFixture(t)
	job := f.jobs.add(&models.Job{CompanyID: f.employer.ID, Title: "Role", Status: models.JobStatusPaused})

	updated, err := f.service.UpdateJobStatus(job.ID, &dto.AdminUpdateJobStatusRequest{Status: "active"}, f.auditCtx())
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusActive, updated.Status)
	assert.Equal(t, models.AuditActionApproveJob, f.audits.entries[0].Action)

	_, err = f.service.UpdateJobStatus(job.ID, &dto.AdminUpdateJobStatusRequest{Status: "closed", Reason: "spam"}, f.auditCtx())
	require.NoError(t, err)
	assert.Equal(t, models.AuditActionRejectJob, f.audits.entries[1].Action)

	_, err = f.service.UpdateJobStatus(job.ID, &dto.AdminUpdateJobStatusRequest{Status: "paused"}, f.auditCtx())
	require.NoError(t, err)
	assert.Equal(t, models.AuditActionUpdateJob, f.audits.entries[2].Action)
}

func TestAdminDeleteJob(t *testing.T) {
	f := newAdminFixture(t)
	job := f.jobs.add(&models.Job{CompanyID: f.employer.ID, Title: "Role", Status: models.JobStatusActive})

	require.NoError(t, f.service.DeleteJob(job.ID, f.auditCtx()))

	_, err := f.jobs.FindByID(job.ID)
	assert.Error(t, err)
	assert.Equal(t, models.AuditActionDeleteJob, f.audits.entries[0].Action)
}

func TestAdminUserDetailCounts(t *testing.T) {
	f := newAdminFixture(t)
	job := f.jobs.add(&models.Job{CompanyID: f.employer.ID, Title: "Role", Status: models.JobStatusActive})
	require.NoError(t, f.applications.Create(&models.Application{
		JobID:       job.ID,
		CandidateID: f.candidate.ID,
		CompanyID:   f.employer.ID,
		Status:      models.ApplicationStatusPending,
	}))

	candidateDetail, err := f.service.GetUserDetail(f.candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, candidateDetail.ApplicationCount)
	assert.Zero(t, candidateDetail.JobCount)

	employerDetail, err := f.service.GetUserDetail(f.employer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, employerDetail.JobCount)
	assert.Equal(t, 1, employerDetail.ReceivedCount)
}

func TestAdminJobDetailCountsFromLedger(t *testing.T) {
	f := newAdminFixture(t)
	job := f.jobs.add(&models.Job{CompanyID: f.employer.ID, Title: "Role", Status: models.JobStatusActive})
	require.NoError(t, f.applications.Create(&models.Application{
		JobID:       job.ID,
		CandidateID: f.candidate.ID,
		CompanyID:   f.employer.ID,
		Status:      models.ApplicationStatusPending,
	}))

	// Skew the cached counter; the detail view must report the ledger count.
	f.jobs.jobs[job.ID].ApplicationCount = 99

	detail, err := f.service.GetJobDetail(job.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.ApplicationCount)
}

func TestAuditLogFilterByAction(t *testing.T) {
	f := newAdminFixture(t)

	_, err := f.service.ToggleUserActive(f.candidate.ID, f.auditCtx())
	require.NoError(t, err)
	require.NoError(t, f.service.DeleteUser(f.employer.ID, f.auditCtx()))

	entries, _, err := f.service.GetAuditLogs(&dto.AuditLogQuery{Action: string(models.AuditActionDeleteUser)})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, f.employer.ID, entries[0].TargetID)
}
