package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zentryhq/zentry/internal/models"
	"github.com/zentryhq/zentry/internal/store"
)

func TestStore_AddDeal_AssignsIDAndInsertsAtHead(t *testing.T) {
	st := store.New()

	first := st.AddDeal(models.Deal{Title: "First", Amount: 100})
	second := st.AddDeal(models.Deal{Title: "Second", Amount: 200})

	require.NotEmpty(t, first.ID)
	require.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	deals := st.Deals()
	require.Len(t, deals, 2)
	assert.Equal(t, "Second", deals[0].Title)
	assert.Equal(t, "First", deals[1].Title)
}

func TestStore_AddDeal_KeepsCallerSuppliedID(t *testing.T) {
	st := store.New()
	d := st.AddDeal(models.Deal{ID: "custom-1", Title: "Deal"})
	assert.Equal(t, "custom-1", d.ID)
}

func TestStore_UpdateDeal_PartialMerge(t *testing.T) {
	st := store.New()
	d := st.AddDeal(models.Deal{Title: "ERP", Company: "Reliance", Amount: 450000, Stage: models.StageProposal})

	won := models.StageWon
	updated, ok := st.UpdateDeal(d.ID, store.DealPatch{Stage: &won})
	require.True(t, ok)

	assert.Equal(t, models.StageWon, updated.Stage)
	assert.Equal(t, "ERP", updated.Title)
	assert.Equal(t, "Reliance", updated.Company)
	assert.Equal(t, 450000.0, updated.Amount)
}

func TestStore_UpdateDeal_MissingID(t *testing.T) {
	st := store.New()
	_, ok := st.UpdateDeal("nope", store.DealPatch{})
	assert.False(t, ok)
}

func TestStore_DeleteDeal_Idempotent(t *testing.T) {
	st := store.New()
	d := st.AddDeal(models.Deal{Title: "Gone"})

	st.DeleteDeal(d.ID)
	assert.Empty(t, st.Deals())

	// Second delete of the same id must be a silent no-op.
	st.DeleteDeal(d.ID)
	st.DeleteDeal("never-existed")
	assert.Empty(t, st.Deals())
}

func TestStore_DeleteProject_DoesNotCascadeToTasks(t *testing.T) {
	st := store.New()
	p := st.AddProject(models.Project{Name: "Doomed"})
	task := st.AddTask(models.Task{Title: "Orphan-to-be", ProjectID: p.ID})

	st.DeleteProject(p.ID)

	got, ok := st.GetTask(task.ID)
	require.True(t, ok)
	assert.Equal(t, p.ID, got.ProjectID)
}

func TestStore_AppendTimeLog_AccumulatesInOrder(t *testing.T) {
	st := store.New()
	task := st.AddTask(models.Task{Title: "Tracked"})

	first, ok := st.AppendTimeLog(task.ID, models.TimeLog{Duration: 60})
	require.True(t, ok)
	require.Len(t, first.TimeLogs, 1)

	second, ok := st.AppendTimeLog(task.ID, models.TimeLog{Duration: 3661})
	require.True(t, ok)
	require.Len(t, second.TimeLogs, 2)
	assert.Equal(t, int64(60), second.TimeLogs[0].Duration)
	assert.Equal(t, int64(3661), second.TimeLogs[1].Duration)
	assert.NotEmpty(t, second.TimeLogs[0].ID)
}

func TestStore_AppendTimeLog_MissingTask(t *testing.T) {
	st := store.New()
	_, ok := st.AppendTimeLog("nope", models.TimeLog{Duration: 60})
	assert.False(t, ok)
}

func TestStore_Snapshots_AreIsolatedCopies(t *testing.T) {
	st := store.New()
	st.AddTeamMember(models.TeamMember{
		Name:        "Keshav",
		Skills:      []string{"Go"},
		Performance: &models.PerformanceMetric{KPI: 96},
	})

	snap := st.TeamMembers()
	require.Len(t, snap, 1)
	snap[0].Skills[0] = "mutated"
	snap[0].Performance.KPI = 0

	fresh := st.TeamMembers()
	assert.Equal(t, "Go", fresh[0].Skills[0])
	assert.Equal(t, 96.0, fresh[0].Performance.KPI)
}

func TestStore_ToggleFlow_FlipsBetweenRunningAndPaused(t *testing.T) {
	st := store.New()
	f := st.AddFlow(models.AutomationFlow{Name: "Lead Welcome", Status: models.FlowRunning})

	flipped, ok := st.ToggleFlow(f.ID)
	require.True(t, ok)
	assert.Equal(t, models.FlowPaused, flipped.Status)

	flipped, ok = st.ToggleFlow(f.ID)
	require.True(t, ok)
	assert.Equal(t, models.FlowRunning, flipped.Status)
}

func TestStore_LaunchCampaign_ActivatesAndStamps(t *testing.T) {
	st := store.New()
	c := st.AddCampaign(models.MarketingCampaign{Name: "Q1 Outreach", Status: models.CampaignDraft})

	launched, ok := st.LaunchCampaign(c.ID, "2026-08-28T10:00:00Z")
	require.True(t, ok)
	assert.Equal(t, models.CampaignActive, launched.Status)
	assert.Equal(t, "2026-08-28T10:00:00Z", launched.LastLaunched)
	assert.NotEmpty(t, launched.Reach)
	assert.NotEmpty(t, launched.ROI)
}

func TestStore_ToggleCampaign(t *testing.T) {
	st := store.New()
	c := st.AddCampaign(models.MarketingCampaign{Name: "Paused", Status: models.CampaignActive})

	toggled, ok := st.ToggleCampaign(c.ID)
	require.True(t, ok)
	assert.Equal(t, models.CampaignDeactivated, toggled.Status)

	toggled, ok = st.ToggleCampaign(c.ID)
	require.True(t, ok)
	assert.Equal(t, models.CampaignActive, toggled.Status)
}

func TestStore_EmailLifecycle(t *testing.T) {
	st := store.New()
	e := st.AddEmail(models.Email{Sender: "HR Dept", Subject: "Review", Type: models.EmailIncoming})

	read, ok := st.MarkEmailRead(e.ID)
	require.True(t, ok)
	assert.True(t, read.Read)

	starred, ok := st.ToggleEmailStar(e.ID)
	require.True(t, ok)
	assert.True(t, starred.Starred)

	unstarred, ok := st.ToggleEmailStar(e.ID)
	require.True(t, ok)
	assert.False(t, unstarred.Starred)

	archived, ok := st.ArchiveEmail(e.ID)
	require.True(t, ok)
	assert.Equal(t, models.EmailArchived, archived.Type)
}

func TestStore_ToggleLike_AddsAndRemoves(t *testing.T) {
	st := store.New()
	p := st.AddPost(models.FeedPost{Author: "Abhinav", Content: "Hello"})

	liked, ok := st.ToggleLike(p.ID, "anushka")
	require.True(t, ok)
	assert.Equal(t, 1, liked.Likes)
	assert.Contains(t, liked.LikedBy, "anushka")

	unliked, ok := st.ToggleLike(p.ID, "anushka")
	require.True(t, ok)
	assert.Equal(t, 0, unliked.Likes)
	assert.NotContains(t, unliked.LikedBy, "anushka")
}

func TestStore_MarkAllNotificationsRead(t *testing.T) {
	st := store.New()
	st.AddNotification(models.Notification{Title: "one", Type: models.NotifyInfo})
	st.AddNotification(models.Notification{Title: "two", Type: models.NotifyWarning})

	st.MarkAllNotificationsRead()

	for _, n := range st.Notifications() {
		assert.True(t, n.Read)
	}
}

func TestStore_Seed_LoadsDemoDataset(t *testing.T) {
	st := store.New()
	st.Seed()

	assert.Len(t, st.TeamMembers(), 3)
	assert.Len(t, st.Projects(), 2)
	assert.Len(t, st.Deals(), 2)
	assert.Len(t, st.Tasks(), 2)
	assert.Len(t, st.Emails(), 3)
	assert.Len(t, st.Posts(), 1)
	assert.Len(t, st.Contacts(), 1)
	assert.Len(t, st.Campaigns(), 1)
	assert.Len(t, st.Flows(), 1)
	assert.Len(t, st.Files(), 1)

	deal, ok := st.GetDeal("1")
	require.True(t, ok)
	assert.Equal(t, "ERP Implementation", deal.Title)
	assert.Equal(t, 450000.0, deal.Amount)
}
