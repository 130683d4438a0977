package worker

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"orgsub-backend/dal"
	"orgsub-backend/models"
	"orgsub-backend/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type WorkerTestSuite struct {
	suite.Suite
	store   dal.DatasetStoreInterface
	config  *models.Config
	service *Service
	ctx     context.Context
}

func (s *WorkerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.config = &models.Config{
		DataFile:            filepath.Join(s.T().TempDir(), "dataset.json"),
		ExpirySweepSchedule: "0 0 * * * *",
	}
	log := logger.NewLogger("error", "text")
	s.store = dal.NewFileStore(s.config, log)

	svc, err := NewService(s.ctx, s.config, log, s.store)
	require.NoError(s.T(), err)
	s.service = svc
}

func TestWorkerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerTestSuite))
}

func (s *WorkerTestSuite) seedOrg(code string, active bool, end time.Time) {
	ds, err := s.store.Load(s.ctx)
	require.NoError(s.T(), err)

	start := end.AddDate(0, 0, -30)
	tier := "1months"
	ds.Organizations = append(ds.Organizations, &models.Organization{
		OrgCode: code,
		OrgName: code + " Corp",
		Owner:   "Jordan",
		Phone:   "+15550001111",
		Subscription: models.Subscription{
			Active:    active,
			StartDate: &start,
			EndDate:   &end,
			Tier:      &tier,
		},
	})
	require.NoError(s.T(), s.store.Save(s.ctx, ds))
}

func (s *WorkerTestSuite) TestNewServiceRequiresStore() {
	_, err := NewService(s.ctx, s.config, logger.NewLogger("error", "text"), nil)

	assert.Error(s.T(), err)
}

func (s *WorkerTestSuite) TestSweepOnceEmptyDataset() {
	count, err := s.service.SweepOnce(s.ctx)

	assert.NoError(s.T(), err)
	assert.Zero(s.T(), count)
}

func (s *WorkerTestSuite) TestSweepOnceIgnoresCurrentSubscriptions() {
	s.seedOrg("LIVE", true, time.Now().UTC().AddDate(0, 0, 10))
	s.seedOrg("IDLE", false, time.Now().UTC().AddDate(0, 0, -10))

	count, err := s.service.SweepOnce(s.ctx)

	assert.NoError(s.T(), err)
	assert.Zero(s.T(), count)
}

// By default the sweep only reports; subscription state is owned by the
// administrative operations.
func (s *WorkerTestSuite) TestSweepOnceReportOnly() {
	s.seedOrg("LAPSED", true, time.Now().UTC().AddDate(0, 0, -1))

	count, err := s.service.SweepOnce(s.ctx)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), 1, count)

	ds, err := s.store.Load(s.ctx)
	require.NoError(s.T(), err)
	assert.True(s.T(), ds.FindOrganization("LAPSED").Subscription.Active)
}

func (s *WorkerTestSuite) TestSweepOnceAutoDeactivate() {
	s.config.ExpiryAutoDeactivate = true
	s.seedOrg("LAPSED", true, time.Now().UTC().AddDate(0, 0, -1))
	s.seedOrg("LIVE", true, time.Now().UTC().AddDate(0, 0, 10))

	count, err := s.service.SweepOnce(s.ctx)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), 1, count)

	ds, err := s.store.Load(s.ctx)
	require.NoError(s.T(), err)
	assert.False(s.T(), ds.FindOrganization("LAPSED").Subscription.Active)
	assert.True(s.T(), ds.FindOrganization("LIVE").Subscription.Active)
	// The window itself is kept for the audit trail.
	assert.NotNil(s.T(), ds.FindOrganization("LAPSED").Subscription.EndDate)
}

func (s *WorkerTestSuite) TestStartAndStop() {
	require.NoError(s.T(), s.service.StartInBackground())
	assert.True(s.T(), s.service.IsRunning())

	err := s.service.StartInBackground()
	assert.Error(s.T(), err)

	s.service.Stop()
	assert.False(s.T(), s.service.IsRunning())
}

func (s *WorkerTestSuite) TestStartInBackgroundBadSchedule() {
	s.config.ExpirySweepSchedule = "not a schedule"

	err := s.service.StartInBackground()

	assert.Error(s.T(), err)
	assert.False(s.T(), s.service.IsRunning())
}
