package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/maxmeneghini/D20CharSheet/internal/domain/character"
	apperr "github.com/maxmeneghini/D20CharSheet/internal/errors"
	"github.com/maxmeneghini/D20CharSheet/internal/repositories/sheets/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mock         redismock.ClientMock
	repo         *redisRepo
	mockCtrl     *gomock.Controller
	timeProvider *mocks.MockTimeProvider
}

func (s *RedisRepoTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mocks.NewMockTimeProvider(s.mockCtrl)
	s.repo = &redisRepo{
		client:       client,
		timeProvider: s.timeProvider,
		ttl:          24 * time.Hour,
	}
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) testSheet() *character.Character {
	c := character.NewCharacter()
	c.ID = "test-id"
	c.OwnerID = "owner-id"
	c.Name = "Tordek"
	return c
}

func (s *RedisRepoTestSuite) marshal(sheet *character.Character, created, updated time.Time) string {
	data, err := json.Marshal(Data{Sheet: sheet, CreatedAt: created, UpdatedAt: updated})
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	sheet := s.testSheet()

	s.timeProvider.EXPECT().Now().Return(now)

	s.mock.ExpectExists("sheet:test-id").SetVal(0)
	s.mock.ExpectSet("sheet:test-id", s.marshal(sheet, now, now), 24*time.Hour).SetVal("OK")
	s.mock.ExpectSAdd("owner:owner-id:sheets", "test-id").SetVal(1)
	s.mock.ExpectExpire("owner:owner-id:sheets", 24*time.Hour).SetVal(true)

	s.NoError(s.repo.Create(ctx, sheet))
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	ctx := context.Background()
	sheet := s.testSheet()

	s.mock.ExpectExists("sheet:test-id").SetVal(1)

	err := s.repo.Create(ctx, sheet)
	s.Error(err)
	s.True(apperr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreate_Validation() {
	ctx := context.Background()

	s.Error(s.repo.Create(ctx, nil))

	sheet := s.testSheet()
	sheet.ID = ""
	s.Error(s.repo.Create(ctx, sheet))

	sheet = s.testSheet()
	sheet.OwnerID = ""
	s.Error(s.repo.Create(ctx, sheet))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	sheet := s.testSheet()

	s.mock.ExpectGet("sheet:test-id").SetVal(s.marshal(sheet, now, now))

	got, err := s.repo.Get(ctx, "test-id")
	s.Require().NoError(err)
	s.Equal("Tordek", got.Name)
	s.Equal("owner-id", got.OwnerID)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("sheet:missing").RedisNil()

	_, err := s.repo.Get(ctx, "missing")
	s.Error(err)
	s.True(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGet_DependencyError() {
	ctx := context.Background()

	s.mock.ExpectGet("sheet:test-id").SetErr(errors.New("redis error"))

	_, err := s.repo.Get(ctx, "test-id")
	s.Error(err)
	s.False(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestUpdate() {
	ctx := context.Background()
	created := time.Now().UTC().Truncate(time.Millisecond).Add(-time.Hour)
	updated := time.Now().UTC().Truncate(time.Millisecond)
	sheet := s.testSheet()

	s.timeProvider.EXPECT().Now().Return(updated)

	s.mock.ExpectGet("sheet:test-id").SetVal(s.marshal(sheet, created, created))

	edited := sheet.Clone()
	edited.BAB = 5
	s.mock.ExpectSet("sheet:test-id", s.marshal(edited, created, updated), 24*time.Hour).SetVal("OK")
	s.mock.ExpectSAdd("owner:owner-id:sheets", "test-id").SetVal(0)
	s.mock.ExpectExpire("owner:owner-id:sheets", 24*time.Hour).SetVal(true)

	s.NoError(s.repo.Update(ctx, edited))
}

func (s *RedisRepoTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("sheet:test-id").RedisNil()

	err := s.repo.Update(ctx, s.testSheet())
	s.Error(err)
	s.True(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGetByOwner() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	sheet := s.testSheet()

	s.mock.ExpectSMembers("owner:owner-id:sheets").SetVal([]string{"test-id"})
	s.mock.ExpectGet("sheet:test-id").SetVal(s.marshal(sheet, now, now))

	result, err := s.repo.GetByOwner(ctx, "owner-id")
	s.Require().NoError(err)
	s.Len(result, 1)
	s.Equal("Tordek", result[0].Name)
}

func (s *RedisRepoTestSuite) TestGetByOwner_SkipsExpired() {
	ctx := context.Background()

	s.mock.ExpectSMembers("owner:owner-id:sheets").SetVal([]string{"gone"})
	s.mock.ExpectGet("sheet:gone").RedisNil()

	result, err := s.repo.GetByOwner(ctx, "owner-id")
	s.Require().NoError(err)
	s.Empty(result)
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	sheet := s.testSheet()

	s.mock.ExpectGet("sheet:test-id").SetVal(s.marshal(sheet, now, now))
	s.mock.ExpectDel("sheet:test-id").SetVal(1)
	s.mock.ExpectSRem("owner:owner-id:sheets", "test-id").SetVal(1)

	s.NoError(s.repo.Delete(ctx, "test-id"))
}

func (s *RedisRepoTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("sheet:missing").RedisNil()

	err := s.repo.Delete(ctx, "missing")
	s.Error(err)
	s.True(apperr.IsNotFound(err))
}
