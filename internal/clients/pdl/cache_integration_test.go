//go:build integration

package pdl_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"medvirkning/internal/clients/pdl"
	"medvirkning/internal/vurdering/models"
	"medvirkning/pkg/testutil/containers"
)

type countingNames struct {
	calls int
	err   error
}

func (c *countingNames) DisplayName(_ context.Context, _ models.Personident) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return "Fornavn Etternavn", nil
}

type CachedNamesSuite struct {
	suite.Suite
	ctx   context.Context
	redis *containers.RedisContainer
}

func TestCachedNamesSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CachedNamesSuite))
}

func (s *CachedNamesSuite) SetupSuite() {
	s.ctx = context.Background()
	s.redis = containers.NewRedisContainer(s.T())
}

func (s *CachedNamesSuite) TearDownSuite() {
	s.redis.Close(s.ctx)
}

func (s *CachedNamesSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(s.ctx))
}

func (s *CachedNamesSuite) TestSecondLookupIsServedFromCache() {
	next := &countingNames{}
	cached := pdl.NewCachedNames(next, s.redis.Client, time.Minute, nil)

	for range 2 {
		name, err := cached.DisplayName(s.ctx, "12345678910")
		s.Require().NoError(err)
		s.Equal("Fornavn Etternavn", name)
	}
	s.Equal(1, next.calls)

	keys, err := s.redis.Client.Keys(s.ctx, "pdl:navn:*").Result()
	s.Require().NoError(err)
	s.Equal([]string{"pdl:navn:432f45b4-4c43-3414-92f9-7df0e5743818"}, keys)
}

func (s *CachedNamesSuite) TestFailuresAreNotCached() {
	next := &countingNames{err: errors.New("pdl down")}
	cached := pdl.NewCachedNames(next, s.redis.Client, time.Minute, nil)

	_, err := cached.DisplayName(s.ctx, "12345678910")
	s.Require().Error(err)
	_, err = cached.DisplayName(s.ctx, "12345678910")
	s.Require().Error(err)
	s.Equal(2, next.calls)
}
