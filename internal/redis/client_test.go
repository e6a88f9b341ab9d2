package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wallet-arena/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr *miniredis.Miniredis
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
}

func (s *ClientTestSuite) TestNewClientRequiresEndpoint() {
	client, err := redis.NewClient("", nil)
	s.Error(err)
	s.Nil(client)
}

func (s *ClientTestSuite) TestNewClientConnects() {
	client, err := redis.NewClient(s.mr.Addr(), &redis.Options{PoolSize: 2, MaxRetries: 1})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.NoError(client.Ping(context.Background()).Err())
}
