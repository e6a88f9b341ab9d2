package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wallet-arena/internal/engine/battle"
	"github.com/KirkDiggler/wallet-arena/internal/pkg/clock"
	"github.com/KirkDiggler/wallet-arena/internal/redis"
	battlecache "github.com/KirkDiggler/wallet-arena/internal/repositories/battle_cache"
	"github.com/KirkDiggler/wallet-arena/internal/testutils"
)

type SweepTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  redis.Client
	cleanup func()
	clock   *clock.Fixed
	cache   battlecache.Repository
	ctx     context.Context
}

func TestSweepSuite(t *testing.T) {
	suite.Run(t, new(SweepTestSuite))
}

func (s *SweepTestSuite) SetupTest() {
	s.mr, s.client, s.cleanup = testutils.CreateTestRedis(s.T())
	s.clock = clock.NewFixed(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	var err error
	s.cache, err = battlecache.NewRedisRepository(&battlecache.Config{
		Client: s.client,
		Clock:  s.clock,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
}

func (s *SweepTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *SweepTestSuite) putBattle(nonce string) *battle.Result {
	result := battle.Simulate(&battle.SimulateInput{Fighters: testutils.FighterPair(), Nonce: nonce})
	_, err := s.cache.Put(s.ctx, battlecache.PutInput{Result: result})
	s.Require().NoError(err)
	return result
}

func (s *SweepTestSuite) TestCleanCacheReportsNothing() {
	s.putBattle("1")
	s.putBattle("2")

	report, err := sweepBattles(s.ctx, s.client, s.clock, true)
	s.Require().NoError(err)
	s.Equal(2, report.Checked)
	s.Empty(report.Bad)
	s.Equal(0, report.Deleted)
}

func (s *SweepTestSuite) TestFindsBadEntries() {
	good := s.putBattle("1")

	tampered := *good
	tampered.Nonce = "2"
	data, err := json.Marshal(&battlecache.StoredBattle{
		Result:    &tampered,
		CachedAt:  s.clock.Now(),
		ExpiresAt: s.clock.Now().Add(time.Hour),
	})
	s.Require().NoError(err)
	tamperedKey := battlecache.BuildKey([2]string{good.Fighters[0].Address, good.Fighters[1].Address}, "2")
	s.Require().NoError(s.mr.Set(tamperedKey, string(data)))
	s.Require().NoError(s.mr.Set("battle:0xa:0xb:3", "{not json"))

	report, err := sweepBattles(s.ctx, s.client, s.clock, false)
	s.Require().NoError(err)
	s.Equal(3, report.Checked)
	s.Equal(map[string]string{
		tamperedKey:         "seed does not match fighters and nonce",
		"battle:0xa:0xb:3": "corrupted json",
	}, report.Bad)
	s.True(s.mr.Exists(tamperedKey), "dry run keeps entries")

	report, err = sweepBattles(s.ctx, s.client, s.clock, true)
	s.Require().NoError(err)
	s.Equal(2, report.Deleted)
	s.False(s.mr.Exists(tamperedKey))
	s.False(s.mr.Exists("battle:0xa:0xb:3"))
	s.True(s.mr.Exists(battlecache.BuildKey([2]string{good.Fighters[0].Address, good.Fighters[1].Address}, "1")))
}

func (s *SweepTestSuite) TestExpiredByClock() {
	s.putBattle("1")
	s.clock.Advance(2 * time.Hour)

	report, err := sweepBattles(s.ctx, s.client, s.clock, false)
	s.Require().NoError(err)
	s.Len(report.Bad, 1)
	for _, reason := range report.Bad {
		s.Equal("expired", reason)
	}
}

func (s *SweepTestSuite) TestPrintReportSortsKeys() {
	bad := map[string]string{
		"battle:0xc:0xd:9": "expired",
		"battle:0xa:0xb:1": "corrupted json",
		"battle:0xa:0xb:5": "missing result",
	}
	want := "Checked 3 battles, found 3 bad entries\n" +
		"  - battle:0xa:0xb:1: corrupted json\n" +
		"  - battle:0xa:0xb:5: missing result\n" +
		"  - battle:0xc:0xd:9: expired\n" +
		"Deleted 3 entries\n"

	for i := 0; i < 10; i++ {
		var out bytes.Buffer
		printSweepReport(&out, &sweepReport{Checked: 3, Bad: bad, Deleted: 3}, true)
		s.Equal(want, out.String())
	}
}

func (s *SweepTestSuite) TestPrintReport() {
	var out bytes.Buffer
	printSweepReport(&out, &sweepReport{Checked: 4, Bad: map[string]string{"battle:x": "expired"}}, false)
	s.Equal("Checked 4 battles, found 1 bad entries\n  - battle:x: expired\nRun again with --delete to remove them\n", out.String())
}
