package client

import (
	"bytes"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"

	"github.com/KirkDiggler/wallet-arena/internal/handlers/arena/v1alpha1"
	"github.com/KirkDiggler/wallet-arena/internal/narrative"
	"github.com/KirkDiggler/wallet-arena/internal/orchestrators/arena"
	"github.com/KirkDiggler/wallet-arena/internal/pkg/clock"
	"github.com/KirkDiggler/wallet-arena/internal/pkg/idgen"
	battlecache "github.com/KirkDiggler/wallet-arena/internal/repositories/battle_cache"
	"github.com/KirkDiggler/wallet-arena/internal/testutils"
)

type ClientTestSuite struct {
	suite.Suite
	server  *grpc.Server
	cleanup func()
	dir     string
	files   [2]string
	out     *bytes.Buffer
	cmd     *cobra.Command
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	cache, err := battlecache.NewRedisRepository(&battlecache.Config{
		Client: client,
		Clock:  clock.New(),
	})
	s.Require().NoError(err)

	svc, err := arena.NewOrchestrator(&arena.Config{
		BattleCache:    cache,
		NonceGenerator: idgen.NewCounter(1),
		Narrator:       narrative.New(),
	})
	s.Require().NoError(err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{ArenaService: svc})
	s.Require().NoError(err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)

	s.server = grpc.NewServer()
	v1alpha1.RegisterArenaServiceServer(s.server, handler)
	go func() { _ = s.server.Serve(lis) }()

	serverAddr = lis.Addr().String()
	timeout = 5 * time.Second
	fightNonce = ""
	fightSkipCache = false

	s.dir = s.T().TempDir()
	for i, snap := range testutils.FighterPair() {
		s.files[i] = filepath.Join(s.dir, snap.Class.String()+".yaml")
		body := "address: \"" + snap.Address + "\"\nclass: " + snap.Class.String() + "\nstats:\n" +
			"  level: 5\n  hp: 300\n  mp: 100\n  str: 90\n  int: 40\n  dex: 60\n  luck: 30\n  power: 500\n"
		s.Require().NoError(os.WriteFile(s.files[i], []byte(body), 0o600))
	}

	s.out = &bytes.Buffer{}
	s.cmd = &cobra.Command{}
	s.cmd.SetOut(s.out)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Stop()
	s.cleanup()
}

func (s *ClientTestSuite) fight() *v1alpha1.FightResponse {
	s.out.Reset()
	s.Require().NoError(runFight(s.cmd, s.files[:]))

	resp := &v1alpha1.FightResponse{}
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), resp))
	s.Require().NotNil(resp.Result)
	return resp
}

func (s *ClientTestSuite) TestFightThenGetBattle() {
	fightNonce = "42"

	first := s.fight()
	s.False(first.Cached)
	s.Equal("42", first.Result.Nonce)

	second := s.fight()
	s.True(second.Cached)
	s.True(first.Result.SameOutcome(second.Result))

	s.out.Reset()
	pair := testutils.FighterPair()
	s.Require().NoError(runGetBattle(s.cmd, []string{pair[0].Address, pair[1].Address, "42"}))

	got := &v1alpha1.GetBattleResponse{}
	s.Require().NoError(json.Unmarshal(s.out.Bytes(), got))
	s.True(first.Result.SameOutcome(got.Result))
	s.Greater(got.ExpiresAt, got.CachedAt)
}

func (s *ClientTestSuite) TestFightGeneratesNonce() {
	resp := s.fight()
	s.Equal("1", resp.Result.Nonce)
}

func (s *ClientTestSuite) TestGetBattleNotFound() {
	err := runGetBattle(s.cmd, []string{"0x1", "0x2", "missing"})
	s.ErrorContains(err, "failed to get battle")
}

func (s *ClientTestSuite) TestVerify() {
	fightNonce = "9"
	resp := s.fight()

	s.Run("untouched result is valid", func() {
		path := filepath.Join(s.dir, "result.json")
		data, err := json.Marshal(resp)
		s.Require().NoError(err)
		s.Require().NoError(os.WriteFile(path, data, 0o600))

		s.out.Reset()
		s.Require().NoError(runVerify(s.cmd, []string{path}))
		s.True(strings.HasPrefix(s.out.String(), "valid"))
	})

	s.Run("tampered winner is reported", func() {
		tampered := *resp.Result
		tampered.Winner = 1 - tampered.Winner
		path := filepath.Join(s.dir, "tampered.json")
		data, err := json.Marshal(&tampered)
		s.Require().NoError(err)
		s.Require().NoError(os.WriteFile(path, data, 0o600))

		s.out.Reset()
		s.Require().NoError(runVerify(s.cmd, []string{path}))
		s.Equal("invalid: first mismatch at winner\n", s.out.String())
	})
}
