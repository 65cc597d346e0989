package arena

import (
	"sync/atomic"

	"github.com/FascinatedTV/Meta-Tic-Tac-Toe/pkg/players"
)

type MatchResult int

const (
	Pl1Win MatchResult = 1
	Pl2Win MatchResult = -1
	Draw   MatchResult = 0
)

// PlayerFactory builds a fresh player for a single game; stateful players
// (the pondering MCTS) must not be shared between games.
type PlayerFactory func() players.Player

type Stats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
}

func (s *Stats) Total() int {
	return s.P1Wins() + s.P2Wins() + s.Draws()
}

func (s *Stats) P1Wins() int {
	return int(atomic.LoadUint32(&s.p1Wins))
}

func (s *Stats) P2Wins() int {
	return int(atomic.LoadUint32(&s.p2Wins))
}

func (s *Stats) Draws() int {
	return int(atomic.LoadUint32(&s.draws))
}

func (s *Stats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&s.firstToMoveWins))
}

func (s *Stats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&s.secondToMoveWins))
}

func (s *Stats) record(result MatchResult, p1WentFirst bool) {
	switch result {
	case Draw:
		atomic.AddUint32(&s.draws, 1)
		return
	case Pl1Win:
		atomic.AddUint32(&s.p1Wins, 1)
	case Pl2Win:
		atomic.AddUint32(&s.p2Wins, 1)
	}

	if (result == Pl1Win) == p1WentFirst {
		atomic.AddUint32(&s.firstToMoveWins, 1)
	} else {
		atomic.AddUint32(&s.secondToMoveWins, 1)
	}
}

// Summary is a copy of the tallies for reporting.
type Summary struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	Draws            int    `json:"draws"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}
