package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/M0r13n/battleships/pkg/comms"
)

// Phase is where a session stands in the strict turn cycle.
type Phase int

const (
	// AwaitingOwnShot means it is this player's turn to aim and fire.
	AwaitingOwnShot Phase = iota
	// AwaitingPeerShot means the opponent is aiming.
	AwaitingPeerShot
	// PeerForfeited means the opponent's connection is gone; they
	// forfeit and this player has won.
	PeerForfeited
	// SelfLost means every segment of this player's fleet has been hit.
	SelfLost
	// Aborted means this player quit at the shot prompt. Nothing further
	// goes over the wire.
	Aborted
)

func (p Phase) String() string {
	switch p {
	case AwaitingOwnShot:
		return "AwaitingOwnShot"
	case AwaitingPeerShot:
		return "AwaitingPeerShot"
	case PeerForfeited:
		return "PeerForfeited"
	case SelfLost:
		return "SelfLost"
	case Aborted:
		return "Aborted"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// TargetSource supplies the player's moves. NextTarget blocks until the
// player picks a square on the board, and reports quit when the player
// abandons the game instead.
type TargetSource interface {
	NextTarget() (target Coord, quit bool, err error)
}

// View is told whenever the boards change so it can redraw them.
type View interface {
	Render(own, enemy *Board)
	Waiting()
}

// Session drives one game over an established connection. Both players
// run one; the two stay in lockstep purely by alternating turns, with no
// turn marker on the wire.
type Session struct {
	conn  comms.Conn
	own   *Board
	enemy *Board
	input TargetSource
	view  View
	log   *zap.Logger

	phase Phase

	// lastHit is the outcome of the opponent's latest shot against the
	// private board. It rides out on the next shot this player fires
	// instead of travelling as a separate reply.
	lastHit bool

	// pending is the square of this player's own last shot, still
	// waiting for the opponent's piggybacked verdict.
	pending    Coord
	hasPending bool
}

// NewSession wires a session up. The side that opened the connection
// moves first; the side that accepted it starts out waiting.
func NewSession(conn comms.Conn, own, enemy *Board, input TargetSource, view View, movesFirst bool, log *zap.Logger) *Session {
	phase := AwaitingPeerShot
	if movesFirst {
		phase = AwaitingOwnShot
	}
	return &Session{
		conn:  conn,
		own:   own,
		enemy: enemy,
		input: input,
		view:  view,
		log:   log,
		phase: phase,
	}
}

// Run plays the game to its end and returns the terminal phase. The
// returned error is non-nil only for send or input failures, which leave
// the game without a verdict.
func (s *Session) Run() (Phase, error) {
	s.view.Render(s.own, s.enemy)
	for {
		switch s.phase {
		case AwaitingOwnShot:
			if err := s.fireOwnShot(); err != nil {
				return s.phase, err
			}
		case AwaitingPeerShot:
			s.awaitPeerShot()
		default:
			s.log.Info("game over", zap.Stringer("phase", s.phase))
			return s.phase, nil
		}
	}
}

// fireOwnShot asks the player for a target and sends it, bundling in the
// verdict on the opponent's previous shot.
func (s *Session) fireOwnShot() error {
	target, quit, err := s.input.NextTarget()
	if err != nil {
		return fmt.Errorf("reading target: %w", err)
	}
	if quit {
		s.phase = Aborted
		return nil
	}

	shot := comms.Shot{X: target.X, Y: target.Y, Hit: s.lastHit}
	pkt, err := shot.Encode()
	if err != nil {
		return fmt.Errorf("encoding shot: %w", err)
	}
	if err := s.conn.Send(pkt[:]); err != nil {
		return fmt.Errorf("sending shot: %w", err)
	}

	s.pending = target
	s.hasPending = true
	s.log.Debug("fired",
		zap.Int("x", target.X),
		zap.Int("y", target.Y),
		zap.Bool("ack", shot.Hit))
	s.phase = AwaitingPeerShot
	return nil
}

// awaitPeerShot blocks for the opponent's next shot, applies it to the
// private board and settles this player's pending shot from the
// piggybacked flag. A dead connection here means the opponent is gone
// and the game is won by forfeit.
func (s *Session) awaitPeerShot() {
	s.view.Waiting()

	var pkt [comms.ShotSize]byte
	if _, err := s.conn.Recv(pkt[:]); err != nil {
		s.log.Info("opponent disconnected", zap.Error(err))
		s.phase = PeerForfeited
		return
	}

	shot := comms.DecodeShot(pkt)
	s.lastHit = s.own.ApplyIncomingShot(Coord{X: shot.X, Y: shot.Y})
	s.log.Debug("received",
		zap.Int("x", shot.X),
		zap.Int("y", shot.Y),
		zap.Bool("ack", shot.Hit),
		zap.Bool("hit", s.lastHit))

	if s.hasPending {
		s.enemy.RecordShotResult(s.pending, shot.Hit)
		s.hasPending = false
	}
	s.view.Render(s.own, s.enemy)

	if !s.own.HasSurvivingShip() {
		s.phase = SelfLost
		return
	}
	s.phase = AwaitingOwnShot
}
