// Package farmtour defines the core domain types and the answer evaluation
// rules for the self-guided farm tour. It has zero external dependencies —
// everything here is pure Go.
package farmtour

import (
	"errors"
	"sort"
	"time"
)

// GameType tags how a game is presented to the visitor. Evaluation is
// identical across all types.
type GameType string

const (
	GameTypeQuiz        GameType = "quiz"
	GameTypeTrueFalse   GameType = "true_false"
	GameTypeAudioRiddle GameType = "audio_riddle"
	GameTypeImageRiddle GameType = "image_riddle"
	GameTypeObservation GameType = "observation"
)

// ValidGameType reports whether t is one of the known game types.
func ValidGameType(t GameType) bool {
	switch t {
	case GameTypeQuiz, GameTypeTrueFalse, GameTypeAudioRiddle, GameTypeImageRiddle, GameTypeObservation:
		return true
	}
	return false
}

// Game is a single-question challenge embedded in a zone. It is owned by
// its zone (copy semantics): deleting the zone deletes the game.
type Game struct {
	ID            string
	Type          GameType
	Question      string
	Options       []string
	CorrectAnswer string
	Explanation   string
}

// DefaultCTAText labels a zone's call-to-action when none is supplied.
const DefaultCTAText = "Découvrir"

// Zone is a physical exhibit with digital content and at most one game.
type Zone struct {
	ID          string
	Name        string
	Description string
	ImageRef    string
	VideoRef    string
	AudioRef    string
	CTAText     string
	CTATarget   string
	Game        *Game
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VisitorSession is one visitor's progress ledger. VisitedZones holds bare
// zone ids; they are never validated against the catalog, so ids of
// since-deleted zones stay in the set. TotalZones is snapshotted at
// creation and never recomputed.
type VisitorSession struct {
	ID           string
	VisitedZones map[string]struct{}
	TotalZones   int
	CreatedAt    time.Time
	LastActivity time.Time
}

// Visit adds zoneID to the visited set and reports whether it was new.
// Membership is at-most-once regardless of how often a visit is recorded.
func (s *VisitorSession) Visit(zoneID string) bool {
	if s.VisitedZones == nil {
		s.VisitedZones = make(map[string]struct{})
	}
	if _, ok := s.VisitedZones[zoneID]; ok {
		return false
	}
	s.VisitedZones[zoneID] = struct{}{}
	return true
}

// VisitedCount returns the number of distinct zones visited.
func (s *VisitorSession) VisitedCount() int {
	return len(s.VisitedZones)
}

// VisitedZoneIDs returns the visited zone ids in sorted order.
func (s *VisitorSession) VisitedZoneIDs() []string {
	ids := make([]string, 0, len(s.VisitedZones))
	for id := range s.VisitedZones {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ErrNoGame signals an answer submitted against a zone without a game.
var ErrNoGame = errors.New("zone has no game")

// AnswerResult is the verdict for a submitted answer. Explanation carries
// the game's explanation for both correct and incorrect answers.
type AnswerResult struct {
	ZoneID         string
	SelectedAnswer string
	IsCorrect      bool
	Explanation    string
}

// EvaluateAnswer checks answer against the zone's game. The comparison is
// exact and case-sensitive with no trimming: game authors control the
// answer text. Pure — it never mutates the zone, the game, or anything
// else, and repeated calls with the same input yield the same result.
func EvaluateAnswer(zone Zone, answer string) (AnswerResult, error) {
	if zone.Game == nil {
		return AnswerResult{}, ErrNoGame
	}
	return AnswerResult{
		ZoneID:         zone.ID,
		SelectedAnswer: answer,
		IsCorrect:      answer == zone.Game.CorrectAnswer,
		Explanation:    zone.Game.Explanation,
	}, nil
}
