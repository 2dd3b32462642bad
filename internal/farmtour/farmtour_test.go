package farmtour

import (
	"errors"
	"testing"
)

func henhouse() Zone {
	return Zone{
		ID:          "zone-1",
		Name:        "Poulailler",
		Description: "Nos poules et coqs colorés.",
		Game: &Game{
			ID:            "game-1",
			Type:          GameTypeQuiz,
			Question:      "Combien d'œufs une poule peut-elle pondre par jour ?",
			Options:       []string{"1", "5", "10"},
			CorrectAnswer: "1",
			Explanation:   "Une poule pond généralement un œuf par jour.",
		},
	}
}

func TestEvaluateAnswer(t *testing.T) {
	tests := []struct {
		name        string
		answer      string
		wantCorrect bool
	}{
		{"correct answer", "1", true},
		{"wrong answer", "5", false},
		{"case sensitive", "Faux", false},
		{"no trimming", " 1", false},
		{"empty answer", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone := henhouse()

			result, err := EvaluateAnswer(zone, tt.answer)
			if err != nil {
				t.Fatalf("EvaluateAnswer: %v", err)
			}
			if result.IsCorrect != tt.wantCorrect {
				t.Errorf("IsCorrect = %v, want %v", result.IsCorrect, tt.wantCorrect)
			}
			if result.ZoneID != zone.ID {
				t.Errorf("ZoneID = %q, want %q", result.ZoneID, zone.ID)
			}
			if result.SelectedAnswer != tt.answer {
				t.Errorf("SelectedAnswer = %q, want %q", result.SelectedAnswer, tt.answer)
			}
			// The explanation is returned for both outcomes.
			if result.Explanation != zone.Game.Explanation {
				t.Errorf("Explanation = %q, want %q", result.Explanation, zone.Game.Explanation)
			}
		})
	}
}

func TestEvaluateAnswerRepeatable(t *testing.T) {
	zone := henhouse()

	first, err := EvaluateAnswer(zone, "1")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := EvaluateAnswer(zone, "1")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first != second {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
	if zone.Game.CorrectAnswer != "1" {
		t.Error("evaluation mutated the game")
	}
}

func TestEvaluateAnswerNoGame(t *testing.T) {
	zone := henhouse()
	zone.Game = nil

	_, err := EvaluateAnswer(zone, "1")
	if !errors.Is(err, ErrNoGame) {
		t.Fatalf("err = %v, want ErrNoGame", err)
	}
}

func TestValidGameType(t *testing.T) {
	for _, typ := range []GameType{GameTypeQuiz, GameTypeTrueFalse, GameTypeAudioRiddle, GameTypeImageRiddle, GameTypeObservation} {
		if !ValidGameType(typ) {
			t.Errorf("ValidGameType(%q) = false", typ)
		}
	}
	if ValidGameType("karaoke") {
		t.Error(`ValidGameType("karaoke") = true`)
	}
}

func TestVisitIdempotent(t *testing.T) {
	var s VisitorSession

	if !s.Visit("zone-a") {
		t.Error("first visit should be new")
	}
	if s.Visit("zone-a") {
		t.Error("second visit should not be new")
	}
	if got := s.VisitedCount(); got != 1 {
		t.Errorf("VisitedCount = %d, want 1", got)
	}
}

func TestVisitedZoneIDsSorted(t *testing.T) {
	var s VisitorSession
	s.Visit("c")
	s.Visit("a")
	s.Visit("b")

	ids := s.VisitedZoneIDs()
	want := []string{"a", "b", "c"}
	if len(ids) != len(want) {
		t.Fatalf("got %d ids, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}
