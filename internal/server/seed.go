package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/minipousses/farmtour/internal/farmtour"
)

// sampleZones returns the starter tour content. Fresh ids and timestamps
// are assigned on every call.
func sampleZones() []farmtour.Zone {
	now := time.Now().UTC()
	newZone := func(name, description, video, ctaText string, game *farmtour.Game) farmtour.Zone {
		return farmtour.Zone{
			ID:          uuid.NewString(),
			Name:        name,
			Description: description,
			VideoRef:    video,
			CTAText:     ctaText,
			CTATarget:   "#",
			Game:        game,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	return []farmtour.Zone{
		newZone(
			"Poulailler",
			"Découvrez nos poules et coqs colorés ! Apprenez comment ils vivent, ce qu'ils mangent et comment ils nous donnent des œufs frais chaque jour.",
			"https://www.youtube.com/embed/dQw4w9WgXcQ",
			"Nourrir les poules",
			&farmtour.Game{
				ID:            uuid.NewString(),
				Type:          farmtour.GameTypeQuiz,
				Question:      "Combien d'œufs une poule peut-elle pondre par jour ?",
				Options:       []string{"1 œuf", "5 œufs", "10 œufs"},
				CorrectAnswer: "1 œuf",
				Explanation:   "Une poule pond généralement un œuf par jour, parfois un peu moins.",
			},
		),
		newZone(
			"Wallaby",
			"Rencontrez notre wallaby ! Ces petits marsupiaux ressemblent à des kangourous miniatures. Observez comment ils sautent et découvrez leurs habitudes.",
			"https://www.youtube.com/embed/dQw4w9WgXcQ",
			"Observer le wallaby",
			&farmtour.Game{
				ID:            uuid.NewString(),
				Type:          farmtour.GameTypeQuiz,
				Question:      "Quel est le cri du wallaby ?",
				Options:       []string{"Meuglement", "Couinement", "Coin-coin"},
				CorrectAnswer: "Couinement",
				Explanation:   "Le wallaby fait un petit couinement, un son très doux et discret.",
			},
		),
		newZone(
			"Rosie la vache avec Yukie le poulain",
			"Venez dire bonjour à Rosie, notre vache gentille, et à Yukie, son petit poulain. Apprenez comment ils vivent ensemble et ce qu'ils aiment manger.",
			"https://www.youtube.com/embed/dQw4w9WgXcQ",
			"Caresser Rosie",
			&farmtour.Game{
				ID:            uuid.NewString(),
				Type:          farmtour.GameTypeTrueFalse,
				Question:      "Les vaches mangent seulement de l'herbe ?",
				Options:       []string{"Vrai", "Faux"},
				CorrectAnswer: "Faux",
				Explanation:   "Les vaches mangent principalement de l'herbe, mais aussi du foin, des légumes et des céréales.",
			},
		),
	}
}

// Seed inserts the sample zones if the catalog is empty and returns how
// many zones it created. Idempotent: does nothing when zones exist.
func Seed(ctx context.Context, logger *slog.Logger, store Store) (int, error) {
	count, err := store.CountZones(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	zones := sampleZones()
	for _, z := range zones {
		if err := store.CreateZone(ctx, z); err != nil {
			return 0, err
		}
	}

	logger.Info("sample zones seeded", "count", len(zones))
	return len(zones), nil
}

type SeedResponse struct {
	Message      string `json:"message"`
	ZonesCreated int    `json:"zonesCreated,omitempty"`
}

func handleSeed(logger *slog.Logger, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		created, err := Seed(r.Context(), logger, store)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if created == 0 {
			writeJSON(w, http.StatusOK, SeedResponse{Message: "sample data already exists"})
			return
		}
		writeJSON(w, http.StatusOK, SeedResponse{
			Message:      "sample data initialized",
			ZonesCreated: created,
		})
	}
}
