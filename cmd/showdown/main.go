package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lazharichir/fivecard/cards"
	"github.com/lazharichir/fivecard/hands"
	"github.com/pterm/pterm"
	"github.com/sanity-io/litter"
)

const (
	minPlayers = 2
	maxPlayers = 10 // 10 hands of 5 fit in a 52 card deck
)

type config struct {
	players int
	seed    int64
	dump    bool
}

func parseFlags() (config, error) {
	var cfg config
	flag.IntVar(&cfg.players, "players", 4, fmt.Sprintf("number of hands to deal (%d-%d)", minPlayers, maxPlayers))
	flag.Int64Var(&cfg.seed, "seed", 0, "shuffle seed, 0 seeds from the clock")
	flag.BoolVar(&cfg.dump, "dump", false, "dump every evaluation")
	flag.Parse()

	if cfg.players < minPlayers || cfg.players > maxPlayers {
		return cfg, fmt.Errorf("players must be between %d and %d, got %d", minPlayers, maxPlayers, cfg.players)
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// seat is a dealt hand plus the order it was dealt in.
type seat struct {
	id   string
	hand *hands.Hand
}

func deal(deck *cards.Stack, players int) ([]seat, error) {
	seats := make([]seat, 0, players)
	for i := 0; i < players; i++ {
		dealt, err := deck.DealCards(hands.HandSize)
		if err != nil {
			return nil, fmt.Errorf("dealing seat %d: %w", i+1, err)
		}
		seats = append(seats, seat{id: uuid.NewString(), hand: hands.New(dealt...)})
	}
	return seats, nil
}

func render(seats []seat, results []hands.Result) error {
	seatNumber := make(map[string]int, len(seats))
	for i, s := range seats {
		seatNumber[s.id] = i + 1
	}

	data := pterm.TableData{{"Place", "Seat", "Cards", "Category", "Tie-breaker"}}
	for _, r := range results {
		place := strconv.Itoa(r.Place + 1)
		if r.IsWinner {
			place = pterm.LightGreen(place)
		}
		data = append(data, []string{
			place,
			strconv.Itoa(seatNumber[r.ID]),
			r.Evaluation.Cards.String(),
			r.Evaluation.Category.String(),
			fmt.Sprint(r.Evaluation.TieBreaker),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	pterm.DefaultSection.Printfln("Dealing %d hands (seed %d)", cfg.players, cfg.seed)

	deck := cards.ShuffledDeck(rand.New(rand.NewSource(cfg.seed)))
	seats, err := deal(&deck, cfg.players)
	if err != nil {
		log.Fatalf("Deal failed: %v", err)
	}

	byID := make(map[string]hands.Classifier, len(seats))
	for _, s := range seats {
		byID[s.id] = s.hand
	}

	results, err := hands.RankHands(byID)
	if err != nil {
		log.Fatalf("Showdown failed: %v", err)
	}

	if cfg.dump {
		litter.D(results)
	}

	if err := render(seats, results); err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	for _, w := range hands.Winners(results) {
		pterm.Success.Printfln("Seat %s wins with %s", w.ID, w.Evaluation.Category)
	}
}
