package experiments

import (
	"fmt"

	"nogo/agent"
	"nogo/engine"
	"nogo/experiments/metrics"

	"github.com/rs/zerolog/log"
)

const NumGames = 10 // Per match up

var searchConfigs = []metrics.AgentConfig{
	{ID: 1, Search: "random"},
	{ID: 2, Search: "mcts", Simulations: 300},
	{ID: 3, Search: "mcts", Simulations: 300, Rave: true},
	{ID: 4, Search: "p-mcts", Threads: 4, Simulations: 300},
}

// RunSearchComparison pits each search variant against the random baseline
// and stores the per-game and per-move records.
func RunSearchComparison() {
	baseline := searchConfigs[0]
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range searchConfigs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	runExperiment("search_comparison", searchConfigs, matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		blackConfig := matchup[0]
		whiteConfig := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between black=%+v and white=%+v...",
			mi+1, len(matchUps), blackConfig, whiteConfig)

		for i := 0; i < NumGames; i++ {
			winner, gameMetric, moveMetrics := runGame(blackConfig, whiteConfig)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      blackConfig.ID,
				White:      whiteConfig.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s",
				mi+1, len(matchUps), i+1, NumGames, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}

	err = writer.WriteMoveParquet(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move parquet: %v", err))
	}
	log.Info().Msg("stored experiment records")
}

// runGame executes a single game between two agent configs and returns the
// winner with its metrics.
func runGame(blackConfig, whiteConfig metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric) {
	black, err := agent.NewPlayer(blackConfig.Args("black"))
	if err != nil {
		panic(fmt.Sprintf("failed to build black agent: %v", err))
	}
	white, err := agent.NewPlayer(whiteConfig.Args("white"))
	if err != nil {
		panic(fmt.Sprintf("failed to build white agent: %v", err))
	}

	winner, gameMetric, moveMetrics := engine.RunGame(black, white)
	return winner.String(), gameMetric, moveMetrics
}
