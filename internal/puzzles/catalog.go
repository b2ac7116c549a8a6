package puzzles

import (
	"github.com/tatianab/pitch-puzzle/internal/models"
)

type playerFlag int

const (
	asActive playerFlag = iota + 1
	asCorrect
)

// pl builds a catalog player. The built-in catalog is static authored
// data, so construction errors are programmer errors and panic.
func pl(id, name string, number int, team models.Team, role models.Role, x, y float64, flags ...playerFlag) models.Player {
	params := models.PlayerParams{
		ID:     id,
		Name:   name,
		Number: number,
		Team:   team,
		Role:   role,
		X:      x,
		Y:      y,
	}
	for _, f := range flags {
		switch f {
		case asActive:
			params.IsActivePlayer = true
		case asCorrect:
			params.IsCorrectChoice = true
		}
	}
	p, err := models.NewPlayer(params)
	if err != nil {
		panic(err)
	}
	return p
}

func mustPuzzle(p models.Puzzle, err error) models.Puzzle {
	if err != nil {
		panic(err)
	}
	return p
}

// buildUpPuzzle is a single-move passing puzzle: 4-4-2 against 4-4-2,
// home centre back on the ball looking for the free right midfielder.
func buildUpPuzzle() models.Puzzle {
	players := []models.Player{
		pl("bu_gk", "Goalkeeper", 1, models.TeamHome, models.RoleGK, 10, 50),
		pl("bu_lb", "Left Back", 3, models.TeamHome, models.RoleLB, 20, 20),
		pl("bu_cb1", "Center Back", 4, models.TeamHome, models.RoleCB, 20, 40),
		pl("bu_cb2", "Center Back", 5, models.TeamHome, models.RoleCB, 20, 60, asActive),
		pl("bu_rb", "Right Back", 2, models.TeamHome, models.RoleRB, 20, 80),
		pl("bu_lm", "Left Mid", 7, models.TeamHome, models.RoleLM, 40, 30),
		pl("bu_cm1", "Center Mid", 6, models.TeamHome, models.RoleCM, 40, 50),
		pl("bu_cm2", "Center Mid", 8, models.TeamHome, models.RoleCM, 40, 70),
		pl("bu_rm", "Right Mid", 11, models.TeamHome, models.RoleRM, 40, 85, asCorrect),
		pl("bu_st1", "Striker", 9, models.TeamHome, models.RoleST, 60, 40),
		pl("bu_st2", "Striker", 10, models.TeamHome, models.RoleST, 60, 60),

		pl("bu_away_gk", "Goalkeeper", 1, models.TeamAway, models.RoleGK, 90, 50),
		pl("bu_away_lb", "Left Back", 3, models.TeamAway, models.RoleLB, 70, 20),
		pl("bu_away_cb1", "Center Back", 4, models.TeamAway, models.RoleCB, 70, 40),
		pl("bu_away_cb2", "Center Back", 5, models.TeamAway, models.RoleCB, 70, 60),
		pl("bu_away_rb", "Right Back", 2, models.TeamAway, models.RoleRB, 70, 80),
		pl("bu_away_lm", "Left Mid", 7, models.TeamAway, models.RoleLM, 55, 25),
		pl("bu_away_cm1", "Center Mid", 6, models.TeamAway, models.RoleCM, 55, 45),
		pl("bu_away_cm2", "Center Mid", 8, models.TeamAway, models.RoleCM, 55, 55),
		pl("bu_away_rm", "Right Mid", 11, models.TeamAway, models.RoleRM, 55, 75),
		pl("bu_away_st1", "Striker", 9, models.TeamAway, models.RoleST, 35, 40),
		pl("bu_away_st2", "Striker", 10, models.TeamAway, models.RoleST, 35, 60),
	}

	return mustPuzzle(models.NewPuzzle(models.PuzzleParams{
		ID:       "build_up_1",
		Question: "Build from the Back",
		Description: "Blue team is building from defense. The center back has the ball. " +
			"Find the best passing option to start the attack.",
		Type:            models.TypePass,
		Players:         players,
		CorrectPlayerID: "bu_rm",
		Action: &models.Action{
			Type:           "pass",
			TargetPlayerID: "bu_rm",
			Coordinates:    models.Coordinate{X: 40, Y: 85},
		},
		Explanation: "The right midfielder is in space and can turn forward to start the attack.",
		Difficulty:  models.DifficultyEasy,
	}))
}

// counterAttackChain is a three-move counter-attack sequence, 11v11.
// The away side is caught upfield after a corner; each move sets up the
// next phase of the break.
func counterAttackChain() models.Puzzle {
	// Move 1: the centre back has just won the header, most of the
	// opposition is still forward from the set piece.
	move1 := []models.Player{
		pl("ca_gk", "Goalkeeper", 1, models.TeamHome, models.RoleGK, 5, 50),
		pl("ca_rb", "Right Back", 2, models.TeamHome, models.RoleRB, 20, 75),
		pl("ca_cb1", "Center Back", 4, models.TeamHome, models.RoleCB, 15, 60, asActive),
		pl("ca_cb2", "Center Back", 5, models.TeamHome, models.RoleCB, 15, 40),
		pl("ca_lb", "Left Back", 3, models.TeamHome, models.RoleLB, 20, 25),
		pl("ca_cdm", "Defensive Mid", 6, models.TeamHome, models.RoleCDM, 35, 50, asCorrect),
		pl("ca_cm1", "Center Mid", 8, models.TeamHome, models.RoleCM, 45, 35),
		pl("ca_cm2", "Center Mid", 10, models.TeamHome, models.RoleCM, 45, 65),
		pl("ca_rw", "Right Winger", 7, models.TeamHome, models.RoleRW, 55, 80),
		pl("ca_lw", "Left Winger", 11, models.TeamHome, models.RoleLW, 55, 20),
		pl("ca_st", "Striker", 9, models.TeamHome, models.RoleST, 65, 50),

		pl("ca_away_gk", "Goalkeeper", 1, models.TeamAway, models.RoleGK, 95, 50),
		pl("ca_away_rb", "Right Back", 2, models.TeamAway, models.RoleRB, 80, 75),
		pl("ca_away_cb1", "Center Back", 4, models.TeamAway, models.RoleCB, 85, 60),
		pl("ca_away_cb2", "Center Back", 5, models.TeamAway, models.RoleCB, 85, 40),
		pl("ca_away_lb", "Left Back", 3, models.TeamAway, models.RoleLB, 30, 35),
		pl("ca_away_cdm", "Defensive Mid", 6, models.TeamAway, models.RoleCDM, 25, 55),
		pl("ca_away_cm1", "Center Mid", 8, models.TeamAway, models.RoleCM, 20, 65),
		pl("ca_away_cm2", "Center Mid", 10, models.TeamAway, models.RoleCM, 25, 45),
		pl("ca_away_rw", "Right Winger", 7, models.TeamAway, models.RoleRW, 18, 70),
		pl("ca_away_lw", "Left Winger", 11, models.TeamAway, models.RoleLW, 30, 25),
		pl("ca_away_st", "Striker", 9, models.TeamAway, models.RoleST, 12, 50),
	}

	// Move 2: the defensive midfielder has driven forward, the striker
	// drops to link while both wingers start their runs.
	move2 := []models.Player{
		pl("ca_gk", "Goalkeeper", 1, models.TeamHome, models.RoleGK, 5, 50),
		pl("ca_rb", "Right Back", 2, models.TeamHome, models.RoleRB, 25, 75),
		pl("ca_cb1", "Center Back", 4, models.TeamHome, models.RoleCB, 15, 60),
		pl("ca_cb2", "Center Back", 5, models.TeamHome, models.RoleCB, 15, 40),
		pl("ca_lb", "Left Back", 3, models.TeamHome, models.RoleLB, 25, 25),
		pl("ca_cdm", "Defensive Mid", 6, models.TeamHome, models.RoleCDM, 50, 50, asActive),
		pl("ca_cm1", "Center Mid", 8, models.TeamHome, models.RoleCM, 55, 35),
		pl("ca_cm2", "Center Mid", 10, models.TeamHome, models.RoleCM, 55, 65),
		pl("ca_rw", "Right Winger", 7, models.TeamHome, models.RoleRW, 70, 80),
		pl("ca_lw", "Left Winger", 11, models.TeamHome, models.RoleLW, 70, 20),
		pl("ca_st", "Striker", 9, models.TeamHome, models.RoleST, 60, 50, asCorrect),

		pl("ca_away_gk", "Goalkeeper", 1, models.TeamAway, models.RoleGK, 95, 50),
		pl("ca_away_rb", "Right Back", 2, models.TeamAway, models.RoleRB, 80, 75),
		pl("ca_away_cb1", "Center Back", 4, models.TeamAway, models.RoleCB, 85, 60),
		pl("ca_away_cb2", "Center Back", 5, models.TeamAway, models.RoleCB, 85, 40),
		pl("ca_away_lb", "Left Back", 3, models.TeamAway, models.RoleLB, 40, 35),
		pl("ca_away_cdm", "Defensive Mid", 6, models.TeamAway, models.RoleCDM, 45, 55),
		pl("ca_away_cm1", "Center Mid", 8, models.TeamAway, models.RoleCM, 40, 65),
		pl("ca_away_cm2", "Center Mid", 10, models.TeamAway, models.RoleCM, 45, 45),
		pl("ca_away_rw", "Right Winger", 7, models.TeamAway, models.RoleRW, 35, 70),
		pl("ca_away_lw", "Left Winger", 11, models.TeamAway, models.RoleLW, 50, 25),
		pl("ca_away_st", "Striker", 9, models.TeamAway, models.RoleST, 35, 50),
	}

	// Move 3: the striker holds it up centrally, the left winger is in
	// behind and onside, the defense still stretched.
	move3 := []models.Player{
		pl("ca_gk", "Goalkeeper", 1, models.TeamHome, models.RoleGK, 5, 50),
		pl("ca_rb", "Right Back", 2, models.TeamHome, models.RoleRB, 30, 75),
		pl("ca_cb1", "Center Back", 4, models.TeamHome, models.RoleCB, 20, 60),
		pl("ca_cb2", "Center Back", 5, models.TeamHome, models.RoleCB, 20, 40),
		pl("ca_lb", "Left Back", 3, models.TeamHome, models.RoleLB, 30, 25),
		pl("ca_cdm", "Defensive Mid", 6, models.TeamHome, models.RoleCDM, 55, 50),
		pl("ca_cm1", "Center Mid", 8, models.TeamHome, models.RoleCM, 65, 35),
		pl("ca_cm2", "Center Mid", 10, models.TeamHome, models.RoleCM, 65, 65),
		pl("ca_rw", "Right Winger", 7, models.TeamHome, models.RoleRW, 80, 75),
		pl("ca_lw", "Left Winger", 11, models.TeamHome, models.RoleLW, 85, 25, asCorrect),
		pl("ca_st", "Striker", 9, models.TeamHome, models.RoleST, 60, 50, asActive),

		pl("ca_away_gk", "Goalkeeper", 1, models.TeamAway, models.RoleGK, 95, 50),
		pl("ca_away_rb", "Right Back", 2, models.TeamAway, models.RoleRB, 80, 75),
		pl("ca_away_cb1", "Center Back", 4, models.TeamAway, models.RoleCB, 82, 55),
		pl("ca_away_cb2", "Center Back", 5, models.TeamAway, models.RoleCB, 82, 45),
		pl("ca_away_lb", "Left Back", 3, models.TeamAway, models.RoleLB, 75, 30),
		pl("ca_away_cdm", "Defensive Mid", 6, models.TeamAway, models.RoleCDM, 70, 50),
		pl("ca_away_cm1", "Center Mid", 8, models.TeamAway, models.RoleCM, 60, 60),
		pl("ca_away_cm2", "Center Mid", 10, models.TeamAway, models.RoleCM, 65, 40),
		pl("ca_away_rw", "Right Winger", 7, models.TeamAway, models.RoleRW, 55, 70),
		pl("ca_away_lw", "Left Winger", 11, models.TeamAway, models.RoleLW, 70, 30),
		pl("ca_away_st", "Striker", 9, models.TeamAway, models.RoleST, 60, 50),
	}

	moves := []models.Move{
		{
			Question: "Win the Ball and Start the Counter",
			Description: "Your center back has just won a header from the opponent's corner kick. " +
				"Most of their team is caught upfield. Choose the best player to start a quick counter-attack.",
			Players:         move1,
			CorrectPlayerID: "ca_cdm",
			Explanation: "The defensive midfielder is in the perfect position - in space, facing forward, " +
				"and can drive the ball up the pitch quickly while the opposition is out of position.",
		},
		{
			Question: "Drive the Counter Forward",
			Description: "The defensive midfielder has advanced into the middle third with the ball. " +
				"Your striker has dropped deep to offer support, while both wingers are making forward runs. " +
				"Who should receive the ball to keep the counter flowing?",
			Players:         move2,
			CorrectPlayerID: "ca_st",
			Explanation: "The striker dropping deep creates the perfect link-up opportunity. They can receive " +
				"with their back to goal, hold up the ball, and either turn or play a quick pass to the advancing wingers.",
		},
		{
			Question: "Execute the Final Pass",
			Description: "The striker now has possession in a central position. The left winger has made a " +
				"perfectly timed run behind the defense and is onside. The right winger is also making a run " +
				"but is more heavily marked. Complete the counter-attack.",
			Players:         move3,
			CorrectPlayerID: "ca_lw",
			Explanation: "The through ball to the left winger is the perfect choice. They've timed their run " +
				"perfectly to stay onside, they're in behind the defense with space to run at goal, and the " +
				"left back is still recovering from the set piece.",
		},
	}

	return mustPuzzle(models.NewChainPuzzle("counter_attack_chain", "", models.DifficultyMedium, moves))
}

// builtin returns the built-in puzzle catalog in rotation order.
func builtin() []models.Puzzle {
	return []models.Puzzle{
		buildUpPuzzle(),
		counterAttackChain(),
	}
}
