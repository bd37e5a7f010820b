package main

import (
	"database/sql"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/walkup/go/internal/gateway"
	"github.com/mcdev12/walkup/go/internal/lineup"
	lineupdb "github.com/mcdev12/walkup/go/internal/lineup/db"
	"github.com/mcdev12/walkup/go/internal/roster"
	rosterdb "github.com/mcdev12/walkup/go/internal/roster/db"
	"github.com/mcdev12/walkup/go/internal/teams"
	teamsdb "github.com/mcdev12/walkup/go/internal/teams/db"
)

type Services struct {
	State  *gateway.StateHandler
	Roster *gateway.RosterHandler
	Admin  *gateway.AdminHandler
}

func setupServices(database *sql.DB, config *Config) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Handler layer
	clock := clockwork.NewRealClock()

	// Teams
	teamsQueries := teamsdb.New(database)
	teamsRepo := teams.NewRepository(teamsQueries, database)
	teamsApp := teams.NewApp(teamsRepo, clock)

	// Roster
	rosterQueries := rosterdb.New(database)
	rosterRepo := roster.NewRepository(rosterQueries)
	rosterApp := roster.NewApp(rosterRepo, clock)

	// Lineup engine: consults the roster's active id set on every touch
	lineupQueries := lineupdb.New(database)
	lineupRepo := lineup.NewRepository(lineupQueries)
	lineupApp := lineup.NewApp(lineupRepo, rosterApp, clock)

	return &Services{
		State:  gateway.NewStateHandler(teamsApp, lineupApp),
		Roster: gateway.NewRosterHandler(teamsApp, rosterApp, config.AdminKey),
		Admin:  gateway.NewAdminHandler(teamsApp, rosterApp, config.AdminKey),
	}
}
