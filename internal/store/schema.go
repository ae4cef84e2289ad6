package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names.
const (
	tableProfile      = "profile"
	tableUnlockedSets = "unlocked_sets"
	tableRecentIcons  = "recent_icons"
	tableSessions     = "sessions"

	profileID = 1
)

var (
	profileColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "total_stars", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	profileTable = &schema.Table{
		Name:       tableProfile,
		Columns:    profileColumns,
		PrimaryKey: []*schema.Column{profileColumns[0]},
	}

	unlockedSetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "set_id", Type: field.TypeString, Unique: true},
		{Name: "unlocked_at", Type: field.TypeTime},
	}
	unlockedSetsTable = &schema.Table{
		Name:       tableUnlockedSets,
		Columns:    unlockedSetsColumns,
		PrimaryKey: []*schema.Column{unlockedSetsColumns[0]},
	}

	// recent_icons keeps the history newest first by position.
	recentIconsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "emoji", Type: field.TypeString, Unique: true},
	}
	recentIconsTable = &schema.Table{
		Name:       tableRecentIcons,
		Columns:    recentIconsColumns,
		PrimaryKey: []*schema.Column{recentIconsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "recenticon_position", Columns: []*schema.Column{recentIconsColumns[1]}},
		},
	}

	sessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "mode", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "stars", Type: field.TypeInt},
		{Name: "incorrect_attempts", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	sessionsTable = &schema.Table{
		Name:       tableSessions,
		Columns:    sessionsColumns,
		PrimaryKey: []*schema.Column{sessionsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "session_created_at", Columns: []*schema.Column{sessionsColumns[8]}},
		},
	}

	tables = []*schema.Table{
		profileTable,
		unlockedSetsTable,
		recentIconsTable,
		sessionsTable,
	}
)
