package repository

import (
	"time"

	"github.com/querylab/groupboard/internal/domain"
)

// Seed data the dashboard falls back to whenever a slot is absent or
// unreadable. Matches the roster the class started the course with.

func defaultGroups() []domain.Group {
	day := func(d string) time.Time {
		t, _ := time.Parse("2006-01-02", d)
		return t
	}

	return []domain.Group{
		{
			ID:        "1",
			Name:      "SQL Warriors",
			Points:    2500,
			Character: domain.Character{Type: domain.CharacterAthleticWoman, Expression: domain.ExpressionHappy},
			Members:   []string{"Alice Johnson", "Bob Smith", "Carol Davis", "David Wilson"},
			Transactions: []domain.Transaction{
				{ID: "1", Points: 100, Reason: "Completed first assignment", Timestamp: day("2025-01-10"), Type: domain.TransactionAdd},
				{ID: "2", Points: 150, Reason: "Excellent participation", Timestamp: day("2025-01-12"), Type: domain.TransactionAdd},
				{ID: "3", Points: 50, Reason: "Late submission", Timestamp: day("2025-01-15"), Type: domain.TransactionDeduct},
			},
		},
		{
			ID:        "2",
			Name:      "Database Legends",
			Points:    2200,
			Character: domain.Character{Type: domain.CharacterAthleticMen, Expression: domain.ExpressionFocused},
			Members:   []string{"Emma Brown", "Frank Miller", "Grace Lee", "Henry Taylor"},
			Transactions: []domain.Transaction{
				{ID: "4", Points: 120, Reason: "Outstanding query optimization", Timestamp: day("2025-01-11"), Type: domain.TransactionAdd},
				{ID: "5", Points: 80, Reason: "Helping team members", Timestamp: day("2025-01-14"), Type: domain.TransactionAdd},
			},
		},
		{
			ID:        "3",
			Name:      "Query Masters",
			Points:    1950,
			Character: domain.Character{Type: domain.CharacterScholar, Expression: domain.ExpressionThinking},
			Members:   []string{"Ivy Rodriguez", "Jack Chen", "Kate Anderson", "Liam Murphy"},
			Transactions: []domain.Transaction{
				{ID: "6", Points: 90, Reason: "Creative solution approach", Timestamp: day("2025-01-13"), Type: domain.TransactionAdd},
				{ID: "7", Points: 110, Reason: "Best practice implementation", Timestamp: day("2025-01-16"), Type: domain.TransactionAdd},
			},
		},
		{
			ID:        "4",
			Name:      "Data Explorers",
			Points:    1800,
			Character: domain.Character{Type: domain.CharacterTrainer, Expression: domain.ExpressionExcited},
			Members:   []string{"Mia Garcia", "Noah Kim", "Olivia White", "Peter Jones"},
			Transactions: []domain.Transaction{
				{ID: "8", Points: 85, Reason: "Consistent performance", Timestamp: day("2025-01-12"), Type: domain.TransactionAdd},
				{ID: "9", Points: 95, Reason: "Innovative thinking", Timestamp: day("2025-01-17"), Type: domain.TransactionAdd},
			},
		},
		{
			ID:        "5",
			Name:      "Join Specialists",
			Points:    1650,
			Character: domain.Character{Type: domain.CharacterStudent, Expression: domain.ExpressionBreathing},
			Members:   []string{"Quinn Davis", "Ryan Thompson", "Sophie Clark", "Tyler Martinez"},
			Transactions: []domain.Transaction{
				{ID: "10", Points: 75, Reason: "Good collaboration", Timestamp: day("2025-01-14"), Type: domain.TransactionAdd},
				{ID: "11", Points: 100, Reason: "Perfect attendance", Timestamp: day("2025-01-18"), Type: domain.TransactionAdd},
			},
		},
		{
			ID:        "6",
			Name:      "Schema Builders",
			Points:    1400,
			Character: domain.Character{Type: domain.CharacterMentor, Expression: domain.ExpressionHappy},
			Members:   []string{"Uma Patel", "Victor Lopez", "Wendy Chang", "Xavier Reed"},
			Transactions: []domain.Transaction{
				{ID: "12", Points: 60, Reason: "Good effort", Timestamp: day("2025-01-15"), Type: domain.TransactionAdd},
				{ID: "13", Points: 80, Reason: "Improvement shown", Timestamp: day("2025-01-19"), Type: domain.TransactionAdd},
			},
		},
	}
}

func defaultSessions() []domain.Session {
	return []domain.Session{
		{
			ID:    1,
			Title: "Session 1",
			Date:  "3rd July 2025",
			Topics: []string{
				"Navigating Metabase (Datalake, dwh_fitness_mart, membership_dim)",
				"SQL & it's flavours, DBMS, RDBMS",
				"Understanding Database & Schema",
				"Understanding ER Model: Entity, Keys, ERD's, Relationships & types, Data Integrity Constraints",
				"The SELECT & FROM statement",
				"SELECT: DISTINCT, Simple Arithmetic Operations, Simple Aggregations",
				"Calculated Fields - Binning - Case When Statement",
				"The WHERE clause",
			},
		},
		{
			ID:    2,
			Title: "Session 2",
			Date:  "10th July 2025",
			Topics: []string{
				"Operators (Arithmetic, Logical)",
				"Relational Operators: Conditional-- Single value( >, >=, <, <=, =, <>), Multi-value(IN, NOT IN ), BETWEEN, IS NULL, IS NOT NULL, LIKE with %, [] & _ for Wildcards.",
				"ORDER BY",
				"LIMIT",
				"Code Readability",
			},
		},
		{
			ID:    3,
			Title: "Session 3",
			Date:  "17th July 2025",
			Topics: []string{
				"Concept of Joins",
				"Intro to JOINS & Types (Inner, Left, Right, Full, Self, Cross)",
				"Usage of Joins",
				"Joining Multiple Tables",
				"Order of Execution",
			},
		},
		{
			ID:    4,
			Title: "Session 4",
			Date:  "24th July 2025",
			Topics: []string{
				"Aggregate Functions",
				"The GROUP BY Clause",
				"The HAVING Clause",
				"Order Of Execution (Revisit)",
			},
		},
	}
}
