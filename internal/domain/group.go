package domain

import (
	"strconv"
	"strings"
	"time"
)

type TransactionType string

const (
	TransactionAdd    TransactionType = "add"
	TransactionDeduct TransactionType = "deduct"
)

// Transaction is an immutable audit record of a single point change.
// It is created only as a side effect of AdjustPoints and never mutated.
type Transaction struct {
	ID        string          `json:"id"`
	Points    int             `json:"points"`
	Reason    string          `json:"reason"`
	Timestamp time.Time       `json:"timestamp"`
	Type      TransactionType `json:"type"`
}

// Group is a learner team with a point balance, membership roster and
// change history. Transactions are kept newest first.
type Group struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Points       int           `json:"points"`
	Character    Character     `json:"character"`
	Members      []string      `json:"members"`
	Transactions []Transaction `json:"transactions"`
}

// Rename replaces the group name when the trimmed value is non-empty and
// differs from the current name. Returns false on a no-op.
func (g *Group) Rename(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed == g.Name {
		return false
	}

	g.Name = trimmed

	return true
}

// AddMember appends a trimmed member name unless it is empty or already
// present (case-sensitive exact match). Returns false on a no-op.
func (g *Group) AddMember(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}

	for _, m := range g.Members {
		if m == trimmed {
			return false
		}
	}

	g.Members = append(g.Members, trimmed)

	return true
}

// RemoveMember removes the member at the given position. Out-of-range
// positions are a no-op.
func (g *Group) RemoveMember(position int) bool {
	if position < 0 || position >= len(g.Members) {
		return false
	}

	g.Members = append(g.Members[:position], g.Members[position+1:]...)

	return true
}

// AdjustPoints applies a point change with a mandatory reason, records a
// Transaction at the head of the log and clamps the balance at zero.
// Validation failures leave the group untouched and report the offending
// fields.
func (g *Group) AdjustPoints(points int, reason string, typ TransactionType, now time.Time) (Transaction, error) {
	var invalid []string
	if points <= 0 {
		invalid = append(invalid, "points")
	}
	if strings.TrimSpace(reason) == "" {
		invalid = append(invalid, "reason")
	}
	if typ != TransactionAdd && typ != TransactionDeduct {
		invalid = append(invalid, "type")
	}
	if len(invalid) > 0 {
		return Transaction{}, &ValidationError{Fields: invalid}
	}

	tx := Transaction{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Points:    points,
		Reason:    reason,
		Timestamp: now,
		Type:      typ,
	}

	change := points
	if typ == TransactionDeduct {
		change = -points
	}

	g.Points += change
	if g.Points < 0 {
		g.Points = 0
	}

	g.Transactions = append([]Transaction{tx}, g.Transactions...)

	return tx, nil
}
